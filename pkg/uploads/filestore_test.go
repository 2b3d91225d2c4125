package uploads

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowedExtension(t *testing.T) {
	tests := []struct {
		filename string
		allowed  bool
	}{
		{"cat.png", true},
		{"cat.jpg", true},
		{"cat.jpeg", true},
		{"cat.gif", true},
		{"CAT.PNG", true},
		{"cat.txt", false},
		{"cat", false},
		{"cat.png.exe", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.allowed, AllowedExtension(tt.filename), tt.filename)
	}
}

func TestGenerateName(t *testing.T) {
	a := GenerateName("My Cat Photo.PNG")
	b := GenerateName("My Cat Photo.PNG")

	assert.NotEqual(t, a, b, "two uploads must never collide")
	assert.True(t, strings.HasSuffix(a, ".png"))
	assert.NotContains(t, a, " ")
	assert.NotContains(t, a, "/")
}

func TestPathRejectsTraversal(t *testing.T) {
	files, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	for _, name := range []string{"", "../etc/passwd", "a/b.png", ".hidden", ".."} {
		_, err := files.Path(name)
		assert.Error(t, err, name)
	}
}

func TestSaveRemoveExists(t *testing.T) {
	files, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, files.Save("a.png", bytes.NewReader([]byte("data"))))
	assert.True(t, files.Exists("a.png"))

	path, err := files.Path("a.png")
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("data"), data)

	require.NoError(t, files.Remove("a.png"))
	assert.False(t, files.Exists("a.png"))

	// Removing a missing file is not an error.
	assert.NoError(t, files.Remove("a.png"))
}

func TestNewFileStoreCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	_, err := NewFileStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestCreateThumbnailFitsBounds(t *testing.T) {
	files, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, files.Save("big.png", bytes.NewReader(pngBytes(t, 640, 480))))
	require.NoError(t, files.CreateThumbnail("big.png", "thumb-big.png"))

	path, err := files.Path("thumb-big.png")
	require.NoError(t, err)
	thumb, err := imaging.Open(path)
	require.NoError(t, err)

	bounds := thumb.Bounds()
	assert.LessOrEqual(t, bounds.Dx(), ThumbnailSize)
	assert.LessOrEqual(t, bounds.Dy(), ThumbnailSize)
	// Aspect ratio is preserved, so the long edge hits the bound.
	assert.Equal(t, ThumbnailSize, bounds.Dx())
}

func TestCreateThumbnailBadSource(t *testing.T) {
	files, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, files.Save("bad.png", bytes.NewReader([]byte("not an image"))))
	assert.Error(t, files.CreateThumbnail("bad.png", "thumb-bad.png"))
}
