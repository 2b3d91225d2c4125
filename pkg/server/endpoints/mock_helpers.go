package endpoints

import (
	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pixelbin/pkg/server"
	gormstore "pixelbin/pkg/server/store/gorm"
	"pixelbin/pkg/session"
	"pixelbin/pkg/uploads"
)

// NewMockTestServer creates a server instance with a mocked database for unit
// testing. Files land under uploadDir, which callers own (use t.TempDir).
// Returns the server, sqlmock instance, and any error
func NewMockTestServer(uploadDir string) (*server.Server, sqlmock.Sqlmock, error) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		return nil, nil, err
	}

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{
			Conn:                 mockDB,
			PreferSimpleProtocol: true,
		}),
		&gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		},
	)
	if err != nil {
		_ = mockDB.Close()
		return nil, nil, err
	}

	files, err := uploads.NewFileStore(uploadDir)
	if err != nil {
		_ = mockDB.Close()
		return nil, nil, err
	}

	users := gormstore.NewUsersStore(gormDB)
	images := gormstore.NewImagesStore(gormDB)
	sessions := session.NewManager([]byte("0123456789abcdef0123456789abcdef"))
	uploader := uploads.NewPipeline(files, images)

	s := server.NewServer(gormDB, users, images, sessions, uploader, 10<<20, "127.0.0.1", "0")

	return s, mock, nil
}
