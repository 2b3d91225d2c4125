package server

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"pixelbin/pkg/server/store"
	"pixelbin/pkg/session"
	"pixelbin/pkg/uploads"
)

type Server struct {
	Router   *mux.Router
	DB       *gorm.DB
	Users    store.UsersStore
	Images   store.ImagesStore
	Sessions *session.Manager
	Uploader *uploads.Pipeline

	// MaxUploadBytes caps the request body on the upload route.
	MaxUploadBytes int64

	srv *http.Server
}

func NewServer(
	db *gorm.DB,
	users store.UsersStore,
	images store.ImagesStore,
	sessions *session.Manager,
	uploader *uploads.Pipeline,
	maxUploadBytes int64,
	host string,
	port string,
) *Server {

	router := mux.NewRouter()
	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, router),
		Addr:    host + ":" + port,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Router:         router,
		DB:             db,
		Users:          users,
		Images:         images,
		Sessions:       sessions,
		Uploader:       uploader,
		MaxUploadBytes: maxUploadBytes,
		srv:            srv,
	}
}

// Files returns the file store backing the upload pipeline.
func (s *Server) Files() *uploads.FileStore {
	return s.Uploader.Files()
}

func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}
