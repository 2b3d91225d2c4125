package endpoints

import (
	"pixelbin/pkg/server"
)

// RegisterAll registers all endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterGalleryEndpoint(srv)
	RegisterAccountsEndpoints(srv)
	RegisterSessionEndpoints(srv)
	RegisterUploadEndpoints(srv)
	RegisterImagesEndpoints(srv)
	RegisterFilesEndpoints(srv)
}
