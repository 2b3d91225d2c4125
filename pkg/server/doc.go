// Package server provides the HTTP server for the Pixelbin web application.
//
// It uses gorilla/mux for routing and bundles the stores, session manager and
// upload pipeline the endpoint handlers need. Routes are registered by the
// endpoints subpackage; the session gate lives in middleware.
package server
