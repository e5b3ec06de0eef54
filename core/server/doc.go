// Package server holds the HTTP server configuration.
//
// The start command builds the Fiber application from this configuration:
// listen port, the API key checked by the auth middleware, and the upload
// size limit for spreadsheets posted to /domains/reconcile.
package server
