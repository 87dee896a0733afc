// Command api runs the ConnectHire HTTP server.
package main

import (
	"errors"
	"net/http"

	"github.com/deveshjagdale07/ConnectHire/internal/logging"
	"github.com/deveshjagdale07/ConnectHire/internal/server"
)

func main() {
	srv := server.NewServer()

	logging.Log.WithField("addr", srv.Addr).Info("starting server")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logging.Log.WithError(err).Fatal("server stopped")
	}
}
