// Package server wires the database, session store and event dispatcher
// together and exposes the HTTP surface.
package server

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	// Load env file into environments.
	_ "github.com/joho/godotenv/autoload"

	"github.com/deveshjagdale07/ConnectHire/internal/database"
	"github.com/deveshjagdale07/ConnectHire/internal/event"
	"github.com/deveshjagdale07/ConnectHire/internal/logging"
	"github.com/deveshjagdale07/ConnectHire/internal/session"
)

// MyServer contains the port the server runs on plus the shared dependencies
// every controller is constructed from.
type MyServer struct {
	port int

	DB       *database.DBinstanceStruct
	Sessions session.Store
	Events   *event.Dispatcher
}

// NewServer constructs a new http.Server bound to PORT with the application
// routes registered.
func NewServer() *http.Server {
	port, _ := strconv.Atoi(os.Getenv("PORT"))
	if port == 0 {
		port = 8080
	}

	db, err := database.GetMainDB()
	if err != nil {
		logging.Log.WithError(err).Fatal("failed to connect to the database")
	}

	events := event.NewDispatcher()
	event.RegisterNotifications(events)

	myServer := &MyServer{
		port:     port,
		DB:       db,
		Sessions: newSessionStore(),
		Events:   events,
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", myServer.port),
		Handler:      myServer.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return server
}

// newSessionStore picks the session backend from SESSION_STORE. Anything but
// "memory" means redis, which is the deployment default.
func newSessionStore() session.Store {
	if os.Getenv("SESSION_STORE") == "memory" {
		return session.NewMemoryStore()
	}

	store, err := session.NewRedisStore()
	if err != nil {
		logging.Log.WithError(err).Fatal("failed to connect to the session store")
	}
	return store
}
