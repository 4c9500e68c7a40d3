package handler

import (
	"net/http"
	"propbook/config"
	"propbook/di"
	"propbook/shared/logger"
	propbookHTTP "propbook/transport/http"
	"sync"
)

var (
	server *propbookHTTP.HTTP
	once   sync.Once
)

// Handler is the serverless entry point. The service graph is built once per
// instance so bookings survive between invocations on a warm instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()
		logger.SetLogLevel(cfg)

		server = di.InitializeService()
	})

	r.RequestURI = r.URL.String()

	server.ServeHTTP(w, r)
}
