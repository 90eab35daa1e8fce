package handler

import (
	"net/http"
	"tablebook/config"
	"tablebook/di"
	"tablebook/shared/logger"
)

// Handler is the serverless entrypoint, serving the same routes as cmd/app.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	service := di.InitializeService()
	service.Handler().ServeHTTP(w, r)
}
