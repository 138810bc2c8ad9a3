package handler

import (
	"net/http"

	"stayledger/config"
	"stayledger/di"
	"stayledger/shared/failure"
	"stayledger/shared/logger"
	"stayledger/transport/http/response"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.Init(cfg, "api")

	handler, err := di.InitializeService()
	if err != nil {
		response.WithError(w, failure.InternalError(err))

		return
	}

	handler.ServeHTTP(w, r)
}
