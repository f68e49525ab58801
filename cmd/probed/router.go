package main

import "net/http"

func buildHandler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /v1/status", handleStatus)
	mux.HandleFunc("POST /v1/check", handleCheck)

	handler := useMiddleware(mux,
		corsMiddleware,
		loggingMiddleware,
	)

	return handler
}
