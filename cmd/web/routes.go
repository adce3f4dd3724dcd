package main

import (
	"net/http"

	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/healthy", app.healthy)
	mux.HandleFunc("GET /api/generate", app.generateAlive)
	mux.HandleFunc("POST /api/generate", app.generate)

	base := alice.New(app.recoverPanic, app.logRequest, commonHeaders)
	return base.Then(mux)
}
