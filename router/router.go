// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/terminfinder/cliparse"
	"github.com/danielhkuo/terminfinder/handlers"
	"github.com/danielhkuo/terminfinder/middleware"
	"github.com/danielhkuo/terminfinder/store"
	"github.com/rs/cors"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize stores and handlers
	pollStore := store.NewPollStore(db)
	responseStore := store.NewResponseStore(db)
	aggregator := store.NewAggregator(db)

	pollHandler := handlers.NewPollHandler(pollStore, aggregator, cfg)
	responseHandler := handlers.NewResponseHandler(responseStore)
	resultsHandler := handlers.NewResultsHandler(pollStore, aggregator, cfg)

	admin := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireAdmin(cfg, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Poll lifecycle (operator only)
	mux.HandleFunc("POST /admin/polls", admin(pollHandler.Create))
	mux.HandleFunc("GET /admin/polls", admin(pollHandler.List))
	mux.HandleFunc("GET /admin/polls/{publicID}", admin(pollHandler.Get))
	mux.HandleFunc("PATCH /admin/polls/{publicID}", admin(pollHandler.Update))
	mux.HandleFunc("DELETE /admin/polls/{publicID}", admin(pollHandler.Delete))

	// Participant operations (public)
	mux.HandleFunc("GET /polls", middleware.WithLogging(resultsHandler.ListActive))
	mux.HandleFunc("GET /polls/{publicID}", middleware.WithLogging(resultsHandler.GetPoll))
	mux.HandleFunc("POST /polls/{publicID}/responses", middleware.WithLogging(responseHandler.Submit))
	mux.HandleFunc("GET /polls/{publicID}/results", middleware.WithLogging(resultsHandler.GetResults))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("terminfinder API v1"))
	})

	c := cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type", "X-Admin-Token"},
	})

	return c.Handler(mux)
}
