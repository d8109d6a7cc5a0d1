package main

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/negroni"

	"github.com/siegeai/jtdinfer/schemagen"
)

func (s *server) setupRoutes() {
	s.router.HandleFunc("/healthz", s.handleHealth()).Methods("GET")
	s.router.HandleFunc("/v1/schema", s.handleSchema()).Methods("POST")
	s.router.Handle("/metrics", promhttp.Handler()).Methods("GET")
	s.router.Use(logMiddleware)
}

func logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		ww := negroni.NewResponseWriter(w)
		next.ServeHTTP(ww, r)
		slog.Info("request", "id", id, "method", r.Method, "uri", r.RequestURI, "status", ww.Status())
	})
}

func (s *server) handleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "ok")
	}
}

func (s *server) handleSchema() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestsFailed.Inc()
			http.Error(w, "could not read request body", http.StatusBadRequest)
			return
		}

		var params schemagen.Params
		if err := json.Unmarshal(body, &params); err != nil {
			requestsFailed.Inc()
			http.Error(w, "request body is not valid JSON", http.StatusBadRequest)
			return
		}

		out, err := schemagen.Generate(params)
		if err != nil {
			requestsFailed.Inc()
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		schemasGenerated.Inc()
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, out)
	}
}
