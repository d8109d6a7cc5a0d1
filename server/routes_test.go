package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandleSchema(t *testing.T) {
	s := newServer()
	s.setupRoutes()

	body := `{"input": "{\"foo\": true} {\"foo\": false, \"bar\": 5}"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/schema", strings.NewReader(body))
	rec := httptest.NewRecorder()

	s.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"foo":{"type":"boolean"}`)
	assert.Contains(t, rec.Body.String(), `"bar":{"type":"uint8"}`)
}

func TestHandleSchemaBadBody(t *testing.T) {
	s := newServer()
	s.setupRoutes()

	req := httptest.NewRequest(http.MethodPost, "/v1/schema", strings.NewReader("not json"))
	rec := httptest.NewRecorder()

	s.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSchemaBadInput(t *testing.T) {
	s := newServer()
	s.setupRoutes()

	body := `{"input": "{\"foo\": "}`
	req := httptest.NewRequest(http.MethodPost, "/v1/schema", strings.NewReader(body))
	rec := httptest.NewRecorder()

	s.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	s := newServer()
	s.setupRoutes()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	s.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
