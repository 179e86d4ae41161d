package http

import (
	"encoding/json"
	"net/http"
)

// AppHttpHandler is a handler whose errors are rendered by errorHandlingAdapter.
type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

// AppHttpHandlerFunc adapts a plain function to AppHttpHandler.
type AppHttpHandlerFunc func(w http.ResponseWriter, r *http.Request) error

func (f AppHttpHandlerFunc) Handle(w http.ResponseWriter, r *http.Request) error {
	return f(w, r)
}

func writeJSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

type statusResponse struct {
	Message string `json:"message"`
}

func handleStatus(w http.ResponseWriter, _ *http.Request) error {
	return writeJSON(w, http.StatusOK, statusResponse{Message: "API is running"})
}
