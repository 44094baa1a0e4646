package httpapi

import (
	"encoding/json"
	"net/http"
)

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func (s *server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("write json", "error", err)
	}
}

// writeMessage answers with a bare JSON string body.
func (s *server) writeMessage(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, msg)
}

// writeUnhandled logs the cause and answers a bodiless 500.
func (s *server) writeUnhandled(w http.ResponseWriter, r *http.Request, err error) {
	s.log.ErrorContext(r.Context(), "request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err)
	w.WriteHeader(http.StatusInternalServerError)
}
