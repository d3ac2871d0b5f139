package utils

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
)

// WriteJSON serializes data to JSON and writes it with the given status code.
//
// It sets the "Content-Type" header to "application/json". If marshaling
// fails, it responds with 500 Internal Server Error and returns a wrapped
// error.
//
// Example usage:
//
//	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteHTML writes an already rendered HTML fragment or page with the given
// status code and a UTF-8 "text/html" content type.
func WriteHTML(w http.ResponseWriter, page template.HTML, statusCode int) (int, error) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)

	n, err := w.Write([]byte(page))
	if err != nil {
		return n, fmt.Errorf("error writing HTML: %w", err)
	}

	return n, nil
}
