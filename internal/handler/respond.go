// Package handler exposes the public HTTP API.
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// clampQueryInt parses a query parameter with a default for absent or
// unparseable input and clamps the result to [min, max].
func clampQueryInt(raw string, def, min, max int) int {
	n := def
	if raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			n = parsed
		}
	}
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}
