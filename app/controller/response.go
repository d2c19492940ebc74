package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
)

// writeJSON encodes v as the JSON response body
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("❌ writeJSON: Error encoding response: %v", err)
	}
}

// parseIDPath extracts the numeric id from a path like {prefix}{id} or
// {prefix}{id}/{action}
func parseIDPath(path, prefix string) (int64, error) {
	rest := strings.TrimPrefix(path, prefix)
	if rest == "" || rest == path {
		return 0, fmt.Errorf("id parameter is required")
	}
	idStr := rest
	if i := strings.Index(rest, "/"); i >= 0 {
		idStr = rest[:i]
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id parameter")
	}
	return id, nil
}
