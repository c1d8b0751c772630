package common

import (
	"encoding/json"
	"net/http"
)

// RespondError is the single error-formatting stage: every propagated failure
// becomes a plain-text single-line body with a status derived from the error.
func RespondError(w http.ResponseWriter, err error) {
	RespondWithError(w, HTTPStatusFromError(err), MessageFromError(err))
}

func RespondWithError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	w.Write([]byte(message))
}

func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
