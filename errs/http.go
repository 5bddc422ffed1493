package errs

import (
	"encoding/json"
	"net/http"

	"wtfTimeline/logger"
)

// codes maps application error codes to HTTP status codes.
var codes = map[string]int{
	ECONFLICT:     http.StatusConflict,
	EINVALID:      http.StatusBadRequest,
	ENOTFOUND:     http.StatusNotFound,
	EUNAUTHORIZED: http.StatusForbidden,
	EINTERNAL:     http.StatusInternalServerError,
}

// ErrorStatusCode returns the HTTP status code for an application error code.
func ErrorStatusCode(code string) int {
	if v, ok := codes[code]; ok {
		return v
	}
	return http.StatusInternalServerError
}

// ReturnError writes an error response to the client. Internal errors are
// logged with their original message and returned with a generic one.
func ReturnError(w http.ResponseWriter, r *http.Request, err error) {
	code, message := ErrorCode(err), ErrorMessage(err)
	if code == EINTERNAL {
		LogError(r, err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(ErrorStatusCode(code))
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// LogError logs an error together with the request's method and path.
func LogError(r *http.Request, err error) {
	logger.Error("http error",
		logger.String("method", r.Method),
		logger.String("path", r.URL.Path),
		logger.Err(err),
	)
}
