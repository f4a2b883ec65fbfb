package helpers

import (
	"net/http"

	"github.com/isometry/gh-jira-bridge/internal/models"
)

// RespondHTTP writes response to rw. A zero status code is written as 200.
func RespondHTTP(response models.Response, rw http.ResponseWriter) {
	for k, v := range response.Headers {
		rw.Header().Set(k, v)
	}
	statusCode := response.StatusCode
	if statusCode == 0 {
		statusCode = http.StatusOK
	}
	rw.WriteHeader(statusCode)
	_, _ = rw.Write([]byte(response.Body))
}
