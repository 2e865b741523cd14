package http

import (
	"net/http"
	"time"

	"github.com/hrms-lite/hrms-backend-go/internal/handler/http/response"
)

type healthPayload struct {
	Timestamp string `json:"timestamp"`
}

// Health handles GET /health
func Health(w http.ResponseWriter, r *http.Request) {
	response.SuccessWithMessage(w, "HRMS Lite API is running", healthPayload{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
