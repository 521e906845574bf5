package handler

import (
	"net/http"

	"github.com/avelinom/vidgate/internal/api/response"
)

// Home returns the public service descriptor
func Home(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]any{
		"message":  "VidGate API",
		"database": "MongoDB",
		"endpoints": map[string]string{
			"POST /auth/signup": "Register user",
			"POST /auth/login":  "Login user",
			"GET /auth/me":      "Current user profile (JWT required)",
			"GET /dashboard":    "Get videos (JWT required)",
			"GET /video/{id}":   "Get video with hidden URL (JWT required)",
			"POST /auth/logout": "Logout (JWT required)",
		},
	})
}
