package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/avelinom/vidgate/internal/api/middleware"
	"github.com/avelinom/vidgate/internal/api/response"
	"github.com/avelinom/vidgate/internal/domain"
	"github.com/avelinom/vidgate/internal/service"
)

var validate = validator.New()

func init() {
	// bcrypt caps input at 72 bytes, not runes; validator's max counts
	// runes for strings, so a multibyte password could pass validation
	// and still fail to hash.
	validate.RegisterValidation("maxbytes", func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return len(fl.Field().String()) <= n
	})
}

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// credentialsMessage turns validator errors into the single message the
// client sees. Missing fields keep the historical wording.
func credentialsMessage(err error) string {
	if errs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range errs {
			if e.Tag() == "required" {
				return "Email and password required"
			}
		}
	}
	return "Invalid request payload"
}

// Signup handles user registration. A created account is not logged in.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var input domain.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "Email and password required")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, credentialsMessage(err))
		return
	}

	if _, err := h.authService.Signup(r.Context(), input); err != nil {
		writeError(w, err)
		return
	}

	response.Message(w, http.StatusCreated, "User created successfully")
}

// Login handles user login and returns a bearer token
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "Email and password required")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, credentialsMessage(err))
		return
	}

	token, err := h.authService.Login(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	response.OK(w, domain.TokenResponse{AccessToken: token})
}

// Me returns the profile of the authenticated user
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	profile, err := h.authService.CurrentUser(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	response.OK(w, profile)
}

// Logout acknowledges a client-side token discard. Tokens are stateless,
// so there is nothing to revoke server-side.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	response.Message(w, http.StatusOK, "Logged out successfully")
}
