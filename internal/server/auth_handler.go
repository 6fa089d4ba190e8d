package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/company-briefing/internal/config"
)

// loginRequest is the POST /api/login payload.
type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// loginResponse is the success envelope for POST /api/login.
type loginResponse struct {
	Error    bool   `json:"error"`
	Token    string `json:"token"`
	Username string `json:"username"`
}

// AuthHandler handles login requests against the environment user table.
type AuthHandler struct {
	users      *config.UserTable
	jwtService *JWTService
	validator  *validator.Validate
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(users *config.UserTable, jwtService *JWTService) *AuthHandler {
	return &AuthHandler{
		users:      users,
		jwtService: jwtService,
		validator:  validator.New(),
	}
}

// Login handles user login requests.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		errorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "Missing username or password")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		errorResponse(w, http.StatusBadRequest, "Missing username or password")
		return
	}

	if !h.users.Configured() {
		errorResponse(w, http.StatusInternalServerError, "Server not configured for login")
		return
	}

	if !h.users.Verify(req.Username, req.Password) {
		errorResponse(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.jwtService.GenerateToken(req.Username)
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	jsonResponse(w, http.StatusOK, loginResponse{
		Error:    false,
		Token:    token,
		Username: req.Username,
	})
}
