package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/benx421/catalog/internal/middleware"
	"github.com/benx421/catalog/internal/service"
)

// RegisterRequest carries a new account's credentials
type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
}

// AccountResponse exposes an account's public fields; never the password
type AccountResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

// LoginRequest carries a credential pair for token issuance
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse carries an issued bearer token
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}

// ChangePasswordRequest carries an authenticated password change
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
	Password2   string `json:"password2"`
}

// MessageResponse is a bare confirmation message
type MessageResponse struct {
	Message string `json:"message"`
}

// Register handles POST /register/
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	user, err := h.accounts.Register(r.Context(), req.Username, req.Email, req.Password, req.Password2)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, AccountResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	})
}

// Login handles POST /login/ and POST /api/token/
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	user, err := h.accounts.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	token, err := h.tokens.Generate(user)
	if err != nil {
		h.logger.Error("failed to generate token", "error", err)
		h.writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error:   service.ErrCodeInternalError,
			Message: "failed to generate token",
		})
		return
	}

	h.writeJSON(w, http.StatusOK, TokenResponse{
		Token:     token,
		ExpiresIn: int64(h.tokens.TTL().Seconds()),
	})
}

// ChangePassword handles POST /change-password/
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, ErrorResponse{
			Error:   "unauthorized",
			Message: "authentication required",
		})
		return
	}

	var req ChangePasswordRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	err := h.accounts.ChangePassword(r.Context(), userID, req.OldPassword, req.NewPassword, req.Password2)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, MessageResponse{Message: "password changed"})
}
