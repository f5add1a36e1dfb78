package handlers

import (
	"net/http"
)

// ForgotPasswordRequest starts the OTP flow
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// VerifyOTPRequest checks a code without consuming it
type VerifyOTPRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// ResetPasswordRequest completes the OTP flow
type ResetPasswordRequest struct {
	Email     string `json:"email"`
	Code      string `json:"code"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
}

// ForgotPassword handles POST /forgot-password/
func (h *Handler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req ForgotPasswordRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	if err := h.resets.RequestReset(r.Context(), req.Email); err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, MessageResponse{Message: "reset code sent"})
}

// VerifyOTP handles POST /verify-otp/
func (h *Handler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req VerifyOTPRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	if err := h.resets.VerifyCode(r.Context(), req.Email, req.Code); err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, MessageResponse{Message: "code verified"})
}

// ResetPassword handles POST /reset-password/
func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req ResetPasswordRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	if err := h.resets.ResetPassword(r.Context(), req.Email, req.Code, req.Password, req.Password2); err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, MessageResponse{Message: "password reset"})
}
