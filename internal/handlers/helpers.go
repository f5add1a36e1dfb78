package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/benx421/catalog/internal/service"
)

// ErrorResponse is the structured error envelope returned by every endpoint
type ErrorResponse struct {
	Fields  map[string]string `json:"fields,omitempty"`
	Error   string            `json:"error"`
	Message string            `json:"message"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

// decodeJSON parses the request body into dst, rejecting malformed payloads
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   service.ErrCodeValidation,
			Message: "invalid JSON payload",
		})
		return false
	}
	return true
}

// pathID parses the {id} path segment, writing a 404 on failure
func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.writeJSON(w, http.StatusNotFound, ErrorResponse{
			Error:   service.ErrCodeNotFound,
			Message: "product not found",
		})
		return uuid.Nil, false
	}
	return id, true
}

// writeServiceError maps a service error to its HTTP response
func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	var svcErr *service.ServiceError
	if !errors.As(err, &svcErr) {
		h.logger.Error("unexpected error", "error", err)
		h.writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error:   service.ErrCodeInternalError,
			Message: "internal error",
		})
		return
	}

	if svcErr.Code == service.ErrCodeInternalError {
		h.logger.Error("internal service error", "error", svcErr)
	}

	h.writeJSON(w, statusForCode(svcErr.Code), ErrorResponse{
		Error:   svcErr.Code,
		Message: svcErr.Message,
		Fields:  svcErr.Fields,
	})
}

func statusForCode(code string) int {
	switch code {
	case service.ErrCodeNotFound, service.ErrCodeUnknownEmail:
		return http.StatusNotFound
	case service.ErrCodeConflict:
		return http.StatusConflict
	case service.ErrCodeInvalidCredentials:
		return http.StatusUnauthorized
	case service.ErrCodeDeliveryFailed:
		return http.StatusBadGateway
	case service.ErrCodeInternalError:
		return http.StatusInternalServerError
	default:
		// Validation and policy violations: invalid_discount, missing_query,
		// missing_bounds, not_numeric, invalid_range, password_mismatch,
		// weak_password, wrong_old_password, invalid_code, validation_error.
		return http.StatusBadRequest
	}
}
