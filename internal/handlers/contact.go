package handlers

import (
	"errors"
	"net/http"

	"portfolio-api/internal/contextutil"
	"portfolio-api/internal/service"
	"portfolio-api/internal/validation"
)

const maxContactBodyBytes = 64 << 10

// ContactHandler relays contact form submissions.
type ContactHandler struct {
	contactService service.ContactService
	limiter        Limiter
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contactService service.ContactService, limiter Limiter) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		limiter:        limiter,
	}
}

// ContactResponse is the success body of a submission.
type ContactResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// ServeHTTP handles HTTP requests for the contact form.
func (h *ContactHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(ctx, w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	decision, ok := allow(w, r, h.limiter)
	if !ok {
		return
	}

	var form service.ContactForm
	if issues := validation.DecodeJSON(http.MaxBytesReader(w, r.Body, maxContactBodyBytes), &form); len(issues) > 0 {
		writeJSON(ctx, w, http.StatusBadRequest, ErrorResponse{Error: "Invalid form data", Details: issues})
		return
	}

	if err := h.contactService.Submit(ctx, form); err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			writeJSON(ctx, w, http.StatusBadRequest, ErrorResponse{Error: "Invalid form data", Details: validationErr.Issues})
			return
		}
		logger.ErrorContext(ctx, "contact submission failed", "error", err)
		writeError(ctx, w, http.StatusInternalServerError, "Failed to send message. Please try again.")
		return
	}

	setRateLimitHeaders(w, decision, false)
	writeJSON(ctx, w, http.StatusOK, ContactResponse{
		Message: "Message sent successfully!",
		Success: true,
	})
}
