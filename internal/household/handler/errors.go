package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"memberreg/internal/household/submitter"
	"memberreg/internal/household/validation"
	dErrors "memberreg/pkg/domain-errors"
	"memberreg/pkg/platform/httputil"
	"memberreg/pkg/requestcontext"
)

type validationErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	Reason           string `json:"reason"`
	Field            string `json:"field"`
	Position         int    `json:"position,omitempty"`
}

type submissionErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	Category         string `json:"category"`
	Field            string `json:"field,omitempty"`
	StatusCode       int    `json:"status_code,omitempty"`
}

// writeError logs err and writes the matching error envelope. Validation and
// submission failures carry extra detail for the form to display.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	ctx := r.Context()
	level := slog.LevelWarn
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		level = slog.LevelError
	}
	if h.logger != nil {
		h.logger.Log(ctx, level, msg,
			"request_id", requestcontext.RequestID(ctx),
			"api_version", requestcontext.APIVersion(ctx).String(),
			"error", err.Error(),
		)
	}

	var verr *validation.Error
	if errors.As(err, &verr) {
		httputil.WriteJSON(w, http.StatusUnprocessableEntity, validationErrorResponse{
			Error:            string(dErrors.CodeValidation),
			ErrorDescription: verr.Message(),
			Reason:           string(verr.Reason),
			Field:            verr.Field,
			Position:         verr.Position,
		})
		return
	}

	var serr *submitter.Error
	if errors.As(err, &serr) {
		code := serr.DomainCode()
		httputil.WriteJSON(w, dErrors.ToHTTPStatus(code), submissionErrorResponse{
			Error:            string(code),
			ErrorDescription: serr.Message,
			Category:         string(serr.Category),
			Field:            serr.Field,
			StatusCode:       serr.StatusCode,
		})
		return
	}

	httputil.WriteError(w, err)
}
