package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/mmrmagno/valart/internal/domain"
	"github.com/mmrmagno/valart/internal/service/submission"
)

// submissionService defines the minimal interface needed by SubmitHandler.
type submissionService interface {
	Submit(ctx context.Context, input submission.SubmitInput) (*submission.Result, error)
}

// SubmitHandler serves the submission REST endpoint.
type SubmitHandler struct {
	svc submissionService
	log *slog.Logger
}

// NewSubmitHandler creates a SubmitHandler.
func NewSubmitHandler(svc submissionService, logger *slog.Logger) *SubmitHandler {
	return &SubmitHandler{svc: svc, log: logger.With("handler", "submit")}
}

type submitRequest struct {
	AuthorName   string      `json:"authorName"`
	CreationName string      `json:"creationName"`
	Art          string      `json:"art"`
	GridSize     gridSizeDTO `json:"gridSize"`
	AuthorEmail  *string     `json:"authorEmail,omitempty"`
}

type gridSizeDTO struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type submitResponse struct {
	ID          string    `json:"id"`
	SubmittedAt time.Time `json:"submittedAt"`
	EmailSent   bool      `json:"emailSent"`
	Message     string    `json:"message"`
}

type fieldErrorDTO struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type validationErrorResponse struct {
	Error  string          `json:"error"`
	Fields []fieldErrorDTO `json:"fields"`
}

// Submit handles POST /api/submit.
func (h *SubmitHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Submit(r.Context(), submission.SubmitInput{
		AuthorName:   req.AuthorName,
		CreationName: req.CreationName,
		Art:          req.Art,
		GridWidth:    req.GridSize.Width,
		GridHeight:   req.GridSize.Height,
		AuthorEmail:  req.AuthorEmail,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, submitResponse{
		ID:          result.Artwork.ID.String(),
		SubmittedAt: result.Artwork.SubmittedAt,
		EmailSent:   result.EmailSent,
		Message:     "Submission received and awaiting review",
	})
}

func (h *SubmitHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		fields := make([]fieldErrorDTO, 0, len(verr.Errors))
		for _, fe := range verr.Errors {
			fields = append(fields, fieldErrorDTO{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, validationErrorResponse{
			Error:  "validation failed",
			Fields: fields,
		})
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
