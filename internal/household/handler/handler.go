// Package handler exposes registration drafts over HTTP.
package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"memberreg/internal/household/payload"
	"memberreg/internal/household/service"
	"memberreg/internal/household/submitter"
	"memberreg/pkg/domain"
	dErrors "memberreg/pkg/domain-errors"
	"memberreg/pkg/platform/httputil"
)

// MaxPhotoBytes bounds an uploaded photo.
const MaxPhotoBytes = 5 << 20

// Service defines the draft operations the handler needs.
type Service interface {
	CreateDraft(ctx context.Context) (*service.DraftView, error)
	GetDraft(ctx context.Context, id domain.DraftID) (*service.DraftView, error)
	SetField(ctx context.Context, id domain.DraftID, field, value string) (*service.DraftView, error)
	SetSpouseCount(ctx context.Context, id domain.DraftID, count int) (*service.DraftView, error)
	SetSpouseField(ctx context.Context, id domain.DraftID, index int, field, value string) (*service.DraftView, error)
	AddChild(ctx context.Context, id domain.DraftID) (int, *service.DraftView, error)
	SetChildField(ctx context.Context, id domain.DraftID, index int, field, value string) (*service.DraftView, error)
	RemoveChild(ctx context.Context, id domain.DraftID, index int) (*service.DraftView, error)
	SetPhoto(ctx context.Context, id domain.DraftID, filename string, data []byte) (*service.PhotoPreview, error)
	Validate(ctx context.Context, id domain.DraftID) error
	PreviewPayload(ctx context.Context, id domain.DraftID) (*payload.WirePayload, error)
	Submit(ctx context.Context, id domain.DraftID) (*submitter.Result, error)
	Discard(ctx context.Context, id domain.DraftID) error
}

// Handler handles draft endpoints.
type Handler struct {
	drafts         Service
	logger         *slog.Logger
	createThrottle []func(http.Handler) http.Handler
}

type Option func(*Handler)

// WithCreateThrottle guards draft creation with mw.
func WithCreateThrottle(mw func(http.Handler) http.Handler) Option {
	return func(h *Handler) {
		h.createThrottle = append(h.createThrottle, mw)
	}
}

// New creates a new draft Handler.
func New(drafts Service, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{drafts: drafts, logger: logger}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register registers the draft routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.With(h.createThrottle...).Post("/drafts", h.handleCreateDraft)
	r.Route("/drafts/{id}", func(r chi.Router) {
		r.Get("/", h.handleGetDraft)
		r.Delete("/", h.handleDiscardDraft)
		r.Patch("/fields", h.handleSetField)
		r.Put("/spouses", h.handleSetSpouseCount)
		r.Patch("/spouses/{index}", h.handleSetSpouseField)
		r.Post("/children", h.handleAddChild)
		r.Patch("/children/{index}", h.handleSetChildField)
		r.Delete("/children/{index}", h.handleRemoveChild)
		r.Put("/photo", h.handleSetPhoto)
		r.Post("/validate", h.handleValidate)
		r.Get("/payload", h.handlePreviewPayload)
		r.Post("/submit", h.handleSubmit)
	})
}

type addChildResponse struct {
	Index int                `json:"index"`
	Draft *service.DraftView `json:"draft"`
}

func (h *Handler) handleCreateDraft(w http.ResponseWriter, r *http.Request) {
	view, err := h.drafts.CreateDraft(r.Context())
	if err != nil {
		h.writeError(w, r, "failed to create draft", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, view)
}

func (h *Handler) handleGetDraft(w http.ResponseWriter, r *http.Request) {
	id, ok := h.draftID(w, r)
	if !ok {
		return
	}
	view, err := h.drafts.GetDraft(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "failed to load draft", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, view)
}

func (h *Handler) handleDiscardDraft(w http.ResponseWriter, r *http.Request) {
	id, ok := h.draftID(w, r)
	if !ok {
		return
	}
	if err := h.drafts.Discard(r.Context(), id); err != nil {
		h.writeError(w, r, "failed to discard draft", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleSetField(w http.ResponseWriter, r *http.Request) {
	id, ok := h.draftID(w, r)
	if !ok {
		return
	}
	req, ok := decodeFieldRequest(h, w, r)
	if !ok {
		return
	}
	view, err := h.drafts.SetField(r.Context(), id, req.Field, req.Value)
	if err != nil {
		h.writeError(w, r, "failed to set field", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, view)
}

func (h *Handler) handleSetSpouseCount(w http.ResponseWriter, r *http.Request) {
	id, ok := h.draftID(w, r)
	if !ok {
		return
	}
	var req SpouseCountRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		h.writeError(w, r, "invalid spouse count", err)
		return
	}
	view, err := h.drafts.SetSpouseCount(r.Context(), id, req.Count)
	if err != nil {
		h.writeError(w, r, "failed to set spouse count", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, view)
}

func (h *Handler) handleSetSpouseField(w http.ResponseWriter, r *http.Request) {
	id, ok := h.draftID(w, r)
	if !ok {
		return
	}
	index, ok := h.index(w, r)
	if !ok {
		return
	}
	req, ok := decodeFieldRequest(h, w, r)
	if !ok {
		return
	}
	view, err := h.drafts.SetSpouseField(r.Context(), id, index, req.Field, req.Value)
	if err != nil {
		h.writeError(w, r, "failed to set spouse field", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, view)
}

func (h *Handler) handleAddChild(w http.ResponseWriter, r *http.Request) {
	id, ok := h.draftID(w, r)
	if !ok {
		return
	}
	index, view, err := h.drafts.AddChild(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "failed to add child", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, addChildResponse{Index: index, Draft: view})
}

func (h *Handler) handleSetChildField(w http.ResponseWriter, r *http.Request) {
	id, ok := h.draftID(w, r)
	if !ok {
		return
	}
	index, ok := h.index(w, r)
	if !ok {
		return
	}
	req, ok := decodeFieldRequest(h, w, r)
	if !ok {
		return
	}
	view, err := h.drafts.SetChildField(r.Context(), id, index, req.Field, req.Value)
	if err != nil {
		h.writeError(w, r, "failed to set child field", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, view)
}

func (h *Handler) handleRemoveChild(w http.ResponseWriter, r *http.Request) {
	id, ok := h.draftID(w, r)
	if !ok {
		return
	}
	index, ok := h.index(w, r)
	if !ok {
		return
	}
	if _, err := h.drafts.RemoveChild(r.Context(), id, index); err != nil {
		h.writeError(w, r, "failed to remove child", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleSetPhoto(w http.ResponseWriter, r *http.Request) {
	id, ok := h.draftID(w, r)
	if !ok {
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, MaxPhotoBytes+1<<20)
	if err := r.ParseMultipartForm(MaxPhotoBytes); err != nil {
		h.writeError(w, r, "invalid photo upload", dErrors.Wrap(err, dErrors.CodeBadRequest, "expected multipart form with a photo"))
		return
	}
	file, header, err := r.FormFile("photo")
	if err != nil {
		h.writeError(w, r, "invalid photo upload", dErrors.Wrap(err, dErrors.CodeBadRequest, "missing photo file"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, MaxPhotoBytes+1))
	if err != nil {
		h.writeError(w, r, "invalid photo upload", dErrors.Wrap(err, dErrors.CodeBadRequest, "failed to read photo"))
		return
	}
	if len(data) > MaxPhotoBytes {
		h.writeError(w, r, "invalid photo upload", dErrors.New(dErrors.CodeInvalidInput, "photo exceeds 5 MiB"))
		return
	}

	preview, err := h.drafts.SetPhoto(r.Context(), id, header.Filename, data)
	if err != nil {
		h.writeError(w, r, "failed to store photo", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, preview)
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.draftID(w, r)
	if !ok {
		return
	}
	if err := h.drafts.Validate(r.Context(), id); err != nil {
		h.writeError(w, r, "draft is not ready for submission", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handlePreviewPayload(w http.ResponseWriter, r *http.Request) {
	id, ok := h.draftID(w, r)
	if !ok {
		return
	}
	p, err := h.drafts.PreviewPayload(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "failed to build payload", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	id, ok := h.draftID(w, r)
	if !ok {
		return
	}
	res, err := h.drafts.Submit(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "submission failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) draftID(w http.ResponseWriter, r *http.Request) (domain.DraftID, bool) {
	id, err := domain.ParseDraftID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, "invalid draft id", err)
		return domain.DraftID{}, false
	}
	return id, true
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || index < 0 {
		h.writeError(w, r, "invalid index", dErrors.New(dErrors.CodeBadRequest, "index must be a non-negative integer"))
		return 0, false
	}
	return index, true
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		h.writeError(w, r, "invalid request body", dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid request body"))
		return false
	}
	return true
}

func decodeFieldRequest(h *Handler, w http.ResponseWriter, r *http.Request) (*SetFieldRequest, bool) {
	var req SetFieldRequest
	if !h.decode(w, r, &req) {
		return nil, false
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		h.writeError(w, r, "invalid field request", err)
		return nil, false
	}
	return &req, true
}
