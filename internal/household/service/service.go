// Package service orchestrates registration drafts: editing through the
// store, validation, payload preview and the one-shot submission.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"memberreg/internal/household/models"
	"memberreg/internal/household/payload"
	"memberreg/internal/household/store"
	"memberreg/internal/household/submitter"
	"memberreg/internal/household/validation"
	"memberreg/internal/platform/metrics"
	"memberreg/pkg/domain"
	dErrors "memberreg/pkg/domain-errors"
	"memberreg/pkg/platform/middleware/metadata"
	"memberreg/pkg/platform/sentinel"
	"memberreg/pkg/requestcontext"
)

type DraftStore interface {
	Save(ctx context.Context, draft *store.Draft) error
	FindByID(ctx context.Context, id domain.DraftID) (*store.Draft, error)
	Delete(ctx context.Context, id domain.DraftID) error
}

type Submitter interface {
	Submit(ctx context.Context, p payload.WirePayload) (*submitter.Result, error)
}

// DraftView is what callers see of a draft: its record snapshot and the
// choices available for a child's mother.
type DraftView struct {
	ID            domain.DraftID        `json:"id"`
	CreatedAt     time.Time             `json:"createdAt"`
	Record        models.Record         `json:"record"`
	MotherOptions []models.MotherOption `json:"motherOptions"`
}

// PhotoPreview describes a stored photo for local display.
type PhotoPreview struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Size        int    `json:"size"`
	DataURL     string `json:"dataUrl"`
}

// Service orchestrates registration drafts.
type Service struct {
	drafts    DraftStore
	submitter Submitter
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// New constructs a Service.
func New(drafts DraftStore, sub Submitter, opts ...Option) *Service {
	s := &Service{drafts: drafts, submitter: sub}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateDraft starts an empty husband-headed draft.
func (s *Service) CreateDraft(ctx context.Context) (*DraftView, error) {
	draft := store.NewDraft(domain.NewDraftID(), requestcontext.Now(ctx))
	if err := s.drafts.Save(ctx, draft); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save draft")
	}
	s.log(ctx, slog.LevelInfo, "draft created", "draft_id", draft.ID.String())
	if s.metrics != nil {
		s.metrics.IncrementDraftsCreated()
	}
	return view(draft), nil
}

func (s *Service) GetDraft(ctx context.Context, id domain.DraftID) (*DraftView, error) {
	draft, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return view(draft), nil
}

// SetField updates one applicant, parent, husband or remarks field.
func (s *Service) SetField(ctx context.Context, id domain.DraftID, field, value string) (*DraftView, error) {
	return s.mutate(ctx, id, func(d *store.Draft) error {
		return d.SetField(field, value)
	})
}

// SetSpouseCount resizes the declared spouse list.
func (s *Service) SetSpouseCount(ctx context.Context, id domain.DraftID, count int) (*DraftView, error) {
	return s.mutate(ctx, id, func(d *store.Draft) error {
		return d.SetSpouseCount(count)
	})
}

func (s *Service) SetSpouseField(ctx context.Context, id domain.DraftID, index int, field, value string) (*DraftView, error) {
	return s.mutate(ctx, id, func(d *store.Draft) error {
		return d.SetSpouseField(index, field, value)
	})
}

// AddChild appends a blank child and returns its index with the new view.
func (s *Service) AddChild(ctx context.Context, id domain.DraftID) (int, *DraftView, error) {
	draft, err := s.find(ctx, id)
	if err != nil {
		return 0, nil, err
	}
	index := draft.AddChild()
	return index, view(draft), nil
}

func (s *Service) SetChildField(ctx context.Context, id domain.DraftID, index int, field, value string) (*DraftView, error) {
	return s.mutate(ctx, id, func(d *store.Draft) error {
		return d.SetChildField(index, field, value)
	})
}

func (s *Service) RemoveChild(ctx context.Context, id domain.DraftID, index int) (*DraftView, error) {
	return s.mutate(ctx, id, func(d *store.Draft) error {
		return d.RemoveChild(index)
	})
}

// SetPhoto stores the photo blob as received and returns a preview of it.
// The content is never decoded.
func (s *Service) SetPhoto(ctx context.Context, id domain.DraftID, filename string, data []byte) (*PhotoPreview, error) {
	if len(data) == 0 {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "photo is empty")
	}
	draft, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	photo := models.Photo{Filename: filename, Data: data}
	draft.SetPhoto(photo)
	return &PhotoPreview{
		Filename:    photo.Filename,
		ContentType: photo.ContentType(),
		Size:        len(photo.Data),
		DataURL:     photo.PreviewURL(),
	}, nil
}

// Validate checks the draft without building or sending anything. A failed
// check is returned as a *validation.Error.
func (s *Service) Validate(ctx context.Context, id domain.DraftID) error {
	draft, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	return s.validate(ctx, draft.ID, draft.Snapshot())
}

// PreviewPayload validates the draft and returns the payload that a
// submission would send.
func (s *Service) PreviewPayload(ctx context.Context, id domain.DraftID) (*payload.WirePayload, error) {
	draft, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	rec := draft.Snapshot()
	if err := s.validate(ctx, draft.ID, rec); err != nil {
		return nil, err
	}
	p := payload.Map(rec)
	return &p, nil
}

// Submit validates, maps and sends the draft exactly once. A second call
// while one is pending fails with a conflict. On success the draft is
// discarded; on any failure it is left as it was for correction and a
// manual retry. Server and transport failures are returned as
// *submitter.Error, validation failures as *validation.Error.
func (s *Service) Submit(ctx context.Context, id domain.DraftID) (*submitter.Result, error) {
	draft, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	release, ok := draft.BeginSubmit()
	if !ok {
		s.log(ctx, slog.LevelWarn, "submission already in flight", "draft_id", id.String())
		return nil, dErrors.Wrap(sentinel.ErrAlreadyInFlight, dErrors.CodeConflict, "a submission for this draft is already in progress")
	}
	defer release()

	rec := draft.Snapshot()
	if err := s.validate(ctx, id, rec); err != nil {
		return nil, err
	}

	res, err := s.submitter.Submit(ctx, payload.Map(rec))
	if err != nil {
		var se *submitter.Error
		if !errors.As(err, &se) {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "submission failed")
		}
		s.log(ctx, slog.LevelWarn, "submission failed",
			"draft_id", id.String(),
			"category", string(se.Category),
			"status", se.StatusCode,
			"message", se.Message,
		)
		return nil, err
	}

	s.log(ctx, slog.LevelInfo, "registration submitted",
		"draft_id", id.String(),
		"status", res.StatusCode,
		"device", metadata.DeviceName(requestcontext.UserAgent(ctx)),
		"client_ip", requestcontext.ClientIP(ctx),
	)
	if err := s.discard(ctx, id); err != nil && !errors.Is(err, store.ErrNotFound) {
		s.log(ctx, slog.LevelError, "failed to discard submitted draft", "draft_id", id.String(), "error", err)
	}
	return res, nil
}

// Discard abandons a draft.
func (s *Service) Discard(ctx context.Context, id domain.DraftID) error {
	if err := s.discard(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "draft not found")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to discard draft")
	}
	s.log(ctx, slog.LevelInfo, "draft discarded", "draft_id", id.String())
	return nil
}

func (s *Service) discard(ctx context.Context, id domain.DraftID) error {
	if err := s.drafts.Delete(ctx, id); err != nil {
		return err
	}
	if s.metrics != nil {
		s.metrics.IncrementDraftsDiscarded()
	}
	return nil
}

func (s *Service) validate(ctx context.Context, id domain.DraftID, rec models.Record) error {
	err := validation.Validate(rec)
	var verr *validation.Error
	if errors.As(err, &verr) {
		s.log(ctx, slog.LevelInfo, "draft failed validation",
			"draft_id", id.String(),
			"reason", string(verr.Reason),
			"field", verr.Field,
			"position", verr.Position,
		)
		if s.metrics != nil {
			s.metrics.IncrementValidationFailure(string(verr.Reason))
		}
	}
	return err
}

func (s *Service) mutate(ctx context.Context, id domain.DraftID, apply func(*store.Draft) error) (*DraftView, error) {
	draft, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := apply(draft); err != nil {
		return nil, err
	}
	return view(draft), nil
}

func (s *Service) find(ctx context.Context, id domain.DraftID) (*store.Draft, error) {
	draft, err := s.drafts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "draft not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load draft")
	}
	return draft, nil
}

func (s *Service) log(ctx context.Context, level slog.Level, msg string, args ...any) {
	if s.logger == nil {
		return
	}
	args = append(args, "request_id", requestcontext.RequestID(ctx))
	s.logger.Log(ctx, level, msg, args...)
}

func view(d *store.Draft) *DraftView {
	return &DraftView{
		ID:            d.ID,
		CreatedAt:     d.CreatedAt,
		Record:        d.Snapshot(),
		MotherOptions: d.MotherOptions(),
	}
}
