package domain

import (
	"github.com/google/uuid"

	dErrors "memberreg/pkg/domain-errors"
)

// DraftID identifies one in-progress household registration.
type DraftID uuid.UUID

// NewDraftID returns a fresh random draft ID.
func NewDraftID() DraftID {
	return DraftID(uuid.New())
}

// ParseDraftID validates s as a non-nil UUID.
func ParseDraftID(s string) (DraftID, error) {
	if s == "" {
		return DraftID{}, dErrors.New(dErrors.CodeInvalidInput, "draft ID cannot be empty")
	}
	parsed, err := uuid.Parse(s)
	if err != nil {
		return DraftID{}, dErrors.New(dErrors.CodeInvalidInput, "invalid draft ID")
	}
	if parsed == uuid.Nil {
		return DraftID{}, dErrors.New(dErrors.CodeInvalidInput, "draft ID cannot be nil")
	}
	return DraftID(parsed), nil
}

func (id DraftID) String() string {
	return uuid.UUID(id).String()
}

// IsNil reports whether the ID is the zero UUID.
func (id DraftID) IsNil() bool {
	return uuid.UUID(id) == uuid.Nil
}

// MarshalText encodes the ID in its canonical UUID form.
func (id DraftID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *DraftID) UnmarshalText(b []byte) error {
	parsed, err := ParseDraftID(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
