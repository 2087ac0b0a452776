package store

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"memberreg/internal/household/models"
	"memberreg/pkg/domain"
	dErrors "memberreg/pkg/domain-errors"
)

// Draft is the single source of truth for one in-progress registration.
//
// Invariants:
//   - len(spouses) == spouseCount, with spouseCount in [1, 4]
//   - children keep insertion order; removal shifts later entries down
//   - aadharNumber only ever holds ASCII digits
//
// Both household branches are kept: switching the head of family parks the
// other branch's data instead of dropping it. Snapshots expose only the
// active branch.
type Draft struct {
	ID        domain.DraftID
	CreatedAt time.Time

	mu          sync.RWMutex
	head        models.HeadOfFamily
	applicant   models.Applicant
	father      models.Parent
	mother      models.Parent
	spouseCount int
	spouses     []models.Spouse
	husband     models.Husband
	children    []models.Child
	remarks     string
	photo       *models.Photo

	submitting *semaphore.Weighted
}

// NewDraft returns an empty husband-headed draft with one blank spouse.
func NewDraft(id domain.DraftID, now time.Time) *Draft {
	return &Draft{
		ID:          id,
		CreatedAt:   now,
		head:        models.HeadOfFamilyHusband,
		spouseCount: models.MinSpouses,
		spouses:     make([]models.Spouse, models.MinSpouses),
		children:    []models.Child{},
		submitting:  semaphore.NewWeighted(1),
	}
}

// SetField updates one scalar field by its form name. The national ID field
// silently keeps digits only. Enum values outside the known labels are stored
// as given and resolved when the payload is built.
func (d *Draft) SetField(name, value string) error {
	set, ok := draftFields[name]
	if !ok {
		return dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("unknown field %q", name))
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	set(d, value)
	return nil
}

// SetSpouseCount resizes the spouse list to n. Growing appends blank spouses,
// shrinking truncates from the tail; retained entries are left untouched.
func (d *Draft) SetSpouseCount(n int) error {
	if n < models.MinSpouses || n > models.MaxSpouses {
		return dErrors.New(dErrors.CodeInvalidInput,
			fmt.Sprintf("spouse count must be between %d and %d", models.MinSpouses, models.MaxSpouses))
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if n > len(d.spouses) {
		d.spouses = append(d.spouses, make([]models.Spouse, n-len(d.spouses))...)
	} else {
		d.spouses = d.spouses[:n]
	}
	d.spouseCount = n
	return nil
}

// SetSpouseField updates one field of the spouse at index.
func (d *Draft) SetSpouseField(index int, field, value string) error {
	set, ok := spouseFields[field]
	if !ok {
		return dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("unknown spouse field %q", field))
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if index < 0 || index >= len(d.spouses) {
		return indexError("spouse", index, len(d.spouses))
	}
	set(&d.spouses[index], value)
	return nil
}

// AddChild appends a blank child and returns its index.
func (d *Draft) AddChild() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.children = append(d.children, models.Child{})
	return len(d.children) - 1
}

// RemoveChild removes the child at index; later children shift down.
func (d *Draft) RemoveChild(index int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if index < 0 || index >= len(d.children) {
		return indexError("child", index, len(d.children))
	}
	d.children = slices.Delete(d.children, index, index+1)
	return nil
}

// SetChildField updates one field of the child at index.
func (d *Draft) SetChildField(index int, field, value string) error {
	set, ok := childFields[field]
	if !ok {
		return dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("unknown child field %q", field))
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if index < 0 || index >= len(d.children) {
		return indexError("child", index, len(d.children))
	}
	set(&d.children[index], value)
	return nil
}

// SetPhoto stores the photo blob as received.
func (d *Draft) SetPhoto(photo models.Photo) {
	data := slices.Clone(photo.Data)
	d.mu.Lock()
	defer d.mu.Unlock()
	d.photo = &models.Photo{Filename: photo.Filename, Data: data}
}

// Snapshot returns a deep copy of the record with only the active household
// branch populated.
func (d *Draft) Snapshot() models.Record {
	d.mu.RLock()
	defer d.mu.RUnlock()

	rec := models.Record{
		HeadOfFamily: d.head,
		Applicant:    d.applicant,
		Father:       d.father,
		Mother:       d.mother,
		Children:     slices.Clone(d.children),
		Remarks:      d.remarks,
	}
	switch d.head {
	case models.HeadOfFamilyHusband:
		rec.Household = models.HusbandHousehold{
			SpouseCount: d.spouseCount,
			Spouses:     slices.Clone(d.spouses),
		}
	case models.HeadOfFamilyWife:
		rec.Household = models.WifeHousehold{Husband: d.husband}
	}
	if d.photo != nil {
		rec.Photo = &models.Photo{Filename: d.photo.Filename, Data: slices.Clone(d.photo.Data)}
	}
	return rec
}

// MotherOptions lists the values a child's mother reference may take: one
// entry per declared wife in a husband-headed household, or "Self" when the
// wife heads the family.
func (d *Draft) MotherOptions() []models.MotherOption {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.head != models.HeadOfFamilyHusband {
		return []models.MotherOption{{Value: models.SelfMother, Label: models.SelfMother}}
	}
	opts := make([]models.MotherOption, 0, len(d.spouses))
	for i, s := range d.spouses {
		value := fmt.Sprintf("Wife %d", i+1)
		label := value
		if s.Active() {
			label = s.Name
		}
		if s.Status != "" {
			label = fmt.Sprintf("%s (%s)", label, s.Status)
		}
		opts = append(opts, models.MotherOption{Value: value, Label: label})
	}
	return opts
}

// BeginSubmit marks the draft as submitting. It returns false while another
// submission of the same draft is pending; otherwise the caller must invoke
// the returned release func once the submission completes.
func (d *Draft) BeginSubmit() (release func(), ok bool) {
	if !d.submitting.TryAcquire(1) {
		return nil, false
	}
	var once sync.Once
	return func() { once.Do(func() { d.submitting.Release(1) }) }, true
}

func indexError(kind string, index, length int) error {
	return dErrors.New(dErrors.CodeInvalidInput,
		fmt.Sprintf("%s index %d out of range [0, %d)", kind, index, length))
}
