// Package validation decides whether a household record may be submitted.
//
// Checks run in a fixed order and stop at the first failure:
//  1. applicant core fields: full name, phone, house type, address
//  2. husband-headed households: every named spouse is complete
//  3. every child has a date of birth
//
// Everything else is optional regardless of branch.
package validation

import (
	"fmt"

	"memberreg/internal/household/models"
	dErrors "memberreg/pkg/domain-errors"
	pstrings "memberreg/pkg/platform/strings"
)

// Reason identifies which check failed.
type Reason string

const (
	ReasonMissingApplicantField Reason = "missing_applicant_field"
	ReasonIncompleteSpouse      Reason = "incomplete_spouse_record"
	ReasonMissingChildDOB       Reason = "missing_child_dob"
)

// Error is the single reason a record was rejected. Position is the 1-based
// ordinal of the spouse or child concerned, and zero for applicant fields.
type Error struct {
	Reason   Reason
	Field    string
	Position int
}

func (e *Error) Error() string {
	return e.Message()
}

// Message is the user-facing description of the failure.
func (e *Error) Message() string {
	switch e.Reason {
	case ReasonMissingApplicantField:
		return fmt.Sprintf("missing required applicant field: %s", e.Field)
	case ReasonIncompleteSpouse:
		return fmt.Sprintf("incomplete spouse record for wife %d: %s is required once a name is entered", e.Position, e.Field)
	case ReasonMissingChildDOB:
		return fmt.Sprintf("missing date of birth for child %d", e.Position)
	default:
		return string(e.Reason)
	}
}

// Unwrap exposes the failure as a domain validation error.
func (e *Error) Unwrap() error {
	return dErrors.New(dErrors.CodeValidation, e.Message())
}

type requiredField struct {
	name  string
	value func(models.Record) string
}

var applicantRequired = []requiredField{
	{"fullName", func(r models.Record) string { return r.Applicant.FullName }},
	{"phoneNumber", func(r models.Record) string { return r.Applicant.PhoneNumber }},
	{"houseType", func(r models.Record) string { return string(r.Applicant.HouseType) }},
	{"address", func(r models.Record) string { return r.Applicant.Address }},
}

type spouseField struct {
	name  string
	value func(models.Spouse) string
}

var spouseRequired = []spouseField{
	{"dob", func(s models.Spouse) string { return s.DOB }},
	{"caste", func(s models.Spouse) string { return s.Caste }},
	{"nativity", func(s models.Spouse) string { return s.Nativity }},
	{"occupation", func(s models.Spouse) string { return s.Occupation }},
	{"qualification", func(s models.Spouse) string { return s.Qualification }},
	{"bloodGroup", func(s models.Spouse) string { return s.BloodGroup }},
	{"status", func(s models.Spouse) string { return string(s.Status) }},
}

// Validate returns nil when rec may be submitted, or the first *Error found.
func Validate(rec models.Record) error {
	for _, f := range applicantRequired {
		if pstrings.IsBlank(f.value(rec)) {
			return &Error{Reason: ReasonMissingApplicantField, Field: f.name}
		}
	}

	if h, ok := rec.Household.(models.HusbandHousehold); ok {
		for i, s := range h.Spouses {
			if !s.Active() {
				continue
			}
			for _, f := range spouseRequired {
				if pstrings.IsBlank(f.value(s)) {
					return &Error{Reason: ReasonIncompleteSpouse, Field: f.name, Position: i + 1}
				}
			}
		}
	}

	for i, c := range rec.Children {
		if pstrings.IsBlank(c.DOB) {
			return &Error{Reason: ReasonMissingChildDOB, Field: "dob", Position: i + 1}
		}
	}
	return nil
}
