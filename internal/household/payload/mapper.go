package payload

import (
	"strings"

	"memberreg/internal/household/models"
)

// UnknownChildName is sent for children whose name was left blank.
const UnknownChildName = "Unknown"

// Map converts rec to the wire payload. It never fails: unparsable dates and
// numbers become null. Callers are expected to validate rec first.
func Map(rec models.Record) WirePayload {
	a := rec.Applicant
	p := WirePayload{
		FullName:          strings.TrimSpace(a.FullName),
		PhoneNumber:       strings.TrimSpace(a.PhoneNumber),
		ResidentialStatus: a.HouseType.Code(),
		Address:           strings.TrimSpace(a.Address),
		AlternateNumber:   optString(a.AlternateNumber),
		DateOfBirth:       Timestamp(a.DOB),
		CasteGroup:        optString(a.Caste),
		AadharNumber:      optString(a.AadharNumber),
		Qualification:     optString(a.Qualification),
		Occupation:        a.OccupationType.Code(),
		OccupationDetail:  optString(a.OccupationDetails),
		MonthlyIncome:     a.MonthlyIncome.Code(),
		EmailID:           optString(a.Email),
		FatherName:        optString(rec.Father.Name),
		FatherDeathYear:   deathYear(rec.Father),
		MotherName:        optString(rec.Mother.Name),
		MotherDeathYear:   deathYear(rec.Mother),
		NumberOfChildren:  len(rec.Children),
		Feedback:          optString(rec.Remarks),
		SpouseDetails:     []SpouseEntry{},
		ChildDetails:      make([]ChildEntry, 0, len(rec.Children)),
	}

	switch h := rec.Household.(type) {
	case models.HusbandHousehold:
		p.NumberOfWives = h.SpouseCount
		active, _ := h.ActiveSpouses()
		for _, s := range active {
			p.SpouseDetails = append(p.SpouseDetails, mapSpouse(s))
		}
		if len(active) > 0 {
			p.MarriageDate = Timestamp(active[0].MarriageDate)
		}
	case models.WifeHousehold:
		p.BloodGroup = optString(h.Husband.BloodGroup)
	}

	for _, c := range rec.Children {
		p.ChildDetails = append(p.ChildDetails, mapChild(c))
	}
	return p
}

func mapSpouse(s models.Spouse) SpouseEntry {
	return SpouseEntry{
		Name:          strings.TrimSpace(s.Name),
		DateOfBirth:   Timestamp(s.DOB),
		MarriageDate:  Timestamp(s.MarriageDate),
		Occupation:    optString(s.Occupation),
		Native:        optString(s.Nativity),
		Caste:         optString(s.Caste),
		Qualification: optString(s.Qualification),
		BloodGroup:    optString(s.BloodGroup),
		MaritalStatus: s.Status.Code(),
	}
}

func mapChild(c models.Child) ChildEntry {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		name = UnknownChildName
	}
	return ChildEntry{
		Name:                   name,
		Gender:                 models.DefaultChildGender.Code(),
		DateOfBirth:            Timestamp(c.DOB),
		Qualification:          optString(c.Qualification),
		MaritalStatus:          c.MaritalStatus.Code(),
		BloodGroup:             optString(c.BloodGroup),
		IsPhysicallyChallenged: c.PhysicallyChallenged.Bool(),
	}
}

// deathYear is only transmitted while the parent is recorded as Late.
func deathYear(p models.Parent) *int {
	if !p.Status.IsLate() {
		return nil
	}
	return LenientInt(p.DeathYear)
}

func optString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
