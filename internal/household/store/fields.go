package store

import (
	"memberreg/internal/household/models"
	pstrings "memberreg/pkg/platform/strings"
)

// Field names mirror the form's input names so a presentation layer can post
// its inputs unchanged.
const (
	FieldHeadOfFamily = "headOfFamily"
	FieldAadharNumber = "aadharNumber"
)

type draftSetter func(d *Draft, value string)

var draftFields = map[string]draftSetter{
	FieldHeadOfFamily:   func(d *Draft, v string) { d.head = models.ParseHeadOfFamily(v) },
	"fullName":          func(d *Draft, v string) { d.applicant.FullName = v },
	"phoneNumber":       func(d *Draft, v string) { d.applicant.PhoneNumber = v },
	"alternateNumber":   func(d *Draft, v string) { d.applicant.AlternateNumber = v },
	"email":             func(d *Draft, v string) { d.applicant.Email = v },
	"dob":               func(d *Draft, v string) { d.applicant.DOB = v },
	"caste":             func(d *Draft, v string) { d.applicant.Caste = v },
	FieldAadharNumber:   func(d *Draft, v string) { d.applicant.AadharNumber = pstrings.DigitsOnly(v) },
	"qualification":     func(d *Draft, v string) { d.applicant.Qualification = v },
	"occupationType":    func(d *Draft, v string) { d.applicant.OccupationType = models.OccupationType(v) },
	"occupationDetails": func(d *Draft, v string) { d.applicant.OccupationDetails = v },
	"companyName":       func(d *Draft, v string) { d.applicant.CompanyName = v },
	"monthlyIncome":     func(d *Draft, v string) { d.applicant.MonthlyIncome = models.IncomeBracket(v) },
	"houseType":         func(d *Draft, v string) { d.applicant.HouseType = models.HouseType(v) },
	"address":           func(d *Draft, v string) { d.applicant.Address = v },

	"fatherName":      func(d *Draft, v string) { d.father.Name = v },
	"fatherStatus":    func(d *Draft, v string) { d.father.Status = models.ParentStatus(v) },
	"fatherDeathYear": func(d *Draft, v string) { d.father.DeathYear = v },
	"motherName":      func(d *Draft, v string) { d.mother.Name = v },
	"motherStatus":    func(d *Draft, v string) { d.mother.Status = models.ParentStatus(v) },
	"motherDeathYear": func(d *Draft, v string) { d.mother.DeathYear = v },

	"husbandName":          func(d *Draft, v string) { d.husband.Name = v },
	"husbandDOB":           func(d *Draft, v string) { d.husband.DOB = v },
	"husbandOccupation":    func(d *Draft, v string) { d.husband.Occupation = v },
	"husbandNativity":      func(d *Draft, v string) { d.husband.Nativity = v },
	"husbandCaste":         func(d *Draft, v string) { d.husband.Caste = v },
	"husbandQualification": func(d *Draft, v string) { d.husband.Qualification = v },
	"husbandBloodGroup":    func(d *Draft, v string) { d.husband.BloodGroup = v },
	"husbandStatus":        func(d *Draft, v string) { d.husband.Status = models.SpouseStatus(v) },

	"remarks": func(d *Draft, v string) { d.remarks = v },
}

type spouseSetter func(s *models.Spouse, value string)

var spouseFields = map[string]spouseSetter{
	"name":          func(s *models.Spouse, v string) { s.Name = v },
	"dob":           func(s *models.Spouse, v string) { s.DOB = v },
	"marriageDate":  func(s *models.Spouse, v string) { s.MarriageDate = v },
	"occupation":    func(s *models.Spouse, v string) { s.Occupation = v },
	"nativity":      func(s *models.Spouse, v string) { s.Nativity = v },
	"caste":         func(s *models.Spouse, v string) { s.Caste = v },
	"qualification": func(s *models.Spouse, v string) { s.Qualification = v },
	"bloodGroup":    func(s *models.Spouse, v string) { s.BloodGroup = v },
	"status":        func(s *models.Spouse, v string) { s.Status = models.SpouseStatus(v) },
}

type childSetter func(c *models.Child, value string)

var childFields = map[string]childSetter{
	"name":                 func(c *models.Child, v string) { c.Name = v },
	"dob":                  func(c *models.Child, v string) { c.DOB = v },
	"mother":               func(c *models.Child, v string) { c.Mother = v },
	"qualification":        func(c *models.Child, v string) { c.Qualification = v },
	"maritalStatus":        func(c *models.Child, v string) { c.MaritalStatus = models.MaritalStatus(v) },
	"bloodGroup":           func(c *models.Child, v string) { c.BloodGroup = v },
	"physicallyChallenged": func(c *models.Child, v string) { c.PhysicallyChallenged = models.Challenged(v) },

	// names used by the original web form
	"marriageStatus": func(c *models.Child, v string) { c.MaritalStatus = models.MaritalStatus(v) },
	"phyChallenged":  func(c *models.Child, v string) { c.PhysicallyChallenged = models.Challenged(v) },
}
