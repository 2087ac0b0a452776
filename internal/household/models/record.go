package models

import (
	"strings"
)

// Bounds of the declared spouse count of a husband-headed household.
const (
	MinSpouses = 1
	MaxSpouses = 4
)

// Applicant holds the head of family's own scalar fields.
type Applicant struct {
	FullName          string         `json:"fullName"`
	PhoneNumber       string         `json:"phoneNumber"`
	AlternateNumber   string         `json:"alternateNumber"`
	Email             string         `json:"email"`
	DOB               string         `json:"dob"`
	Caste             string         `json:"caste"`
	AadharNumber      string         `json:"aadharNumber"`
	Qualification     string         `json:"qualification"`
	OccupationType    OccupationType `json:"occupationType"`
	OccupationDetails string         `json:"occupationDetails"`
	CompanyName       string         `json:"companyName"`
	MonthlyIncome     IncomeBracket  `json:"monthlyIncome"`
	HouseType         HouseType      `json:"houseType"`
	Address           string         `json:"address"`
}

// Parent is the applicant's father or mother. DeathYear is free text and only
// meaningful while Status is Late.
type Parent struct {
	Name      string       `json:"name"`
	Status    ParentStatus `json:"status"`
	DeathYear string       `json:"deathYear"`
}

// Spouse is one wife of a husband-headed household.
type Spouse struct {
	Name          string       `json:"name"`
	DOB           string       `json:"dob"`
	MarriageDate  string       `json:"marriageDate"`
	Occupation    string       `json:"occupation"`
	Nativity      string       `json:"nativity"`
	Caste         string       `json:"caste"`
	Qualification string       `json:"qualification"`
	BloodGroup    string       `json:"bloodGroup"`
	Status        SpouseStatus `json:"status"`
}

// Active reports whether the spouse entry has been named. Only active spouses
// are validated and transmitted.
func (s Spouse) Active() bool {
	return strings.TrimSpace(s.Name) != ""
}

// Husband describes the husband of a wife-headed household.
type Husband struct {
	Name          string       `json:"name"`
	DOB           string       `json:"dob"`
	Occupation    string       `json:"occupation"`
	Nativity      string       `json:"nativity"`
	Caste         string       `json:"caste"`
	Qualification string       `json:"qualification"`
	BloodGroup    string       `json:"bloodGroup"`
	Status        SpouseStatus `json:"status"`
}

// Child is one child of the household, in birth order.
type Child struct {
	Name                 string        `json:"name"`
	DOB                  string        `json:"dob"`
	Mother               string        `json:"mother"`
	Qualification        string        `json:"qualification"`
	MaritalStatus        MaritalStatus `json:"maritalStatus"`
	BloodGroup           string        `json:"bloodGroup"`
	PhysicallyChallenged Challenged    `json:"physicallyChallenged"`
}

// Household is the branch of the record selected by the head of family.
// The variants are HusbandHousehold and WifeHousehold; a record whose head of
// family is unset carries no household.
type Household interface {
	Head() HeadOfFamily
	isHousehold()
}

// HusbandHousehold is headed by the husband and lists his wives.
// len(Spouses) == SpouseCount always holds.
type HusbandHousehold struct {
	SpouseCount int      `json:"spouseCount"`
	Spouses     []Spouse `json:"spouses"`
}

func (HusbandHousehold) Head() HeadOfFamily { return HeadOfFamilyHusband }
func (HusbandHousehold) isHousehold() {}

// ActiveSpouses returns the named spouses in their original order together
// with their 1-based positions in the spouse list.
func (h HusbandHousehold) ActiveSpouses() ([]Spouse, []int) {
	var active []Spouse
	var positions []int
	for i, s := range h.Spouses {
		if s.Active() {
			active = append(active, s)
			positions = append(positions, i+1)
		}
	}
	return active, positions
}

// WifeHousehold is headed by the wife, typically after the husband passed away.
type WifeHousehold struct {
	Husband Husband `json:"husband"`
}

func (WifeHousehold) Head() HeadOfFamily { return HeadOfFamilyWife }
func (WifeHousehold) isHousehold() {}

// Record is an immutable snapshot of a registration draft.
type Record struct {
	HeadOfFamily HeadOfFamily `json:"headOfFamily"`
	Applicant    Applicant    `json:"applicant"`
	Father       Parent       `json:"father"`
	Mother       Parent       `json:"mother"`
	Household    Household    `json:"household"`
	Children     []Child      `json:"children"`
	Remarks      string       `json:"remarks"`
	Photo        *Photo       `json:"photo,omitempty"`
}

// MotherOption is one choice for a child's mother reference.
type MotherOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// SelfMother is the mother reference used in a wife-headed household.
const SelfMother = "Self"
