package models

import "strings"

// enumTable maps the labels a form offers to the integer codes the remote API
// stores. Canonical labels own a code; aliases are alternative labels that
// resolve to a canonical label's code (for example a spouse "Married" is the
// same code as "Present").
type enumTable[T ~string] struct {
	codes     map[T]int
	canonical map[int]T
}

func newEnumTable[T ~string](canonical []T, codes []int, aliases map[T]T) enumTable[T] {
	t := enumTable[T]{
		codes:     make(map[T]int, len(canonical)+len(aliases)),
		canonical: make(map[int]T, len(canonical)),
	}
	for i, label := range canonical {
		t.codes[label] = codes[i]
		t.canonical[codes[i]] = label
	}
	for alias, target := range aliases {
		t.codes[alias] = t.codes[target]
	}
	return t
}

func (t enumTable[T]) code(label T) (int, bool) {
	c, ok := t.codes[T(strings.TrimSpace(string(label)))]
	return c, ok
}

func (t enumTable[T]) label(code int) (T, bool) {
	l, ok := t.canonical[code]
	return l, ok
}

// HeadOfFamily selects which household branch applies.
type HeadOfFamily string

const (
	HeadOfFamilyUnset   HeadOfFamily = ""
	HeadOfFamilyHusband HeadOfFamily = "Husband"
	HeadOfFamilyWife    HeadOfFamily = "Wife"
)

// ParseHeadOfFamily resolves a form value; anything else is unset.
func ParseHeadOfFamily(s string) HeadOfFamily {
	switch HeadOfFamily(strings.TrimSpace(s)) {
	case HeadOfFamilyHusband:
		return HeadOfFamilyHusband
	case HeadOfFamilyWife:
		return HeadOfFamilyWife
	default:
		return HeadOfFamilyUnset
	}
}

// HouseType is the applicant's residential status. Unset or unknown values
// resolve to Own House (code 0).
type HouseType string

const (
	HouseTypeOwn  HouseType = "Own House"
	HouseTypeRent HouseType = "Rent House"
)

var houseTypes = newEnumTable(
	[]HouseType{HouseTypeOwn, HouseTypeRent},
	[]int{0, 1},
	nil,
)

// Code returns the wire code, defaulting to Own House.
func (h HouseType) Code() int {
	if c, ok := houseTypes.code(h); ok {
		return c
	}
	return 0
}

// HouseTypeFromCode returns the canonical label for a wire code.
func HouseTypeFromCode(code int) (HouseType, bool) {
	return houseTypes.label(code)
}

// OccupationType is the applicant's kind of occupation. Unset stays absent on
// the wire, distinct from Working (code 0).
type OccupationType string

const (
	OccupationWorking    OccupationType = "Working"
	OccupationBusiness   OccupationType = "Business"
	OccupationUnemployed OccupationType = "Unemployed"
	OccupationRetired    OccupationType = "Retired"
)

var occupationTypes = newEnumTable(
	[]OccupationType{OccupationWorking, OccupationBusiness, OccupationUnemployed, OccupationRetired},
	[]int{0, 1, 2, 3},
	nil,
)

// Code returns the wire code, or nil when unset or unknown.
func (o OccupationType) Code() *int {
	if c, ok := occupationTypes.code(o); ok {
		return &c
	}
	return nil
}

func OccupationTypeFromCode(code int) (OccupationType, bool) {
	return occupationTypes.label(code)
}

// IncomeBracket is the monthly family income range. Unset stays absent.
type IncomeBracket string

const (
	IncomeBelow10k   IncomeBracket = "Below 10,000"
	Income10kTo25k   IncomeBracket = "10,000 - 25,000"
	Income25kTo50k   IncomeBracket = "25,000 - 50,000"
	Income50kTo1Lakh IncomeBracket = "50,000 - 1,00,000"
	IncomeAbove1Lakh IncomeBracket = "Above 1,00,000"
)

var incomeBrackets = newEnumTable(
	[]IncomeBracket{IncomeBelow10k, Income10kTo25k, Income25kTo50k, Income50kTo1Lakh, IncomeAbove1Lakh},
	[]int{0, 1, 2, 3, 4},
	nil,
)

// Code returns the wire code, or nil when unset or unknown.
func (i IncomeBracket) Code() *int {
	if c, ok := incomeBrackets.code(i); ok {
		return &c
	}
	return nil
}

func IncomeBracketFromCode(code int) (IncomeBracket, bool) {
	return incomeBrackets.label(code)
}

// IncomeBrackets lists the brackets in display order.
func IncomeBrackets() []IncomeBracket {
	return []IncomeBracket{IncomeBelow10k, Income10kTo25k, Income25kTo50k, Income50kTo1Lakh, IncomeAbove1Lakh}
}

// MaritalStatus is a child's marital status.
//
// Aliases: "Present" is Married (1) and "Late" is Expired (3); both come from
// the spouse and parent vocabularies that share codes with this table.
// Unset or unknown values resolve to Single (0).
type MaritalStatus string

const (
	MaritalSingle   MaritalStatus = "Single"
	MaritalMarried  MaritalStatus = "Married"
	MaritalDivorced MaritalStatus = "Divorced"
	MaritalExpired  MaritalStatus = "Expired"
)

var maritalStatuses = newEnumTable(
	[]MaritalStatus{MaritalSingle, MaritalMarried, MaritalDivorced, MaritalExpired},
	[]int{0, 1, 2, 3},
	map[MaritalStatus]MaritalStatus{
		"Present": MaritalMarried,
		"Late":    MaritalExpired,
	},
)

// Code returns the wire code, defaulting to Single.
func (m MaritalStatus) Code() int {
	if c, ok := maritalStatuses.code(m); ok {
		return c
	}
	return 0
}

// Canonical resolves aliases; unknown values are returned unchanged.
func (m MaritalStatus) Canonical() MaritalStatus {
	if c, ok := maritalStatuses.code(m); ok {
		l, _ := maritalStatuses.label(c)
		return l
	}
	return m
}

func MaritalStatusFromCode(code int) (MaritalStatus, bool) {
	return maritalStatuses.label(code)
}

// SpouseStatus is the status of a spouse (or of the late husband in a
// wife-headed household). It shares codes with MaritalStatus: Present is 1,
// Divorced 2, Expired 3. "Married" and "Late" are accepted aliases.
// Unset or unknown values resolve to Present.
type SpouseStatus string

const (
	SpousePresent  SpouseStatus = "Present"
	SpouseDivorced SpouseStatus = "Divorced"
	SpouseExpired  SpouseStatus = "Expired"
)

var spouseStatuses = newEnumTable(
	[]SpouseStatus{SpousePresent, SpouseDivorced, SpouseExpired},
	[]int{1, 2, 3},
	map[SpouseStatus]SpouseStatus{
		"Married": SpousePresent,
		"Late":    SpouseExpired,
	},
)

// Code returns the wire code, defaulting to Present.
func (s SpouseStatus) Code() int {
	if c, ok := spouseStatuses.code(s); ok {
		return c
	}
	return 1
}

func (s SpouseStatus) Canonical() SpouseStatus {
	if c, ok := spouseStatuses.code(s); ok {
		l, _ := spouseStatuses.label(c)
		return l
	}
	return s
}

func SpouseStatusFromCode(code int) (SpouseStatus, bool) {
	return spouseStatuses.label(code)
}

// Gender is transmitted for children only and is not collected by the form.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

var genders = newEnumTable(
	[]Gender{GenderMale, GenderFemale},
	[]int{0, 1},
	nil,
)

// DefaultChildGender is sent for every child.
const DefaultChildGender = GenderMale

// Code returns the wire code, defaulting to Male.
func (g Gender) Code() int {
	if c, ok := genders.code(g); ok {
		return c
	}
	return 0
}

func GenderFromCode(code int) (Gender, bool) {
	return genders.label(code)
}

// ParentStatus gates whether a parent's death year is transmitted.
type ParentStatus string

const (
	ParentAlive ParentStatus = "Alive"
	ParentLate  ParentStatus = "Late"
)

// IsLate reports whether the parent is recorded as deceased.
func (p ParentStatus) IsLate() bool {
	return ParentStatus(strings.TrimSpace(string(p))) == ParentLate
}

// Challenged is the tri-state physically-challenged answer for a child.
type Challenged string

const (
	ChallengedUnset Challenged = ""
	ChallengedYes   Challenged = "Yes"
	ChallengedNo    Challenged = "No"
)

// Bool is true only for an explicit "Yes".
func (c Challenged) Bool() bool {
	return Challenged(strings.TrimSpace(string(c))) == ChallengedYes
}

// BloodGroups lists the blood groups the form offers. Blood group values are
// transmitted as text, so the list is informational.
func BloodGroups() []string {
	return []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}
}
