// Package payload maps a validated household record onto the JSON document
// accepted by the remote registration API.
package payload

// WirePayload is the request body of the registration endpoint. Pointer
// fields marshal to null when absent.
type WirePayload struct {
	FullName          string        `json:"fullName"`
	PhoneNumber       string        `json:"phoneNumber"`
	ResidentialStatus int           `json:"residentialStatus"`
	Address           string        `json:"address"`
	AlternateNumber   *string       `json:"alternateNumber"`
	DateOfBirth       *string       `json:"dateOfBirth"`
	CasteGroup        *string       `json:"casteGroup"`
	AadharNumber      *string       `json:"aadharNumber"`
	Qualification     *string       `json:"qualification"`
	MarriageDate      *string       `json:"marriageDate"`
	BloodGroup        *string       `json:"bloodGroup"`
	Occupation        *int          `json:"occupation"`
	OccupationDetail  *string       `json:"occupationDetail"`
	MonthlyIncome     *int          `json:"monthlyIncome"`
	EmailID           *string       `json:"emailId"`
	FatherName        *string       `json:"fatherName"`
	FatherOccupation  *string       `json:"fatherOccupation"`
	FatherDeathYear   *int          `json:"fatherDeathYear"`
	MotherName        *string       `json:"motherName"`
	MotherOccupation  *string       `json:"motherOccupation"`
	MotherDeathYear   *int          `json:"motherDeathYear"`
	NumberOfWives     int           `json:"numberOfWives"`
	NumberOfChildren  int           `json:"numberOfChildren"`
	Feedback          *string       `json:"feedback"`
	SpouseDetails     []SpouseEntry `json:"wifeDetails"`
	ChildDetails      []ChildEntry  `json:"childDetails"`
}

// SpouseEntry is one active spouse.
type SpouseEntry struct {
	Name          string  `json:"name"`
	DateOfBirth   *string `json:"dateOfBirth"`
	MarriageDate  *string `json:"marriageDate"`
	Occupation    *string `json:"occupation"`
	Native        *string `json:"native"`
	Caste         *string `json:"caste"`
	Qualification *string `json:"qualification"`
	BloodGroup    *string `json:"bloodGroup"`
	MaritalStatus int     `json:"maritalStatus"`
}

// ChildEntry is one child, in birth order.
type ChildEntry struct {
	Name                   string  `json:"name"`
	Gender                 int     `json:"gender"`
	DateOfBirth            *string `json:"dateOfBirth"`
	Qualification          *string `json:"qualification"`
	MaritalStatus          int     `json:"maritalStatus"`
	BloodGroup             *string `json:"bloodGroup"`
	IsPhysicallyChallenged bool    `json:"isPhysicallyChallenged"`
}
