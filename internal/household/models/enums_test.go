package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type EnumSuite struct {
	suite.Suite
}

func TestEnumSuite(t *testing.T) {
	suite.Run(t, new(EnumSuite))
}

// TestRoundTrip feeds every canonical label through its table and back.
func (s *EnumSuite) TestRoundTrip() {
	s.Run("house type", func() {
		for _, label := range []HouseType{HouseTypeOwn, HouseTypeRent} {
			got, ok := HouseTypeFromCode(label.Code())
			s.Require().True(ok)
			s.Equal(label, got)
		}
	})

	s.Run("occupation type", func() {
		for _, label := range []OccupationType{OccupationWorking, OccupationBusiness, OccupationUnemployed, OccupationRetired} {
			code := label.Code()
			s.Require().NotNil(code)
			got, ok := OccupationTypeFromCode(*code)
			s.Require().True(ok)
			s.Equal(label, got)
		}
	})

	s.Run("income bracket", func() {
		for _, label := range IncomeBrackets() {
			code := label.Code()
			s.Require().NotNil(code)
			got, ok := IncomeBracketFromCode(*code)
			s.Require().True(ok)
			s.Equal(label, got)
		}
	})

	s.Run("marital status", func() {
		for _, label := range []MaritalStatus{MaritalSingle, MaritalMarried, MaritalDivorced, MaritalExpired} {
			got, ok := MaritalStatusFromCode(label.Code())
			s.Require().True(ok)
			s.Equal(label, got)
		}
	})

	s.Run("spouse status", func() {
		for _, label := range []SpouseStatus{SpousePresent, SpouseDivorced, SpouseExpired} {
			got, ok := SpouseStatusFromCode(label.Code())
			s.Require().True(ok)
			s.Equal(label, got)
		}
	})

	s.Run("gender", func() {
		for _, label := range []Gender{GenderMale, GenderFemale} {
			got, ok := GenderFromCode(label.Code())
			s.Require().True(ok)
			s.Equal(label, got)
		}
	})
}

// TestAliases documents the labels that share a code with a canonical label.
func (s *EnumSuite) TestAliases() {
	s.Run("present is married for children", func() {
		s.Equal(MaritalMarried.Code(), MaritalStatus("Present").Code())
		s.Equal(MaritalMarried, MaritalStatus("Present").Canonical())
	})

	s.Run("late is expired for children", func() {
		s.Equal(3, MaritalStatus("Late").Code())
		s.Equal(MaritalExpired, MaritalStatus("Late").Canonical())
	})

	s.Run("married is present for spouses", func() {
		s.Equal(SpousePresent.Code(), SpouseStatus("Married").Code())
		s.Equal(SpousePresent, SpouseStatus("Married").Canonical())
	})

	s.Run("spouse and marital codes agree", func() {
		s.Equal(MaritalMarried.Code(), SpousePresent.Code())
		s.Equal(MaritalDivorced.Code(), SpouseDivorced.Code())
		s.Equal(MaritalExpired.Code(), SpouseExpired.Code())
	})

	s.Run("unknown label is returned unchanged by canonical", func() {
		s.Equal(MaritalStatus("Widowed"), MaritalStatus("Widowed").Canonical())
	})
}

// TestDefaults pins the per-field default-vs-null policy.
func (s *EnumSuite) TestDefaults() {
	s.Equal(0, HouseType("").Code(), "house type defaults to Own House")
	s.Equal(0, HouseType("Palace").Code())
	s.Nil(OccupationType("").Code(), "occupation stays absent when unset")
	s.Nil(OccupationType("Astronaut").Code())
	s.Nil(IncomeBracket("").Code(), "income stays absent when unset")
	s.Equal(0, MaritalStatus("").Code(), "child marital status defaults to Single")
	s.Equal(1, SpouseStatus("").Code(), "spouse status defaults to Present")
	s.Equal(0, DefaultChildGender.Code())
}

func (s *EnumSuite) TestLabelsAreTrimmed() {
	s.Equal(1, HouseType(" Rent House ").Code())
	s.Equal(2, SpouseStatus("Divorced\n").Code())
}

func TestParseHeadOfFamily(t *testing.T) {
	assert.Equal(t, HeadOfFamilyHusband, ParseHeadOfFamily("Husband"))
	assert.Equal(t, HeadOfFamilyWife, ParseHeadOfFamily(" Wife "))
	assert.Equal(t, HeadOfFamilyUnset, ParseHeadOfFamily(""))
	assert.Equal(t, HeadOfFamilyUnset, ParseHeadOfFamily("Grandfather"))
}

func TestTriStateFlags(t *testing.T) {
	assert.True(t, ChallengedYes.Bool())
	assert.False(t, ChallengedNo.Bool())
	assert.False(t, ChallengedUnset.Bool())
	assert.True(t, ParentLate.IsLate())
	assert.False(t, ParentAlive.IsLate())
	assert.False(t, ParentStatus("").IsLate())
}

func TestPhotoPreview(t *testing.T) {
	t.Run("nil photo has no preview", func(t *testing.T) {
		var p *Photo
		assert.Empty(t, p.PreviewURL())
		assert.Empty(t, p.ContentType())
	})

	t.Run("png bytes are sniffed", func(t *testing.T) {
		png := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}
		p := &Photo{Filename: "me.png", Data: png}
		assert.Equal(t, "image/png", p.ContentType())
		assert.Contains(t, p.PreviewURL(), "data:image/png;base64,")
	})

	t.Run("json omits bytes", func(t *testing.T) {
		p := &Photo{Filename: "me.bin", Data: []byte("hello")}
		raw, err := p.MarshalJSON()
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"filename":"me.bin"`)
		assert.Contains(t, string(raw), `"size":5`)
		assert.NotContains(t, string(raw), "aGVsbG8")
	})
}

func TestActiveSpouses(t *testing.T) {
	h := HusbandHousehold{
		SpouseCount: 3,
		Spouses:     []Spouse{{Name: " "}, {Name: "Amina"}, {Name: "Fathima"}},
	}
	active, positions := h.ActiveSpouses()
	require.Len(t, active, 2)
	assert.Equal(t, "Amina", active[0].Name)
	assert.Equal(t, []int{2, 3}, positions)
}
