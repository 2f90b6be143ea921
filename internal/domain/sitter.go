package domain

// Verified feature codes reported by the sitter service.
const (
	VerifiedDBS        = "dbs"
	VerifiedFirstAid   = "firstaid"
	VerifiedReferences = "references"
	VerifiedQualified  = "qualified"
)

// Sitter is a caregiver profile served by the sitter platform.
type Sitter struct {
	ID               string   `json:"id"`
	FirstName        string   `json:"firstName"`
	LastName         string   `json:"lastName"`
	ProfileImage     string   `json:"profileImage,omitempty"`
	Bio              string   `json:"bio"`
	HourlyRate       float64  `json:"hourlyRate"`
	Rating           float64  `json:"rating"`
	ReviewCount      int      `json:"reviewCount"`
	VerifiedFeatures []string `json:"verifiedFeatures"`
	Skills           []string `json:"skills"`
	AgeGroups        []string `json:"ageGroups"`
	Location         string   `json:"location"`
	Experience       string   `json:"experience"`
}

// FullName joins first and last name, skipping blanks.
func (s Sitter) FullName() string {
	switch {
	case s.FirstName == "":
		return s.LastName
	case s.LastName == "":
		return s.FirstName
	default:
		return s.FirstName + " " + s.LastName
	}
}

// Initials returns up to two leading letters, used when no profile image exists.
func (s Sitter) Initials() string {
	var out []rune
	for _, part := range []string{s.FirstName, s.LastName} {
		for _, r := range part {
			out = append(out, r)
			break
		}
	}
	return string(out)
}
