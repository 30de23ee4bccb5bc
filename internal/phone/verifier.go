package phone

import "context"

// Verification is the verdict returned by the external phone service.
type Verification struct {
	Valid       bool   `json:"valid"`
	CountryCode string `json:"country_code"`
	LineType    string `json:"line_type"`
}

// BR numbers must come back as valid mobile lines.
const (
	CountryBR      = "BR"
	LineTypeMobile = "mobile"
)

func (v *Verification) IsBRMobile() bool {
	return v.Valid && v.CountryCode == CountryBR && v.LineType == LineTypeMobile
}

type Verifier interface {
	Verify(ctx context.Context, number string) (*Verification, error)
}
