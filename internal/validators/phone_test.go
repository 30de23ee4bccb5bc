package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeBRCellphone(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"plain 11 digits", "11987654321", "11987654321", true},
		{"with country prefix", "+5511987654321", "11987654321", true},
		{"surrounding spaces", "  11987654321  ", "11987654321", true},
		{"too short", "1198765432", "", false},
		{"too long", "119876543210", "", false},
		{"leading zero area code", "01987654321", "", false},
		{"non digits", "11a87654321", "", false},
		{"formatted", "(11) 98765-4321", "", false},
		{"empty", "", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := NormalizeBRCellphone(tc.input)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}
