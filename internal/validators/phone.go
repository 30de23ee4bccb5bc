package validators

import "strings"

// NormalizeBRCellphone strips an optional +55 country prefix and reports
// whether the remainder is a plausible Brazilian cellphone: exactly 11
// digits, the first two forming an area code in [10, 99].
//
// This is a cheap shape check run before spending an external
// verification call on input that cannot possibly be valid.
func NormalizeBRCellphone(number string) (string, bool) {
	n := strings.TrimSpace(number)
	n = strings.TrimPrefix(n, "+55")

	if len(n) != 11 {
		return "", false
	}
	for _, r := range n {
		if r < '0' || r > '9' {
			return "", false
		}
	}

	// Area codes run from 10 to 99; a leading zero is never valid.
	if n[0] == '0' {
		return "", false
	}

	return n, true
}
