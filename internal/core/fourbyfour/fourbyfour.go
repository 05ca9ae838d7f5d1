// Package fourbyfour validates the platform's compact resource identifier
// ("4x4"): two groups of four ASCII letters or digits joined by a hyphen,
// e.g. 1234-wxyz. Matching is case-insensitive
package fourbyfour

import perr "soda/internal/platform/errors"

const (
	groupLen = 4
	idLen    = 2*groupLen + 1
)

// IsValid reports whether candidate is a well formed 4x4 identifier
func IsValid(candidate string) bool {
	if len(candidate) != idLen {
		return false
	}
	for i := 0; i < idLen; i++ {
		c := candidate[i]
		if i == groupLen {
			if c != '-' {
				return false
			}
			continue
		}
		if !isAlnum(c) {
			return false
		}
	}
	return true
}

// IsInvalid is the negation of IsValid
func IsInvalid(candidate string) bool { return !IsValid(candidate) }

// Validate returns an InvalidIdentifier error naming field when candidate is not a 4x4
func Validate(field, candidate string) error {
	if IsValid(candidate) {
		return nil
	}
	return perr.InvalidIDf(field, "%s %q is not a valid 4x4 resource identifier", field, candidate)
}

func isAlnum(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}
