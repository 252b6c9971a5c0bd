// Package ean canonicalizes EAN-13 barcode strings. Pure functions, no I/O.
package ean

import (
	"github.com/crabe/delivnote/internal/apperr"
)

// Canonicalize13 returns the 13-digit form of code.
//
// A 13-digit code is returned unchanged: externally supplied check digits are
// trusted as-is rather than re-verified. A 12-digit code gets its check digit
// computed and appended. Anything else (including an empty string or
// non-digit characters) is a FormatError.
func Canonicalize13(code string) (string, error) {
	if code == "" {
		return "", &apperr.FormatError{Reason: "empty code"}
	}
	if !allDigits(code) {
		return "", &apperr.FormatError{Code: code, Reason: "contains non-digit characters"}
	}
	switch len(code) {
	case 13:
		return code, nil
	case 12:
		return code + string(CheckDigit(code)), nil
	default:
		return "", &apperr.FormatError{Code: code, Reason: "must be 12 or 13 digits"}
	}
}

// CheckDigit computes the EAN-13 check digit for a 12-digit code: digits at
// even 0-indexed positions weigh 1, odd positions weigh 3, and the check
// digit is (10 - sum mod 10) mod 10. The caller guarantees code12 holds
// exactly 12 ASCII digits.
func CheckDigit(code12 string) byte {
	sum := 0
	for i := 0; i < len(code12); i++ {
		d := int(code12[i] - '0')
		if i%2 == 1 {
			d *= 3
		}
		sum += d
	}
	return byte('0' + (10-sum%10)%10)
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
