package ean

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crabe/delivnote/internal/apperr"
)

func TestCanonicalize13(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected string
		wantErr  bool
	}{
		{
			name:     "12 digits gets computed check digit",
			code:     "590123412345",
			expected: "5901234123457",
		},
		{
			name:     "13 digits passes through unchanged",
			code:     "4006381333931",
			expected: "4006381333931",
		},
		{
			// Passthrough is deliberately lenient: a 13th digit that fails
			// the check relation is still accepted.
			name:     "13 digits with wrong check digit still passes through",
			code:     "5901234123450",
			expected: "5901234123450",
		},
		{name: "empty", code: "", wantErr: true},
		{name: "too short", code: "12345", wantErr: true},
		{name: "too long", code: "12345678901234", wantErr: true},
		{name: "non-digit characters", code: "59012341234X", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Canonicalize13(tt.code)
			if tt.wantErr {
				var ferr *apperr.FormatError
				require.ErrorAs(t, err, &ferr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCheckDigitSatisfiesWeightedMod10(t *testing.T) {
	codes := []string{
		"590123412345",
		"400638133393",
		"000000000000",
		"999999999999",
		"123456789012",
	}
	for _, code12 := range codes {
		full, err := Canonicalize13(code12)
		require.NoError(t, err)
		require.Len(t, full, 13)

		// The full 13-digit code must satisfy sum(digit[i] * weight[i]) ≡ 0
		// (mod 10) with weights 1,3,1,3,... over all 13 positions.
		sum := 0
		for i := 0; i < 13; i++ {
			d := int(full[i] - '0')
			if i%2 == 1 {
				d *= 3
			}
			sum += d
		}
		assert.Zero(t, sum%10, "code %s", full)
	}
}
