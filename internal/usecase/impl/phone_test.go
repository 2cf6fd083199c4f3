package impl

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhoneNormalizer_Normalize(t *testing.T) {
	normalizer := newPhoneNormalizer("+91")

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "already international", raw: "+919876543210", want: "+919876543210"},
		{name: "international with separators", raw: "+1 (415) 555-0100", want: "+14155550100"},
		{name: "double zero prefix", raw: "00447911123456", want: "+447911123456"},
		{name: "national number", raw: "98765 43210", want: "+919876543210"},
		{name: "trunk prefix", raw: "09876543210", want: "+919876543210"},
		{name: "country code without plus", raw: "919876543210", want: "+919876543210"},
		{name: "surrounding whitespace", raw: "  98765-43210 ", want: "+919876543210"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizer.Normalize(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPhoneNormalizer_Rejects(t *testing.T) {
	normalizer := newPhoneNormalizer("91")

	for _, raw := range []string{"", "   ", "12", "call me", "+91 98765x43210", "+12"} {
		t.Run(raw, func(t *testing.T) {
			_, err := normalizer.Normalize(raw)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidPhone))
		})
	}
}

func TestPhoneNormalizer_CountryCodeWithoutPlus(t *testing.T) {
	normalizer := newPhoneNormalizer("44")

	got, err := normalizer.Normalize("07911 123456")
	require.NoError(t, err)
	assert.Equal(t, "+447911123456", got)
}
