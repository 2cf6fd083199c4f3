package impl

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// ErrInvalidPhone is returned when a contact number cannot be turned into E.164.
var ErrInvalidPhone = errors.New("invalid phone number")

// phoneNormalizer converts locally written numbers to E.164 using a default country code.
type phoneNormalizer struct {
	countryCode string // "+91"
	ccDigits    string // "91"
	validate    *validator.Validate
}

func newPhoneNormalizer(countryCode string) *phoneNormalizer {
	countryCode = strings.TrimSpace(countryCode)
	if !strings.HasPrefix(countryCode, "+") {
		countryCode = "+" + countryCode
	}

	return &phoneNormalizer{
		countryCode: countryCode,
		ccDigits:    strings.TrimPrefix(countryCode, "+"),
		validate:    validator.New(),
	}
}

// Normalize accepts "+<digits>", "00<digits>", a trunk-prefixed local number, or a bare
// national number, with spaces, dashes, dots and parentheses as separators.
func (n *phoneNormalizer) Normalize(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", errors.Wrap(ErrInvalidPhone, "empty phone number")
	}

	international := strings.HasPrefix(trimmed, "+")
	if international {
		trimmed = trimmed[1:]
	}

	var digits strings.Builder
	for _, r := range trimmed {
		switch {
		case r >= '0' && r <= '9':
			digits.WriteRune(r)
		case r == ' ' || r == '-' || r == '.' || r == '(' || r == ')':
		default:
			return "", errors.Wrapf(ErrInvalidPhone, "unexpected character %q in %q", r, raw)
		}
	}

	number := digits.String()

	var normalized string
	switch {
	case international:
		normalized = "+" + number
	case strings.HasPrefix(number, "00"):
		normalized = "+" + number[2:]
	default:
		number = strings.TrimPrefix(number, "0")
		if len(number) > 10 && strings.HasPrefix(number, n.ccDigits) {
			normalized = "+" + number
		} else {
			normalized = n.countryCode + number
		}
	}

	if err := n.validate.Var(normalized, "e164"); err != nil {
		return "", errors.Wrapf(ErrInvalidPhone, "%q is not a valid E.164 number", raw)
	}

	return normalized, nil
}
