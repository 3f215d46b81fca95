// Package validation holds the local checks run before any request reaches
// the network. Every validator is pure and returns nil or a *catalog.Error.
package validation

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/jrsteele09/go-admin-dashboard/catalog"
)

const (
	// CountryCode is the canonical phone prefix.
	CountryCode = "+966"

	localPhoneDigits = 9
)

var (
	nonDigits      = regexp.MustCompile(`\D`)
	otpPattern     = regexp.MustCompile(`^\d{4,6}$`)
	canonicalPhone = regexp.MustCompile(`^\+966\d{9}$`)

	// Arabic, Arabic Supplement, Arabic Extended-A, Presentation Forms A and B,
	// Latin letters, ASCII and Unicode space separators and . - '
	namePattern = regexp.MustCompile(`^[\x{0600}-\x{06FF}\x{0750}-\x{077F}\x{08A0}-\x{08FF}\x{FB50}-\x{FDFF}\x{FE70}-\x{FEFF}a-zA-Z\s\p{Zs}.\-']{2,50}$`)
)

// NormalizePhone rewrites local, mobile, and international forms to +966XXXXXXXXX.
// Input matching none of them is returned as its digits only.
func NormalizePhone(phone string) string {
	digits := nonDigits.ReplaceAllString(strings.TrimSpace(phone), "")
	switch {
	case strings.HasPrefix(digits, "00966"):
		return "+" + digits[2:]
	case strings.HasPrefix(digits, "0"):
		return CountryCode + digits[1:]
	case strings.HasPrefix(digits, "5"):
		return CountryCode + digits
	case strings.HasPrefix(digits, "966"):
		return CountryCode + digits[3:]
	}
	return digits
}

// ValidatePhone accepts a mobile number typed as 5XXXXXXXX or 9665XXXXXXXX,
// ignoring any separators.
func ValidatePhone(phone string) error {
	digits := nonDigits.ReplaceAllString(phone, "")
	if digits == "" {
		return catalog.New(catalog.ValRequired)
	}
	if len(digits) == localPhoneDigits && strings.HasPrefix(digits, "5") {
		return nil
	}
	if len(digits) == len("966")+localPhoneDigits && strings.HasPrefix(digits, "9665") {
		return nil
	}
	return catalog.New(catalog.ValInvalidPhone)
}

// ValidateCanonicalPhone checks the output of NormalizePhone.
func ValidateCanonicalPhone(phone string) error {
	if !canonicalPhone.MatchString(phone) {
		return catalog.New(catalog.ValInvalidPhone)
	}
	return nil
}

// ValidateOTP accepts 4 to 6 decimal digits.
func ValidateOTP(otp string) error {
	if !otpPattern.MatchString(otp) {
		return catalog.New(catalog.OTPInvalid)
	}
	return nil
}

// ValidatePrice requires a strictly positive price.
func ValidatePrice(price float64) error {
	if price <= 0 {
		return catalog.New(catalog.ValInvalidPrice)
	}
	return nil
}

// ValidatePriceComparison parses both form values and checks that the
// minimum price does not exceed the initial price.
func ValidatePriceComparison(initialPrice, minimumPrice string) error {
	initial, err := parsePrice(initialPrice)
	if err != nil {
		return catalog.Wrap(catalog.ProductInvalidPrice, err)
	}
	minimum, err := parsePrice(minimumPrice)
	if err != nil {
		return catalog.Wrap(catalog.ProductInvalidPrice, err)
	}
	return ValidatePriceValues(initial, minimum)
}

// ValidatePriceValues is ValidatePriceComparison for already numeric input.
func ValidatePriceValues(initialPrice, minimumPrice float64) error {
	if math.IsNaN(initialPrice) || math.IsNaN(minimumPrice) {
		return catalog.New(catalog.ProductInvalidPrice)
	}
	if minimumPrice > initialPrice {
		return catalog.New(catalog.ProductMinimumExceedsInitial)
	}
	return nil
}

func parsePrice(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("price %q is not a finite number", s)
	}
	return v, nil
}

// ValidateName checks a display name: 2 to 50 characters of Arabic or Latin
// letters, spaces, and . - '
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return catalog.New(catalog.ValRequired)
	}
	switch n := utf8.RuneCountInString(name); {
	case n < 2:
		return catalog.New(catalog.ValTextTooShort)
	case n > 50:
		return catalog.New(catalog.ValTextTooLong)
	}
	if !namePattern.MatchString(name) {
		return catalog.New(catalog.ValInvalidFormat)
	}
	return nil
}
