package validation_test

import (
	"strings"
	"testing"

	"github.com/jrsteele09/go-admin-dashboard/catalog"
	"github.com/jrsteele09/go-admin-dashboard/validation"
	"github.com/stretchr/testify/require"
)

func requireCode(t *testing.T, err error, code catalog.Code) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, code, catalog.CodeOf(err))
}

func TestNormalizePhone(t *testing.T) {
	cases := map[string]string{
		"0512345678":       "+966512345678",
		"512345678":        "+966512345678",
		"00966512345678":   "+966512345678",
		"966512345678":     "+966512345678",
		"+966512345678":    "+966512345678",
		" 051 234 5678 ":   "+966512345678",
		"(0)51-234-5678":   "+966512345678",
		"4412345678":       "4412345678",
		"+1 (415) 5550100": "14155550100",
	}
	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			require.Equal(t, want, validation.NormalizePhone(in))
		})
	}
}

func TestValidatePhone(t *testing.T) {
	t.Run("mobile", func(t *testing.T) {
		require.NoError(t, validation.ValidatePhone("512345678"))
	})

	t.Run("with country code", func(t *testing.T) {
		require.NoError(t, validation.ValidatePhone("+966 51 234 5678"))
	})

	t.Run("empty", func(t *testing.T) {
		requireCode(t, validation.ValidatePhone(" - "), catalog.ValRequired)
	})

	t.Run("landline", func(t *testing.T) {
		requireCode(t, validation.ValidatePhone("112345678"), catalog.ValInvalidPhone)
	})

	t.Run("too long", func(t *testing.T) {
		requireCode(t, validation.ValidatePhone("5123456789"), catalog.ValInvalidPhone)
	})
}

func TestValidateCanonicalPhone(t *testing.T) {
	require.NoError(t, validation.ValidateCanonicalPhone(validation.NormalizePhone("0512345678")))
	requireCode(t, validation.ValidateCanonicalPhone("+96651234567"), catalog.ValInvalidPhone)
	requireCode(t, validation.ValidateCanonicalPhone("966512345678"), catalog.ValInvalidPhone)
}

func TestValidateOTP(t *testing.T) {
	for _, otp := range []string{"1234", "12345", "123456"} {
		require.NoError(t, validation.ValidateOTP(otp), otp)
	}
	for _, otp := range []string{"", "123", "1234567", "12a4", " 1234", "١٢٣٤"} {
		requireCode(t, validation.ValidateOTP(otp), catalog.OTPInvalid)
	}
}

func TestValidatePriceComparison(t *testing.T) {
	t.Run("minimum below initial", func(t *testing.T) {
		require.NoError(t, validation.ValidatePriceComparison("100", "50"))
	})

	t.Run("equal prices", func(t *testing.T) {
		require.NoError(t, validation.ValidatePriceComparison("75.50", "75.5"))
	})

	t.Run("minimum above initial", func(t *testing.T) {
		err := validation.ValidatePriceComparison("50", "100")
		requireCode(t, err, catalog.ProductMinimumExceedsInitial)
		require.ErrorIs(t, err, catalog.New(catalog.ProductMinimumExceedsInitial))
	})

	t.Run("not numeric", func(t *testing.T) {
		requireCode(t, validation.ValidatePriceComparison("abc", "10"), catalog.ProductInvalidPrice)
		requireCode(t, validation.ValidatePriceComparison("10", ""), catalog.ProductInvalidPrice)
		requireCode(t, validation.ValidatePriceComparison("NaN", "10"), catalog.ProductInvalidPrice)
	})

	t.Run("numeric values", func(t *testing.T) {
		require.NoError(t, validation.ValidatePriceValues(100, 50))
		requireCode(t, validation.ValidatePriceValues(50, 100), catalog.ProductMinimumExceedsInitial)
	})
}

func TestValidatePrice(t *testing.T) {
	require.NoError(t, validation.ValidatePrice(0.01))
	requireCode(t, validation.ValidatePrice(0), catalog.ValInvalidPrice)
	requireCode(t, validation.ValidatePrice(-3), catalog.ValInvalidPrice)
}

func TestValidateName(t *testing.T) {
	for _, name := range []string{"Al", "Mary-Jane O'Neil", "محمد", "عبد الله", "Dr. Sara", "Ana\u00a0Maria", "عبد\u202fالله"} {
		require.NoError(t, validation.ValidateName(name), name)
	}

	requireCode(t, validation.ValidateName("  "), catalog.ValRequired)
	requireCode(t, validation.ValidateName("A"), catalog.ValTextTooShort)
	requireCode(t, validation.ValidateName(strings.Repeat("a", 51)), catalog.ValTextTooLong)
	requireCode(t, validation.ValidateName("R2D2"), catalog.ValInvalidFormat)
	requireCode(t, validation.ValidateName("name@example"), catalog.ValInvalidFormat)
}
