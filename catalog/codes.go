// Package catalog holds the closed set of coded dashboard errors, their English
// and Arabic messages, and the HTTP status to code mapping used to classify
// backend failures.
package catalog

import "strings"

// Code identifies a single failure condition. Codes are grouped by the Domain
// encoded in their prefix, e.g. AUTH_003 belongs to DomainAuthentication.
type Code string

// Authentication and authorization
const (
	AuthTokenRequired           Code = "AUTH_001"
	AuthInvalidToken            Code = "AUTH_002"
	AuthTokenExpired            Code = "AUTH_003"
	AuthInvalidCredentials      Code = "AUTH_004"
	AuthUserNotFound            Code = "AUTH_005"
	AuthUserExists              Code = "AUTH_006"
	AuthAccessDenied            Code = "AUTH_007"
	AuthInsufficientPermissions Code = "AUTH_008"
	AuthAccountLocked           Code = "AUTH_009"
	AuthAccountDisabled         Code = "AUTH_010"
)

// OTP and verification
const (
	OTPInvalid         Code = "OTP_001"
	OTPExpired         Code = "OTP_002"
	OTPAlreadyUsed     Code = "OTP_003"
	OTPTooManyAttempts Code = "OTP_004"
	OTPSendFailed      Code = "OTP_005"
	OTPResendLimit     Code = "OTP_006"
)

// Validation
const (
	ValRequired        Code = "VAL_001"
	ValInvalidFormat   Code = "VAL_002"
	ValInvalidPhone    Code = "VAL_003"
	ValInvalidEmail    Code = "VAL_004"
	ValInvalidPrice    Code = "VAL_005"
	ValInvalidDate     Code = "VAL_006"
	ValTextTooShort    Code = "VAL_007"
	ValTextTooLong     Code = "VAL_008"
	ValNumberTooSmall  Code = "VAL_009"
	ValNumberTooLarge  Code = "VAL_010"
	ValInvalidFileType Code = "VAL_011"
	ValFileTooLarge    Code = "VAL_012"
)

// User management
const (
	UserNotFound          Code = "USER_001"
	UserExists            Code = "USER_002"
	UserProfileIncomplete Code = "USER_003"
	UserPhoneRegistered   Code = "USER_004"
	UserEmailRegistered   Code = "USER_005"
	UserSuspended         Code = "USER_006"
)

// Product management
const (
	ProductNotFound              Code = "PROD_001"
	ProductExists                Code = "PROD_002"
	ProductOutOfStock            Code = "PROD_003"
	ProductInactive              Code = "PROD_004"
	ProductImageUploadFailed     Code = "PROD_005"
	ProductInvalidCategory       Code = "PROD_006"
	ProductInvalidPrice          Code = "PROD_007"
	ProductDeleteFailed          Code = "PROD_008"
	ProductMinimumExceedsInitial Code = "PROD_009"
)

// Order management
const (
	OrderNotFound          Code = "ORDER_001"
	OrderAlreadyProcessed  Code = "ORDER_002"
	OrderCancelFailed      Code = "ORDER_003"
	OrderPaymentFailed     Code = "ORDER_004"
	OrderInsufficientStock Code = "ORDER_005"
	OrderInvalidStatus     Code = "ORDER_006"
	OrderDeliveryFailed    Code = "ORDER_007"
)

// System and infrastructure
const (
	SysDatabaseError   Code = "SYS_001"
	SysNetworkError    Code = "SYS_002"
	SysUnavailable     Code = "SYS_003"
	SysMaintenance     Code = "SYS_004"
	SysRateLimited     Code = "SYS_005"
	SysStorageFull     Code = "SYS_006"
	SysConfiguration   Code = "SYS_007"
	SysExternalService Code = "SYS_008"
)

// Generic
const (
	GenUnknown      Code = "GEN_001"
	GenInternal     Code = "GEN_002"
	GenBadRequest   Code = "GEN_003"
	GenNotFound     Code = "GEN_004"
	GenConflict     Code = "GEN_005"
	GenTimeout      Code = "GEN_006"
	GenForbidden    Code = "GEN_007"
	GenUnauthorized Code = "GEN_008"
)

// Domain is the tier a code belongs to.
type Domain string

const (
	DomainAuthentication Domain = "authentication"
	DomainOTP            Domain = "otp"
	DomainValidation     Domain = "validation"
	DomainUser           Domain = "user"
	DomainProduct        Domain = "product"
	DomainOrder          Domain = "order"
	DomainSystem         Domain = "system"
	DomainGeneric        Domain = "generic"
)

var domainPrefixes = map[string]Domain{
	"AUTH":  DomainAuthentication,
	"OTP":   DomainOTP,
	"VAL":   DomainValidation,
	"USER":  DomainUser,
	"PROD":  DomainProduct,
	"ORDER": DomainOrder,
	"SYS":   DomainSystem,
	"GEN":   DomainGeneric,
}

// Domain returns the tier encoded in the code prefix. Codes outside the
// catalog are reported as DomainGeneric.
func (c Code) Domain() Domain {
	prefix, _, _ := strings.Cut(string(c), "_")
	if d, ok := domainPrefixes[prefix]; ok && c.Known() {
		return d
	}
	return DomainGeneric
}

// Known reports whether the code is part of the catalog.
func (c Code) Known() bool {
	_, ok := messages[c]
	return ok
}

func (c Code) String() string {
	return string(c)
}

// Codes returns every catalog code in declaration order.
func Codes() []Code {
	out := make([]Code, len(allCodes))
	copy(out, allCodes)
	return out
}

var allCodes = []Code{
	AuthTokenRequired, AuthInvalidToken, AuthTokenExpired, AuthInvalidCredentials, AuthUserNotFound,
	AuthUserExists, AuthAccessDenied, AuthInsufficientPermissions, AuthAccountLocked, AuthAccountDisabled,

	OTPInvalid, OTPExpired, OTPAlreadyUsed, OTPTooManyAttempts, OTPSendFailed, OTPResendLimit,

	ValRequired, ValInvalidFormat, ValInvalidPhone, ValInvalidEmail, ValInvalidPrice, ValInvalidDate,
	ValTextTooShort, ValTextTooLong, ValNumberTooSmall, ValNumberTooLarge, ValInvalidFileType, ValFileTooLarge,

	UserNotFound, UserExists, UserProfileIncomplete, UserPhoneRegistered, UserEmailRegistered, UserSuspended,

	ProductNotFound, ProductExists, ProductOutOfStock, ProductInactive, ProductImageUploadFailed,
	ProductInvalidCategory, ProductInvalidPrice, ProductDeleteFailed, ProductMinimumExceedsInitial,

	OrderNotFound, OrderAlreadyProcessed, OrderCancelFailed, OrderPaymentFailed, OrderInsufficientStock,
	OrderInvalidStatus, OrderDeliveryFailed,

	SysDatabaseError, SysNetworkError, SysUnavailable, SysMaintenance, SysRateLimited, SysStorageFull,
	SysConfiguration, SysExternalService,

	GenUnknown, GenInternal, GenBadRequest, GenNotFound, GenConflict, GenTimeout, GenForbidden, GenUnauthorized,
}
