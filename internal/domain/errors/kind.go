package errors

import "accounts/internal/errors"

// Kind tags an error returned by the credential service so callers can switch
// on the outcome without string matching.
type Kind string

const (
	KindNone               Kind = ""
	KindHashing            Kind = "hashing"
	KindComparison         Kind = "comparison"
	KindUserNotFound       Kind = "user_not_found"
	KindInvalidCredentials Kind = "invalid_credentials"
	KindUserAlreadyExists  Kind = "user_already_exists"
	KindValidation         Kind = "validation"
	KindStore              Kind = "store"
	KindUnknown            Kind = "unknown"
)

var kindByError = []struct {
	target error
	kind   Kind
}{
	{ErrHashingFailed, KindHashing},
	{ErrComparisonFailed, KindComparison},
	{ErrUserNotFound, KindUserNotFound},
	{ErrInvalidCredentials, KindInvalidCredentials},
	{ErrUserAlreadyExists, KindUserAlreadyExists},
	{ErrValidationFailed, KindValidation},
}

// KindOf classifies err. A nil error is KindNone.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}

	for _, k := range kindByError {
		if errors.Is(err, k.target) {
			return k.kind
		}
	}

	var dbErr *DatabaseExecuteError
	if errors.As(err, &dbErr) {
		return KindStore
	}

	return KindUnknown
}

// IsExpected reports whether err is a business outcome (not found, bad
// credentials, duplicate, invalid input) rather than a collaborator failure.
func IsExpected(err error) bool {
	switch KindOf(err) {
	case KindUserNotFound, KindInvalidCredentials, KindUserAlreadyExists, KindValidation:
		return true
	default:
		return false
	}
}
