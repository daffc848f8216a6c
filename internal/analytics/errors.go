package analytics

import (
	"fmt"

	"vivid-analytics/internal/shared/svcerrors"
)

// Analytics catalogue errors
const (
	codeInvalidDate           = "ANL_1000"
	codeInvalidRange          = "ANL_1001"
	codeDivisionUndefined     = "ANL_1002"
	codeQueryValidationFailed = "ANL_1003"
	codeDuplicateUserID       = "ANL_1004"
)

// errInvalidDate returns an error for an unparseable date string.
func errInvalidDate(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidDate, "invalid date: expected YYYY-MM-DD", cause)
}

// errInvalidRange returns an error when the start date is after the end date.
func errInvalidRange(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidRange, "invalid range: start date is after end date", cause)
}

// errDivisionUndefined returns an error when a rate denominator is zero.
// The denominator is named so callers can tell which population was empty.
func errDivisionUndefined(denominator string) *svcerrors.ServiceError {
	return svcerrors.NewNoDataError(codeDivisionUndefined, fmt.Sprintf("division undefined: no %s in range", denominator), nil)
}

// errQueryValidationFailed returns an error for a malformed metric query.
func errQueryValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeQueryValidationFailed, msg, cause)
}

// errDuplicateUserID returns an error when the user set violates the
// unique user_id precondition.
func errDuplicateUserID(userID string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeDuplicateUserID, fmt.Sprintf("duplicate user_id %q in user set", userID), nil)
}
