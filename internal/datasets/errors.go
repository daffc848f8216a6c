package datasets

import (
	"fmt"

	"vivid-analytics/internal/shared/svcerrors"
)

// Dataset loading errors
const (
	codeMissingColumn       = "DATA_1000"
	codeInvalidRecord       = "DATA_1001"
	codeDuplicateIdentifier = "DATA_1002"

	codeInternalStorageFailed = "DATA_9000"
)

// errMissingColumn returns an error when a required column is absent from a CSV header.
func errMissingColumn(file, column string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeMissingColumn, fmt.Sprintf("%s: missing required column %q", file, column), nil)
}

// errInvalidRecord returns an error when a CSV row cannot be parsed into a record.
func errInvalidRecord(file string, line int, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidRecord, fmt.Sprintf("%s: invalid record at line %d", file, line), cause)
}

// errDuplicateIdentifier returns an error when a unique identifier appears twice.
func errDuplicateIdentifier(file, id string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeDuplicateIdentifier, fmt.Sprintf("%s: duplicate identifier %q", file, id), nil)
}

// errInternalStorageFailed returns an error when the backing file storage fails.
func errInternalStorageFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalStorageFailed, fmt.Errorf("datasetStorageFailed: %w", cause))
}
