package archivers

import (
	"fmt"

	"request-metrics/internal/shared/svcerrors"
)

const (
	codeWindowAlreadyArchived = "ARC_1000"
	codeInvalidArchiveRange   = "ARC_1001"

	codeInternalArchiveStoreFailed = "ARC_9000"
)

// errWindowAlreadyArchived returns an error when the window was archived by an earlier eviction.
func errWindowAlreadyArchived(cause error) *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codeWindowAlreadyArchived, "window already archived", cause)
}

// errInvalidArchiveRange returns an error when an archive read range is unbounded, inverted or too wide.
func errInvalidArchiveRange(msg string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidArchiveRange, msg, nil)
}

// errInternalArchiveStoreFailed returns an error when the archive store operation fails.
func errInternalArchiveStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalArchiveStoreFailed, fmt.Errorf("archiveStoreFailed: %w", cause))
}
