package esendpoints

import (
	"github.com/monzo/terrors"
)

// Error codes, appended to the terrors' generic codes. Construction errors are internal_service errors since they
// indicate a defect in the endpoint table rather than bad input.
const (
	ErrMalformedTemplate = "malformed_template"
	ErrDuplicatePathPart = "duplicate_path_part"
	ErrDuplicateEndpoint = "duplicate_endpoint"
	ErrUnknownEndpoint   = "unknown_endpoint"
)

// IsUnknownEndpoint returns whether the error was returned by a registry lookup for an endpoint it doesn't hold.
// Callers should treat this as "nothing to enrich" rather than as a failure.
func IsUnknownEndpoint(err error) bool {
	return terrors.PrefixMatches(err, terrors.ErrNotFound, ErrUnknownEndpoint)
}

// IsMalformedTable returns whether the error describes a defect in an endpoint table: a malformed template, colliding
// path parts, or a repeated endpoint name.
func IsMalformedTable(err error) bool {
	return terrors.PrefixMatches(err, terrors.ErrInternalService, ErrMalformedTemplate) ||
		terrors.PrefixMatches(err, terrors.ErrInternalService, ErrDuplicatePathPart) ||
		terrors.PrefixMatches(err, terrors.ErrInternalService, ErrDuplicateEndpoint)
}
