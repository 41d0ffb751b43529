// Package errs holds the error vocabulary shared by every layer of the service.
//
// Each kind pairs a sentinel with a detail struct:
//
//	ErrValueIsRequired    *ValueIsRequiredError    missing value
//	ErrValueIsInvalid     *ValueIsInvalidError     malformed value or unknown code
//	ErrValueIsOutOfRange  *ValueIsOutOfRangeError  value outside [Min, Max]
//	ErrObjectNotFound     *ObjectNotFoundError     lookup by ID failed
//
// Unwrap returns the sentinel only. The Cause is part of the message but is not
// matched by errors.Is, so an invalid item caused by a missing menu entry is reported
// as invalid, not as not found. The HTTP adapter relies on this when it maps
// sentinels to status codes.
package errs
