// Package errors provides error handling conventions for hwprofile.
//
// This package defines sentinel errors for common failure conditions, an
// [OpError] type that names the device operation that failed, an ExitError
// type for CLI exit code handling, and thin re-exports of
// github.com/cockroachdb/errors so callers only import one errors package.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific error conditions
// using [Is]:
//
//	if errors.Is(err, errors.ErrUnsupported) {
//	    // the host cannot supply this value
//	}
//
// # Operation Errors
//
// Platform failures are reported with the operation name that failed:
//
//	return errors.Op("battery.level", err)
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (invalid input, configuration, etc.)
//   - ExitSystem (2): System-related error (I/O, host query failure, etc.)
package errors
