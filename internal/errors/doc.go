// Package errors provides typed errors with exit codes for wsbctl.
//
// # Error Types
//
// WsbError is the base error type that wraps an error with an exit code:
//
//	type WsbError struct {
//	    Code    int    // Exit code
//	    Kind    error  // Sentinel matched by errors.Is
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
//	ExitSuccess           = 0  // Success
//	ExitGeneralError      = 1  // General/unknown errors
//	ExitMalformedDocument = 2  // JSON document could not be loaded
//	ExitOutOfRange        = 3  // Memory, hostname or index out of range
//	ExitProfileNotFound   = 4  // Profile does not exist
//	ExitConfigError       = 5  // Settings file error
//	ExitIOError           = 6  // File read/write failed
//
// # Error Kinds
//
// Loading and validation failures carry a sentinel kind:
//
//	if errors.Is(err, errors.ErrMalformedDocument) { ... }
//	if errors.Is(err, errors.ErrOutOfRange) { ... }
//
// # Extracting Exit Codes
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
