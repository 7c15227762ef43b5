package kv

import (
	"errors"
	"fmt"
	"net/http"
)

// --------------------------------------------------------------------------
// Error Codes
// --------------------------------------------------------------------------

// ErrCode identifies the kind of an Error. The set is closed.
type ErrCode uint8

const (
	ErrCInternal       ErrCode = iota // 0: Any other error
	ErrCNotFound                      // 1: The table or the key was not found
	ErrCInvalidCommand                // 2: The command could not be parsed
	ErrCConvert                       // 3: Conversion between value kinds failed
	ErrCStorage                       // 4: The storage backend failed
	ErrCEncode                        // 5: Encoding a message failed
	ErrCDecode                        // 6: Decoding a message failed
)

// String returns the name of the error code.
func (c ErrCode) String() string {
	switch c {
	case ErrCInternal:
		return "Internal"
	case ErrCNotFound:
		return "NotFound"
	case ErrCInvalidCommand:
		return "InvalidCommand"
	case ErrCConvert:
		return "ConvertError"
	case ErrCStorage:
		return "StorageError"
	case ErrCEncode:
		return "EncodeError"
	case ErrCDecode:
		return "DecodeError"
	default:
		return "Unknown"
	}
}

// --------------------------------------------------------------------------
// Error Type
// --------------------------------------------------------------------------

// Error is the error type used by storage backends and command handlers.
// Which fields are used depends on the code.
type Error struct {
	Code   ErrCode
	Table  string // Used for: NotFound, StorageError
	Key    string // Used for: NotFound, StorageError
	Op     string // Used for: StorageError
	Target string // Used for: ConvertError
	Value  Value  // Used for: ConvertError
	Reason string // Used for: InvalidCommand, StorageError, Internal
	Cause  error  // Used for: StorageError, EncodeError, DecodeError (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Code {
	case ErrCNotFound:
		return fmt.Sprintf("Not found for table: %s, key: %s", e.Table, e.Key)
	case ErrCInvalidCommand:
		return fmt.Sprintf("Cannot parse command: `%s`", e.Reason)
	case ErrCConvert:
		return fmt.Sprintf("Cannot convert value %s to %s", e.Value, e.Target)
	case ErrCStorage:
		return fmt.Sprintf("Cannot process command %s with table: %s, key: %s, Error: %s", e.Op, e.Table, e.Key, e.Reason)
	case ErrCEncode:
		return withCause("Failed to encode protobuf message", e.Cause)
	case ErrCDecode:
		return withCause("Failed to decode protobuf message", e.Cause)
	default:
		return fmt.Sprintf("Internal error: %s", e.Reason)
	}
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Status maps the error to a response status code (HTTP semantics).
// NotFound -> 404, InvalidCommand -> 400, everything else -> 500.
func (e *Error) Status() uint32 {
	switch e.Code {
	case ErrCNotFound:
		return http.StatusNotFound
	case ErrCInvalidCommand:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return msg + ": " + cause.Error()
}

// --------------------------------------------------------------------------
// Constructors
// --------------------------------------------------------------------------

// NotFound creates an error for a missing table or key.
func NotFound(table, key string) *Error {
	return &Error{Code: ErrCNotFound, Table: table, Key: key}
}

// InvalidCommand creates an error for a command that cannot be processed.
func InvalidCommand(reason string) *Error {
	return &Error{Code: ErrCInvalidCommand, Reason: reason}
}

// ConvertError creates an error for a failed conversion of value to the target kind.
func ConvertError(value Value, target string) *Error {
	return &Error{Code: ErrCConvert, Value: value, Target: target}
}

// StorageError creates an error for a failed storage operation.
func StorageError(op, table, key string, cause error) *Error {
	reason := "unknown"
	if cause != nil {
		reason = cause.Error()
	}
	return &Error{Code: ErrCStorage, Op: op, Table: table, Key: key, Reason: reason, Cause: cause}
}

// EncodeError creates an error for a message that could not be encoded.
func EncodeError(cause error) *Error {
	return &Error{Code: ErrCEncode, Cause: cause}
}

// DecodeError creates an error for a message that could not be decoded.
func DecodeError(cause error) *Error {
	return &Error{Code: ErrCDecode, Cause: cause}
}

// Internal creates an error for anything not covered by the other codes.
func Internal(reason string) *Error {
	return &Error{Code: ErrCInternal, Reason: reason}
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

// StatusOf returns the response status for an arbitrary error.
// Errors that are not (or do not wrap) an *Error map to 500.
func StatusOf(err error) uint32 {
	var kvErr *Error
	if errors.As(err, &kvErr) {
		return kvErr.Status()
	}
	return http.StatusInternalServerError
}

// CodeOf returns the error code of err, or ErrCInternal if err is not an *Error.
func CodeOf(err error) ErrCode {
	var kvErr *Error
	if errors.As(err, &kvErr) {
		return kvErr.Code
	}
	return ErrCInternal
}
