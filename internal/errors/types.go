package errors

import "fmt"

// ErrorType classifies an AppError. It decides the CLI message and the HTTP status.
type ErrorType int

const (
	// ErrorTypeValidation marks a submitted entry that failed validation.
	ErrorTypeValidation ErrorType = iota
	// ErrorTypeNotFound marks a storage slot that does not exist.
	ErrorTypeNotFound
	// ErrorTypeDatabase marks a failed slot read or write.
	ErrorTypeDatabase
	// ErrorTypeInvalidInput marks an unusable command argument or option.
	ErrorTypeInvalidInput
	// ErrorTypeTimeout marks work abandoned because its context expired.
	ErrorTypeTimeout
	// ErrorTypeExport marks a failed CSV or XLSX write.
	ErrorTypeExport
)

var typeNames = map[ErrorType]string{
	ErrorTypeValidation:   "validation",
	ErrorTypeNotFound:     "not_found",
	ErrorTypeDatabase:     "database",
	ErrorTypeInvalidInput: "invalid_input",
	ErrorTypeTimeout:      "timeout",
	ErrorTypeExport:       "export",
}

func (et ErrorType) String() string {
	if name, ok := typeNames[et]; ok {
		return name
	}
	return "unknown"
}

// AppError is the error every layer hands to the CLI and the HTTP server.
// Subject names what the error is about, such as a field name, a slot or an export format.
type AppError struct {
	Type    ErrorType
	Code    string
	Message string
	Subject string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is matches an AppError target with the same type and code.
func (e *AppError) Is(target error) bool {
	if appErr, ok := target.(*AppError); ok {
		return e.Type == appErr.Type && e.Code == appErr.Code
	}
	return false
}

// IsType reports whether e belongs to errorType.
func (e *AppError) IsType(errorType ErrorType) bool {
	return e.Type == errorType
}
