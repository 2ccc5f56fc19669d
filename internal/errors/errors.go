package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for type checking
var (
	ErrNotFound       = errors.New("not found")
	ErrNotInitialized = errors.New("not initialized")
	ErrInvalidInput   = errors.New("invalid input")
	ErrParse          = errors.New("parse error")
	ErrAlreadyExists  = errors.New("already exists")
	ErrUnsavedChanges = errors.New("unsaved changes")

	// ErrInvalidID and ErrInvalidName refine ErrInvalidInput for Assign.
	ErrInvalidID   = fmt.Errorf("%w: id", ErrInvalidInput)
	ErrInvalidName = fmt.Errorf("%w: name", ErrInvalidInput)

	// ErrMalformedInput means the export string is missing its mandatory separators.
	ErrMalformedInput = errors.New("malformed named ID string")

	// ErrReentrant is returned when a change listener tries to mutate the
	// registry while it is being notified.
	ErrReentrant = errors.New("registry mutated from inside a change notification")
)

// NotFoundError indicates a name or ID has no binding.
type NotFoundError struct {
	Category string // "group", "color", ...
	Key      string // The name or ID that wasn't found
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s named ID not found: %s", e.Category, e.Key)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// ValidationError indicates invalid user input.
type ValidationError struct {
	Field   string // "id" or "name"
	Message string
	Err     error // Underlying cause, e.g. the sanitizer's error
}

func (e *ValidationError) Error() string {
	msg := e.Message
	if e.Err != nil {
		if msg == "" {
			msg = e.Err.Error()
		} else {
			msg = fmt.Sprintf("%s: %v", msg, e.Err)
		}
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, msg)
	}
	return msg
}

func (e *ValidationError) Unwrap() []error {
	errs := []error{fieldSentinel(e.Field)}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func fieldSentinel(field string) error {
	switch field {
	case "id":
		return ErrInvalidID
	case "name":
		return ErrInvalidName
	default:
		return ErrInvalidInput
	}
}

// ParseError indicates a category segment that could not be decoded.
type ParseError struct {
	Entry   string // Offending entry text, may be empty
	Message string
}

func (e *ParseError) Error() string {
	if e.Entry != "" {
		return fmt.Sprintf("%s (entry %q)", e.Message, e.Entry)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}

// ImportError indicates a failed registry load. Category is empty when the
// string as a whole was malformed.
type ImportError struct {
	Category string
	Err      error
}

func (e *ImportError) Error() string {
	if e.Category == "" {
		return fmt.Sprintf("unable to import named IDs: %v", e.Err)
	}
	return fmt.Sprintf("unable to parse %s named IDs: %v", e.Category, e.Err)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

// NotInitializedError indicates nids isn't set up in the project.
type NotInitializedError struct {
	Path string
}

func (e *NotInitializedError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("nids not initialized in %s (run 'nids init')", e.Path)
	}
	return "nids not initialized (run 'nids init')"
}

func (e *NotInitializedError) Unwrap() error {
	return ErrNotInitialized
}

// AlreadyInitializedError indicates nids already has a data file in the project.
type AlreadyInitializedError struct {
	Path string
}

func (e *AlreadyInitializedError) Error() string {
	return fmt.Sprintf("nids already initialized: %s", e.Path)
}

func (e *AlreadyInitializedError) Unwrap() error {
	return ErrAlreadyExists
}

// Helper constructors for common cases

func NameNotFound(category, name string) error {
	return &NotFoundError{Category: category, Key: fmt.Sprintf("name %q", name)}
}

func IDNotFound(category string, id int16) error {
	return &NotFoundError{Category: category, Key: fmt.Sprintf("id %d", id)}
}

func InvalidID(id int16) error {
	return &ValidationError{Field: "id", Message: fmt.Sprintf("%d (must be greater than 0)", id)}
}

func InvalidName(name string, cause error) error {
	return &ValidationError{Field: "name", Message: fmt.Sprintf("%q", name), Err: cause}
}

func Malformed(message string) error {
	return &ImportError{Err: fmt.Errorf("%w: %s", ErrMalformedInput, message)}
}

// IsNotFound checks if an error is a not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsParseError checks if an error came from decoding serialized data.
func IsParseError(err error) bool {
	return errors.Is(err, ErrParse)
}

// IsMalformed checks if an import failed before any segment was parsed.
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformedInput)
}

// IsNotInitialized checks if an error means the project has no data file.
func IsNotInitialized(err error) bool {
	return errors.Is(err, ErrNotInitialized)
}

// IsAlreadyExists checks if an error is an already-exists error.
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}
