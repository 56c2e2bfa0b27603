package hearth

import (
	"errors"
	"fmt"
)

var (
	// ErrSchema indicates persisted configuration whose shape this build
	// does not understand: an unknown version tag or a recognized version
	// missing required fields.
	ErrSchema = errors.New("hearth: schema error")

	// ErrFilesystem indicates an I/O failure while reading or writing the
	// configuration file, unrelated to the shape of its contents.
	ErrFilesystem = errors.New("hearth: filesystem error")

	// ErrUnknownLanguage indicates an identifier that names no supported
	// language.
	ErrUnknownLanguage = errors.New("hearth: unknown language")

	// ErrUnknownChannel indicates an identifier that names no update
	// channel.
	ErrUnknownChannel = errors.New("hearth: unknown update channel")
)

// SchemaError describes why a persisted document could not be decoded into
// the current schema. Version names the version tag involved when one was
// recognized or encountered.
type SchemaError struct {
	Version string
	Field   string
	Reason  string
	Err     error
}

func (e *SchemaError) Error() string {
	msg := e.Reason
	if e.Field != "" {
		msg = fmt.Sprintf("missing required field %q", e.Field)
	}
	if e.Err != nil {
		if msg == "" {
			msg = e.Err.Error()
		} else {
			msg = fmt.Sprintf("%s: %v", msg, e.Err)
		}
	}
	if e.Version != "" {
		return fmt.Sprintf("schema %s: %s", e.Version, msg)
	}
	return msg
}

func (e *SchemaError) Is(target error) bool {
	return target == ErrSchema
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// NewUnknownSchemaVersionError reports a version tag this build does not
// recognize.
func NewUnknownSchemaVersionError(tag string) error {
	return &SchemaError{Version: tag, Reason: "unknown version tag"}
}

// NewMissingSchemaFieldError reports a recognized version missing one of its
// required fields.
func NewMissingSchemaFieldError(version, field string) error {
	return &SchemaError{Version: version, Field: field}
}

// NewSchemaDecodeError wraps a lower-level decode failure for a recognized
// version, typically a mistyped payload value.
func NewSchemaDecodeError(version string, err error) error {
	return &SchemaError{Version: version, Err: err}
}

// NewSchemaShapeError reports a document whose overall structure is not a
// valid tagged value at all.
func NewSchemaShapeError(reason string) error {
	return &SchemaError{Reason: reason}
}

// IsSchemaError reports whether err indicates undecodable persisted
// configuration.
func IsSchemaError(err error) bool {
	return errors.Is(err, ErrSchema)
}

// FilesystemError carries the operation and path of a failed I/O call.
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Is(target error) bool {
	return target == ErrFilesystem
}

func (e *FilesystemError) Unwrap() error {
	return e.Err
}

// NewFilesystemError constructs a FilesystemError for the given operation
// and path.
func NewFilesystemError(op, path string, err error) error {
	return &FilesystemError{Op: op, Path: path, Err: err}
}

// IsFilesystem reports whether err indicates a configuration I/O failure.
func IsFilesystem(err error) bool {
	return errors.Is(err, ErrFilesystem)
}

// UnknownLanguageError carries the identifier that failed to resolve.
type UnknownLanguageError struct {
	Name string
}

func (e *UnknownLanguageError) Error() string {
	return fmt.Sprintf("unknown language %q", e.Name)
}

func (e *UnknownLanguageError) Is(target error) bool {
	return target == ErrUnknownLanguage
}

// NewUnknownLanguageError constructs an UnknownLanguageError for the given
// identifier.
func NewUnknownLanguageError(name string) error {
	return &UnknownLanguageError{Name: name}
}

// IsUnknownLanguage reports whether err indicates an unknown language
// identifier.
func IsUnknownLanguage(err error) bool {
	return errors.Is(err, ErrUnknownLanguage)
}

// UnknownChannelError carries the identifier that failed to resolve.
type UnknownChannelError struct {
	Name string
}

func (e *UnknownChannelError) Error() string {
	return fmt.Sprintf("unknown update channel %q", e.Name)
}

func (e *UnknownChannelError) Is(target error) bool {
	return target == ErrUnknownChannel
}

// NewUnknownChannelError constructs an UnknownChannelError for the given
// identifier.
func NewUnknownChannelError(name string) error {
	return &UnknownChannelError{Name: name}
}

// IsUnknownChannel reports whether err indicates an unknown update channel
// identifier.
func IsUnknownChannel(err error) bool {
	return errors.Is(err, ErrUnknownChannel)
}
