package fsops

import "fmt"

// Kind categorizes an operation failure.
type Kind int

// Failure categories surfaced through the envelope's error_type field.
const (
	KindNotFound Kind = iota
	KindNotADirectory
	KindNotAFile
	KindAccessDenied
	KindTooLarge
	KindInvalidArgument
	KindInternal
)

// wireNames maps each kind to the error_type string consumers rely on.
// The names follow the exception classes the sidecar protocol originally
// exposed, so existing engine-side parsers keep working.
var wireNames = map[Kind]string{
	KindNotFound:        "FileNotFoundError",
	KindNotADirectory:   "NotADirectoryError",
	KindNotAFile:        "NotAFileError",
	KindAccessDenied:    "PermissionError",
	KindTooLarge:        "FileTooLargeError",
	KindInvalidArgument: "ValueError",
	KindInternal:        "OSError",
}

// Error is a categorized operation failure.
type Error struct {
	Kind Kind
	msg  string
	err  error
}

// NewError creates a categorized error with a formatted message.
func NewError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...)}
}

func wrapError(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...), err: err}
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.err
}

// WireName returns the error_type string for the failure envelope.
func (e *Error) WireName() string {
	return wireNames[e.Kind]
}

func notFound(path string) *Error {
	return NewError(KindNotFound, "Path not found: %s", path)
}

func accessDenied(path string) *Error {
	return NewError(KindAccessDenied, "Access denied: path is outside the project root: %s", path)
}
