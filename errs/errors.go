// Package errs defines the sentinel errors shared by the vap codec packages.
//
// Errors fall into two families. Decode-direction errors are structural and
// fatal: once the cursor position is unreliable no later field can be
// trusted, so no partial profile is ever returned. Encode-direction errors
// describe a single offending command or action and leave the rest of the
// input usable; callers collect them and keep going.
//
// All sentinels are plain values intended for errors.Is checks. Call sites
// wrap them with fmt.Errorf("...: %w", ...) to attach the byte offset or the
// offending name.
package errs

import "errors"

// Decode-direction errors. All of these are fatal for the document being
// decoded.
var (
	// ErrMalformedCompression indicates the input is neither a valid raw
	// deflate stream nor a recognizable XML document.
	ErrMalformedCompression = errors.New("malformed compression stream")

	// ErrTruncatedBuffer indicates a declared length or offset points past
	// the end of the remaining input.
	ErrTruncatedBuffer = errors.New("truncated buffer")

	// ErrUnknownActionType indicates an action record whose discriminant or
	// sentinel bytes match no known variant.
	ErrUnknownActionType = errors.New("unknown action type")

	// ErrInvalidHeader indicates the document is too short to contain the
	// fixed header or the header fields are internally inconsistent.
	ErrInvalidHeader = errors.New("invalid header")

	// ErrStringTooLong indicates a string length prefix above the decoder's
	// allocation cap. Real profiles stay far below it; hitting the cap means
	// the cursor is reading garbage.
	ErrStringTooLong = errors.New("string length exceeds limit")

	// ErrInvalidDocument indicates XML that parsed but does not describe a
	// profile (wrong root element, missing required fields).
	ErrInvalidDocument = errors.New("invalid profile document")
)

// Encode-direction errors. These are reported per command or action and do
// not abort the build.
var (
	// ErrUnsupportedKeyName indicates a key name absent from the configured
	// key table.
	ErrUnsupportedKeyName = errors.New("unsupported key name")

	// ErrUnsupportedMouseGesture indicates a mouse gesture name absent from
	// the configured gesture table.
	ErrUnsupportedMouseGesture = errors.New("unsupported mouse gesture")

	// ErrNoActions indicates a command that defines no key, mouse, or action
	// list, or whose every action failed to resolve.
	ErrNoActions = errors.New("command has no actions")
)

// Model validation errors.
var (
	// ErrDuplicateCommandID indicates two commands in one profile share an
	// identifier.
	ErrDuplicateCommandID = errors.New("duplicate command id")

	// ErrEmptyKeyCodes indicates a key action with an empty key code list.
	ErrEmptyKeyCodes = errors.New("key action has no key codes")
)
