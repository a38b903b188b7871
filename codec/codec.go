// Package codec decodes JSON response bodies into caller types.
//
// Unknown response fields are ignored. Fields tagged `validate:"required"`
// (or any other go-playground/validator tag) are checked after decoding, so
// a response missing a field the target type depends on fails the same way a
// malformed body does.
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	// ErrDecode is the sentinel wrapped by every [DecodeError].
	ErrDecode = errors.New("decode response")

	// ErrTrailingData is the cause reported when a body holds more than
	// one JSON value.
	ErrTrailingData = errors.New("unexpected data after top-level JSON value")
)

// maxSnippet caps the amount of body echoed into a DecodeError.
const maxSnippet = 256

// DecodeError reports a response body that could not be turned into the
// requested type.
type DecodeError struct {
	Body string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%v: %v", ErrDecode, e.Err)
}

// Unwrap returns both the sentinel and the cause so errors.Is and errors.As
// see either.
func (e *DecodeError) Unwrap() []error {
	return []error{ErrDecode, e.Err}
}

// Decode parses data as JSON into a new T and validates the result.
func Decode[T any](data []byte) (T, error) {
	var v T
	if err := DecodeInto(data, &v); err != nil {
		var zero T
		return zero, err
	}

	return v, nil
}

// DecodeInto parses data as JSON into dest, which must be a non-nil pointer,
// and validates the result. data must hold exactly one JSON value; anything
// but whitespace after it is an error.
func DecodeInto(data []byte, dest any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return &DecodeError{Err: errors.New("empty body")}
	}

	d := json.NewDecoder(bytes.NewReader(data))
	if err := d.Decode(dest); err != nil {
		return &DecodeError{Body: snippet(data), Err: err}
	}

	if _, err := d.Token(); !errors.Is(err, io.EOF) {
		return &DecodeError{Body: snippet(data), Err: ErrTrailingData}
	}

	if err := Validate(dest); err != nil {
		return &DecodeError{Body: snippet(data), Err: err}
	}

	return nil
}

// Encode marshals v as JSON.
func Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		return nil, fmt.Errorf("encoding payload: %w", err)
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// IsDecodeError reports whether err was produced while decoding a response.
func IsDecodeError(err error) bool {
	return errors.Is(err, ErrDecode)
}

func snippet(data []byte) string {
	s := strings.TrimSpace(string(data))
	if len(s) > maxSnippet {
		return s[:maxSnippet] + "..."
	}

	return s
}
