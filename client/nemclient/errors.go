package nemclient

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

var errMissing = errors.New("required field is missing")

// TransportError is returned when a request could not be sent, or the node answered with a
// non 2xx status. Body is the response as the node sent it.
type TransportError struct {
	URL        string
	StatusCode int
	Body       []byte
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		if e.StatusCode != 0 {
			return fmt.Sprintf("GET %s (status %d): %s", e.URL, e.StatusCode, e.Err)
		}
		return fmt.Sprintf("GET %s: %s", e.URL, e.Err)
	}
	return fmt.Sprintf("GET %s returned status %d: %s", e.URL, e.StatusCode, string(e.Body))
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when a response does not have the expected shape.
// Field is the path of the offending field, empty when the body itself is malformed.
type DecodeError struct {
	Field   string
	Payload []byte
	Err     error
}

func (e *DecodeError) Error() string {
	if len(e.Field) > 0 {
		return fmt.Sprintf("fail to decode %s: %s", e.Field, e.Err)
	}
	return fmt.Sprintf("fail to decode response: %s", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsNotFound whether err is the node answering 404
func IsNotFound(err error) bool {
	var te *TransportError
	return errors.As(err, &te) && te.StatusCode == http.StatusNotFound
}

func newDecodeError(field string, err error) error {
	return &DecodeError{Field: field, Err: err}
}

// prefixField nests the field of a DecodeError under prefix, other errors are returned as is
func prefixField(prefix string, err error) error {
	var de *DecodeError
	if !errors.As(err, &de) {
		return err
	}
	field := prefix
	switch {
	case len(de.Field) == 0:
	case strings.HasPrefix(de.Field, "["):
		field = prefix + de.Field
	default:
		field = prefix + "." + de.Field
	}
	return &DecodeError{Field: field, Payload: de.Payload, Err: de.Err}
}

// withPayload attach the whole response body to a DecodeError
func withPayload(buf []byte, err error) error {
	var de *DecodeError
	if !errors.As(err, &de) {
		return err
	}
	return &DecodeError{Field: de.Field, Payload: buf, Err: de.Err}
}
