// internal/scraping/errors.go
package scraping

import (
	"errors"
	"fmt"
)

// Kind classifies why a listing could not be scraped.
type Kind int

const (
	KindUnknown Kind = iota
	KindNetwork
	KindHTTPStatus
	KindParse
	KindMissingField
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindHTTPStatus:
		return "http_status"
	case KindParse:
		return "parse"
	case KindMissingField:
		return "missing_field"
	default:
		return "unknown"
	}
}

// Error is the failure side of a fetch. Field is set for MissingField and
// price parse failures, StatusCode for HTTPStatus.
type Error struct {
	Kind       Kind
	URL        string
	Field      string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	switch {
	case e.Kind == KindHTTPStatus:
		return fmt.Sprintf("%s: status code error: %d", e.URL, e.StatusCode)
	case e.Field != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s field %q: %v", e.URL, e.Kind, e.Field, e.Err)
	case e.Field != "":
		return fmt.Sprintf("%s: %s field %q", e.URL, e.Kind, e.Field)
	case e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.URL, e.Kind, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.URL, e.Kind)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf reports the Kind carried by err, or KindUnknown.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindUnknown
}

// withURL fills in the URL on a scraping error produced before it was known.
func withURL(err error, url string) error {
	var se *Error
	if errors.As(err, &se) && se.URL == "" {
		se.URL = url
	}
	return err
}
