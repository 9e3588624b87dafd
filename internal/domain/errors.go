package domain

import "fmt"

// LanguageCodeError rejects anything that is not two ASCII letters.
type LanguageCodeError struct {
	Code string
}

func (e *LanguageCodeError) Error() string {
	return fmt.Sprintf("'%s' is not a valid ISO-639-1 language code (two ASCII letters)", e.Code)
}

// DateError carries the rejected month/day pair, formatted two-digit.
type DateError struct {
	Month int
	Day   int
}

func (e *DateError) Error() string {
	return fmt.Sprintf("'%02d-%02d' is not a valid calendar date", e.Month, e.Day)
}

// TransportError wraps a failure to reach the upstream host at all
// (DNS, connect, timeout).
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("network error contacting %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// StatusError reports a non-2xx upstream response.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned %s", e.URL, e.Status)
}

// DecodeError reports a malformed or unexpected JSON body.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid JSON in upstream response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
