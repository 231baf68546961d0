package core

import (
	"errors"
	"fmt"
)

var ErrCycleInProgress = errors.New("cycle already in progress")

// FetchError reports a transport failure or an error status from the source.
type FetchError struct {
	URL        string
	StatusCode int
	// Excerpt is a short plain-text rendering of an error page, if any.
	Excerpt string
	Err     error
}

func (e *FetchError) Error() string {
	switch {
	case e.StatusCode >= 400 && e.Excerpt != "":
		return fmt.Sprintf("fetch %s: HTTP %d: %s", e.URL, e.StatusCode, e.Excerpt)
	case e.StatusCode >= 400 || e.Err == nil:
		return fmt.Sprintf("fetch %s: HTTP %d", e.URL, e.StatusCode)
	default:
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseFailure means the fetched document could not be parsed at all,
// as opposed to a document without any messages in it.
type ParseFailure struct {
	Reason string
	Err    error
}

func (e *ParseFailure) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse document: %s: %v", e.Reason, e.Err)
	}
	return "parse document: " + e.Reason
}

func (e *ParseFailure) Unwrap() error { return e.Err }

type StoreIOError struct {
	Op   string
	Path string
	Err  error
}

func (e *StoreIOError) Error() string {
	return fmt.Sprintf("message store %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StoreIOError) Unwrap() error { return e.Err }

// ConfigError is fatal and only ever raised before the first cycle.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid configuration: %v", e.Err)
	}
	return fmt.Sprintf("invalid configuration %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }
