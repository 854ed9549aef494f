package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Sink collects all diagnostic records from one conversion run.
type Sink struct {
	Errors   []Record
	Warnings []Record
	Infos    []Record
}

// Record represents a single diagnostic message.
type Record struct {
	// Severity of the record.
	Severity Severity
	// Code is a unique identifier for this type of finding.
	Code string
	// Message is the human-readable description.
	Message string
	// Term is the EN 16931 business term this relates to (if any), e.g. "BT-9".
	Term string
	// Path identifies the source document location this relates to (if any).
	Path string
}

// Severity represents the severity level of a record.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// AddError adds an error record.
func (s *Sink) AddError(code, message, term, path string) {
	s.Errors = append(s.Errors, Record{
		Severity: SeverityError,
		Code:     code,
		Message:  message,
		Term:     term,
		Path:     path,
	})
}

// AddWarning adds a warning record.
func (s *Sink) AddWarning(code, message, term, path string) {
	s.Warnings = append(s.Warnings, Record{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		Term:     term,
		Path:     path,
	})
}

// AddInfo adds an info record.
func (s *Sink) AddInfo(code, message, term, path string) {
	s.Infos = append(s.Infos, Record{
		Severity: SeverityInfo,
		Code:     code,
		Message:  message,
		Term:     term,
		Path:     path,
	})
}

// HasErrors returns true if there are any error records.
func (s *Sink) HasErrors() bool {
	return len(s.Errors) > 0
}

// IsValid returns true if there are no errors.
func (s *Sink) IsValid() bool {
	return len(s.Errors) == 0
}

// Merge merges another Sink instance into this one.
func (s *Sink) Merge(other Sink) {
	s.Errors = append(s.Errors, other.Errors...)
	s.Warnings = append(s.Warnings, other.Warnings...)
	s.Infos = append(s.Infos, other.Infos...)
}

// Err returns a combined error from all error records, or nil if valid.
func (s *Sink) Err() error {
	if s.IsValid() {
		return nil
	}

	var parts []string
	for _, r := range s.Errors {
		parts = append(parts, r.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted record string.
func (r Record) String() string {
	var prefix []string
	if r.Term != "" {
		prefix = append(prefix, "["+r.Term+"]")
	}

	if r.Path != "" {
		prefix = append(prefix, r.Path)
	}

	msg := r.Message
	if r.Code != "" {
		msg = fmt.Sprintf("[%s] %s", r.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
