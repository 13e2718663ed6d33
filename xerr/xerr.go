// Package xerr is the structured error taxonomy for this module: the four
// error kinds spec.md §7 names (length mismatch, invalid slice, invalid
// editops, invalid weights) carried in an envelope that can attach
// severity, a correlation ID, and free-form context. Every other condition
// the engines encounter — unknown elements, empty inputs, cutoff exceeded —
// is a normal outcome reported through sentinel return values, never
// through this package.
package xerr

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Code identifies which of the four error kinds an Envelope represents.
type Code string

const (
	// CodeLengthMismatch is returned by Hamming on sequences of unequal
	// length.
	CodeLengthMismatch Code = "length_mismatch"
	// CodeInvalidSlice is returned by Editops.Slice for a zero or negative
	// step, or indices out of range.
	CodeInvalidSlice Code = "invalid_slice"
	// CodeInvalidEditops is returned by Editops.RemoveSubsequence when the
	// argument isn't literally contained in the receiver's op list.
	// ToEditops does not validate Opcodes spans and returns no error.
	CodeInvalidEditops Code = "invalid_editops"
	// CodeInvalidWeights names invalid insert/delete/replace costs. No
	// function in this module returns it: levenshtein.Distance scales by
	// multiplication and reports no error.
	CodeInvalidWeights Code = "invalid_weights"
)

// Severity is a flat severity enum for an Envelope.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

var severityLevel = map[Severity]int{
	SeverityInfo:     0,
	SeverityLow:      1,
	SeverityMedium:   2,
	SeverityHigh:     3,
	SeverityCritical: 4,
}

// Envelope is the single error carrier this module returns. It implements
// the standard error interface and can carry structured detail without
// forcing every call site to build ad-hoc fmt.Errorf messages.
type Envelope struct {
	Code          Code
	Message       string
	Timestamp     string
	Severity      Severity
	SeverityLevel int
	CorrelationID string
	Details       map[string]any
}

// New builds an Envelope with SeverityMedium and a fresh correlation ID.
func New(code Code, message string) *Envelope {
	return &Envelope{
		Code:          code,
		Message:       message,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		Severity:      SeverityMedium,
		SeverityLevel: severityLevel[SeverityMedium],
		CorrelationID: uuid.New().String(),
	}
}

// Newf is New with fmt.Sprintf-style formatting of the message.
func Newf(code Code, format string, args ...any) *Envelope {
	return New(code, fmt.Sprintf(format, args...))
}

// WithSeverity overrides the default severity.
func (e *Envelope) WithSeverity(s Severity) *Envelope {
	e.Severity = s
	e.SeverityLevel = severityLevel[s]
	return e
}

// WithDetails attaches structured detail fields.
func (e *Envelope) WithDetails(details map[string]any) *Envelope {
	e.Details = details
	return e
}

// Error implements the error interface.
func (e *Envelope) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Severity, e.Message)
}
