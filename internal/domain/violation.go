package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDocument marks a document that failed schema validation.
// The collected violations travel alongside it in InvalidDocumentError.
var ErrInvalidDocument = errors.New("invalid directory document")

// ViolationKind classifies a single contract breach.
type ViolationKind string

const (
	StructuralViolation ViolationKind = "structural"
	UnknownFilter       ViolationKind = "unknown_filter"
	DuplicateFilter     ViolationKind = "duplicate_filter"
	OrphanDescription   ViolationKind = "orphan_description"
	MissingDescription  ViolationKind = "missing_description"
	MalformedTime       ViolationKind = "malformed_time"
	UnknownField        ViolationKind = "unknown_field"
)

// Violation describes one contract breach at a document path, e.g.
// "spots[3].opens". Violations are collected, never raised mid-validation.
type Violation struct {
	Kind    ViolationKind `json:"kind"`
	Path    string        `json:"path"`
	Message string        `json:"message"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s at %s: %s", v.Kind, v.Path, v.Message)
}

// Violations is every breach found in one exhaustive validation pass,
// in input order for reproducible diagnostics.
type Violations []Violation

// Add appends a violation. The receiver pointer lets validators thread one
// accumulator through all checks.
func (vs *Violations) Add(kind ViolationKind, path, format string, args ...any) {
	*vs = append(*vs, Violation{Kind: kind, Path: path, Message: fmt.Sprintf(format, args...)})
}

// OfKind returns the violations matching kind.
func (vs Violations) OfKind(kind ViolationKind) Violations {
	var out Violations
	for _, v := range vs {
		if v.Kind == kind {
			out = append(out, v)
		}
	}
	return out
}

func (vs Violations) String() string {
	msgs := make([]string, len(vs))
	for i, v := range vs {
		msgs[i] = v.String()
	}
	return strings.Join(msgs, "; ")
}

// InvalidDocumentError carries the collected violations across the service
// boundary as a single error value.
type InvalidDocumentError struct {
	Violations Violations
}

func (e *InvalidDocumentError) Error() string {
	return fmt.Sprintf("invalid directory document: %d violation(s): %s", len(e.Violations), e.Violations)
}

func (e *InvalidDocumentError) Unwrap() error { return ErrInvalidDocument }
