package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"studyspots/internal/domain"
)

type directoryIngestService struct {
	snapshots      domain.SnapshotRepository
	validator      domain.DocumentValidator
	renderer       domain.ReportRenderer
	mailer         domain.Mailer
	reportTo       string
	contextTimeout time.Duration
}

// NewDirectoryIngestService wires the document load pipeline: decode,
// validate, version, persist, and notify maintainers on validation failure.
// reportTo may be empty to disable the violation report mail.
func NewDirectoryIngestService(snapshots domain.SnapshotRepository, validator domain.DocumentValidator, renderer domain.ReportRenderer, mailer domain.Mailer, reportTo string, timeout time.Duration) domain.DirectoryIngestService {
	return &directoryIngestService{
		snapshots:      snapshots,
		validator:      validator,
		renderer:       renderer,
		mailer:         mailer,
		reportTo:       reportTo,
		contextTimeout: timeout,
	}
}

func (s *directoryIngestService) LoadDocument(ctx context.Context, source string, raw []byte, version string) (*domain.Directory, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	doc, err := domain.DecodeDocument(raw)
	if err != nil {
		return nil, err
	}

	directory, violations := s.validator.Validate(doc)
	if len(violations) > 0 {
		// Invalid input never yields a directory, partial or otherwise.
		s.reportViolations(source, violations)
		return nil, &domain.InvalidDocumentError{Violations: violations}
	}

	next, err := NextReleaseVersion(ctx, s.snapshots, version)
	if err != nil {
		return nil, fmt.Errorf("resolve release version: %w", err)
	}
	snapshot := domain.NewSnapshot(next, raw, len(directory.Spots()), time.Now())
	if err := s.snapshots.Create(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("store release %s: %w", next, err)
	}
	log.Printf("[INGEST] Released directory %s from %s (%d spots)", next, source, snapshot.SpotCount)
	return directory, nil
}

// reportViolations mails the defect list to the maintainers. Best-effort:
// the caller already receives the violations as data.
func (s *directoryIngestService) reportViolations(source string, violations domain.Violations) {
	if s.reportTo == "" || s.mailer == nil {
		return
	}
	report := &domain.ViolationReport{Source: source, Violations: violations, CheckedAt: time.Now()}
	subject, html, text, err := s.renderer.Render(report)
	if err != nil {
		log.Printf("[INGEST] Failed to render violation report: %v", err)
		return
	}
	if err := s.mailer.Send(s.reportTo, subject, html, text); err != nil {
		log.Printf("[INGEST] Failed to send violation report: %v", err)
	}
}
