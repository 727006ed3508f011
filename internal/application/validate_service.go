package application

import (
	"fmt"

	"github.com/aiif/aiifcheck/internal/domain"
	"github.com/aiif/aiifcheck/internal/domain/rules"
)

// ValidateService orchestrates the validation pipeline:
// load document + checklist -> build registry -> evaluate rules ->
// summarize -> stamp repo metadata.
type ValidateService struct {
	loader domain.DocumentLoader
	repo   domain.RepoInspector
}

// NewValidateService wires a ValidateService. repo may be nil; reports
// are then emitted without a commit stamp.
func NewValidateService(loader domain.DocumentLoader, repo domain.RepoInspector) *ValidateService {
	return &ValidateService{loader: loader, repo: repo}
}

// Validate runs the full checker against the document at aiifPath using
// the checklist at checklistPath. Loader failures abort before any rule
// runs; once evaluation starts it always completes.
func (s *ValidateService) Validate(aiifPath, checklistPath string) (*domain.Report, error) {
	doc, err := s.loader.Load(aiifPath)
	if err != nil {
		return nil, fmt.Errorf("loading AIIF document: %w", err)
	}

	checklist, err := s.loader.Load(checklistPath)
	if err != nil {
		return nil, fmt.Errorf("loading checklist: %w", err)
	}

	reg := domain.NewRegistry(checklist)
	results := rules.Evaluate(domain.Document(doc), reg)
	summary := domain.Summarize(results)

	report := &domain.Report{
		DocumentPath: aiifPath,
		Results:      results,
		Summary:      summary,
		Compliant:    summary.Compliant(),
	}

	if s.repo != nil {
		if hash, ok := s.repo.CommitHash(aiifPath); ok {
			report.CommitHash = hash
		}
	}

	return report, nil
}

// ChecklistEntry is one row of the checks listing.
type ChecklistEntry struct {
	ID    string          `json:"id"`
	Level domain.Severity `json:"level"`
}

// ListChecks loads a checklist and returns its defined check ids with
// resolved severities, in lexical order.
func (s *ValidateService) ListChecks(checklistPath string) ([]ChecklistEntry, error) {
	checklist, err := s.loader.Load(checklistPath)
	if err != nil {
		return nil, fmt.Errorf("loading checklist: %w", err)
	}

	reg := domain.NewRegistry(checklist)
	ids := reg.IDs()
	entries := make([]ChecklistEntry, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, ChecklistEntry{ID: id, Level: reg.SeverityOf(id)})
	}
	return entries, nil
}
