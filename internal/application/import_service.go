package application

import (
	"fmt"

	"github.com/aiif/aiifcheck/internal/domain"
)

// ImportService converts external API descriptions into AIIF documents.
type ImportService struct {
	importer domain.SpecImporter
}

func NewImportService(importer domain.SpecImporter) *ImportService {
	return &ImportService{importer: importer}
}

// ImportOpenAPI converts the OpenAPI document at path into an AIIF
// document skeleton ready for validation.
func (s *ImportService) ImportOpenAPI(path string) (map[string]any, error) {
	doc, err := s.importer.Import(path)
	if err != nil {
		return nil, fmt.Errorf("importing OpenAPI document: %w", err)
	}
	return doc, nil
}
