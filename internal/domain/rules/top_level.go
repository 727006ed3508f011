package rules

import (
	"fmt"
	"strings"

	"github.com/aiif/aiifcheck/internal/domain"
)

// topLevelRequiredFields verifies that aiif_version, info and endpoints
// exist with the right shapes. The failure message enumerates every
// defect rather than stopping at the first.
func topLevelRequiredFields(doc domain.Document, _ *domain.Registry, emit EmitFunc) {
	var missing []string
	for _, key := range []string{"aiif_version", "info", "endpoints"} {
		if _, ok := doc[key]; !ok {
			missing = append(missing, key)
		}
	}

	version, _ := doc["aiif_version"].(string)
	versionOK := strings.TrimSpace(version) != ""

	_, endpointsOK := doc["endpoints"].([]any)
	_, infoOK := asObject(doc["info"])

	ok := len(missing) == 0 && versionOK && endpointsOK && infoOK
	if ok {
		emit(domain.CheckTopLevelRequiredFields, true, "top-level required fields present")
		return
	}

	details := missing
	if !versionOK {
		details = append(details, "aiif_version (must be non-empty string)")
	}
	emit(domain.CheckTopLevelRequiredFields, false,
		fmt.Sprintf("missing/invalid top-level fields: %s", strings.Join(details, ", ")))
}
