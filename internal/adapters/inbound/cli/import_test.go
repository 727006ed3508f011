package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/aiif/aiifcheck/internal/adapters/inbound/cli"
	"github.com/aiif/aiifcheck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const petstoreSpec = "../../../../testdata/openapi/petstore.yaml"

func TestImport_WritesToStdout(t *testing.T) {
	stdout, _, err := runCommand(t, "import", petstoreSpec)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &doc))
	assert.Equal(t, "1.0", doc["aiif_version"])
	assert.Contains(t, doc, "endpoints")
}

func TestImport_WritesToFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "imported.aiif.json")
	stdout, _, err := runCommand(t, "import", petstoreSpec, "-o", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "wrote "+out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Contains(t, doc, "auth")
}

func TestImport_ThenValidateCompliant(t *testing.T) {
	out := filepath.Join(t.TempDir(), "imported.aiif.json")
	_, _, err := runCommand(t, "import", petstoreSpec, "-o", out)
	require.NoError(t, err)

	stdout, _, err := runCommand(t, "validate", "--aiif", out, "--checklist", allMustChecklist)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Result: COMPLIANT (all MUST checks passed)")
}

func TestImport_MissingSpecExitsTwo(t *testing.T) {
	_, _, err := runCommand(t, "import", "no-such.yaml")
	require.Error(t, err)
	assert.Equal(t, domain.ExitIOError, cli.ExitCode(err))
}

func TestImport_RequiresExactlyOneArg(t *testing.T) {
	_, _, err := runCommand(t, "import")
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	stdout, _, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "aiifcheck")
}
