package exec

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/cloudposse/timestamp/errors"
	"github.com/cloudposse/timestamp/pkg/schema"
)

func TestExecuteConfig(t *testing.T) {
	cfg := schema.Configuration{
		Logs:  schema.Logs{Level: "Info", File: "/dev/stderr"},
		Label: defaultLabel(),
	}

	var yamlOut bytes.Buffer
	require.NoError(t, ExecuteConfig(&yamlOut, cfg, "", false))
	assert.Contains(t, yamlOut.String(), "label:\n")
	assert.Contains(t, yamlOut.String(), "  format: hms\n")

	var jsonOut bytes.Buffer
	require.NoError(t, ExecuteConfig(&jsonOut, cfg, FormatJSON, false))
	assert.Contains(t, jsonOut.String(), "\"direction\": \"increase\"")

	var highlighted bytes.Buffer
	require.NoError(t, ExecuteConfig(&highlighted, cfg, FormatYAML, true))
	assert.Contains(t, highlighted.String(), "\x1b[")
	assert.Contains(t, ansi.Strip(highlighted.String()), "format: hms")
}

func TestExecuteConfig_InvalidFormat(t *testing.T) {
	err := ExecuteConfig(&bytes.Buffer{}, schema.Configuration{}, "toml", false)
	assert.ErrorIs(t, err, errUtils.ErrInvalidOutputFormat)
}
