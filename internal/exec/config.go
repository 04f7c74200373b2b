package exec

import (
	"io"

	errUtils "github.com/cloudposse/timestamp/errors"
	tuiUtils "github.com/cloudposse/timestamp/internal/tui/utils"
	"github.com/cloudposse/timestamp/pkg/schema"
	u "github.com/cloudposse/timestamp/pkg/utils"
)

// Output formats of ExecuteConfig.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// ExecuteConfig prints the effective configuration to w as YAML or JSON,
// syntax highlighted when highlight is set.
func ExecuteConfig(w io.Writer, cfg schema.Configuration, format string, highlight bool) error {
	var (
		out string
		err error
	)
	switch format {
	case FormatYAML, "":
		format = FormatYAML
		out, err = u.ConvertToYAML(cfg)
	case FormatJSON:
		out, err = u.ConvertToJSON(cfg)
	default:
		return errUtils.Build(errUtils.ErrInvalidOutputFormat).
			WithHintf("Use '%s' or '%s'", FormatYAML, FormatJSON).
			WithContext("format", format).
			Err()
	}
	if err != nil {
		return err
	}

	if highlight {
		highlighted, err := tuiUtils.HighlightCode(out, format, tuiUtils.DefaultSyntaxTheme)
		if err == nil {
			out = highlighted
		}
	}

	_, err = io.WriteString(w, out)
	return err
}
