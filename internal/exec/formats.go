package exec

import (
	"fmt"
	"strings"
	"time"

	"github.com/muesli/termenv"

	"github.com/cloudposse/timestamp/pkg/pager"
	"github.com/cloudposse/timestamp/pkg/timestamp"
	"github.com/cloudposse/timestamp/pkg/ui/markdown"
)

// FormatsSample is the time the format reference renders its examples with.
var FormatsSample = time.Date(2024, time.March, 5, 14, 8, 9, 123000000, time.UTC)

var patternTokens = []struct {
	token   string
	meaning string
}{
	{"yyyy", "year"},
	{"yy", "two digit year"},
	{"M", "month"},
	{"MM", "month, zero padded"},
	{"MMM", "month name, short"},
	{"MMMM", "month name"},
	{"LLL", "month name, short, standalone"},
	{"d", "day of month"},
	{"dd", "day of month, zero padded"},
	{"D", "day of year"},
	{"EEE", "weekday, short"},
	{"EEEE", "weekday"},
	{"HH", "hour (00-23)"},
	{"h", "hour (1-12)"},
	{"hh", "hour (01-12)"},
	{"kk", "hour (01-24)"},
	{"K", "hour (0-11)"},
	{"m", "minute"},
	{"mm", "minute, zero padded"},
	{"s", "second"},
	{"ss", "second, zero padded"},
	{"SSS", "fraction of a second, one digit per S"},
	{"a", "AM/PM marker"},
	{"Z", "zone offset"},
	{"ZZZZ", "zone offset with colon"},
	{"z", "zone abbreviation"},
	{"'text'", "literal text, '' for a quote"},
}

// FormatsMarkdown returns the display format reference as markdown.
// Examples are rendered from sample.
func FormatsMarkdown(sample time.Time) string {
	var b strings.Builder

	b.WriteString("# Display formats\n\n")
	b.WriteString("Pass one of the names below, an LDML pattern, or `strftime:` followed by a strftime pattern to `--format`.\n\n")
	b.WriteString("| Format | Pattern | Example |\n|---|---|---|\n")
	for _, f := range []struct {
		name   string
		format timestamp.Format
	}{
		{"hms", timestamp.HourMinSec},
		{"ms", timestamp.MinSec},
		{"strftime:%H:%M", timestamp.Strftime("%H:%M")},
	} {
		example, _ := f.format.Render(sample)
		fmt.Fprintf(&b, "| `%s` | `%s` | %s |\n", f.name, f.format.Pattern(), example)
	}

	b.WriteString("\n## Pattern tokens\n\n")
	b.WriteString("| Token | Meaning | Example |\n|---|---|---|\n")
	for _, tok := range patternTokens {
		example, _ := timestamp.Custom(tok.token).Render(sample)
		fmt.Fprintf(&b, "| `%s` | %s | %s |\n", tok.token, tok.meaning, example)
	}

	b.WriteString("\nAny other letter makes the pattern invalid. Other characters are copied as is.\n")
	return b.String()
}

// FormatsTitle is the pager title of the format reference.
const FormatsTitle = "timestamp formats"

// ExecuteFormats renders the display format reference and hands it to the pager.
func ExecuteFormats(p pager.PageCreator, width uint, color bool) error {
	profile := termenv.Ascii
	if color {
		profile = termenv.ColorProfile()
	}

	r, err := markdown.NewRenderer(markdown.WithWidth(width), markdown.WithColorProfile(profile))
	if err != nil {
		return err
	}
	out, err := r.Render(FormatsMarkdown(FormatsSample))
	if err != nil {
		return err
	}
	return p.Run(FormatsTitle, out)
}
