package history

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/ncruces/go-strftime"

	hinderrors "thoreinstein.com/hindsight/pkg/errors"
)

// DefaultTimestampLayout renders timestamps when no format hint is configured.
const DefaultTimestampLayout = "2006-01-02 15:04:05"

// Parser converts lines of shell history output into Entries.
//
// The format hint is the strftime pattern bash uses to render timestamp
// prefixes under HISTTIMEFORMAT. An empty hint means lines carry no
// timestamp and the whole trimmed line is the command.
type Parser struct {
	format  string
	layout  string
	numeric bool
}

// NewParser validates the timestamp format hint and returns a Parser.
//
// A hint of "%s" (epoch seconds, the common PROMPT_COMMAND setup) is handled
// numerically. Any other hint is converted to a time layout and checked by
// rendering the current time and parsing it back; a hint that fails either
// step would silently break every import, so it is rejected up front.
func NewParser(format string) (*Parser, error) {
	p := &Parser{format: format}
	if format == "" {
		return p, nil
	}
	if strings.TrimSpace(format) == "%s" {
		p.numeric = true
		return p, nil
	}

	layout, err := strftime.Layout(format)
	if err != nil {
		return nil, hinderrors.NewConfigErrorWithCause("history.timestamp_format",
			"unsupported strftime pattern", err)
	}
	p.layout = strings.TrimRight(layout, " ")

	rendered := strings.TrimRight(strftime.Format(format, time.Now()), " \t")
	if _, err := time.ParseInLocation(p.layout, rendered, time.Local); err != nil {
		return nil, hinderrors.NewConfigErrorWithCause("history.timestamp_format",
			"cannot parse a timestamp rendered by this format", err)
	}
	return p, nil
}

// Format returns the configured timestamp format hint, empty if none.
func (p *Parser) Format() string {
	return p.format
}

// Parse converts one line of history output into an Entry.
//
// Without a format hint the entire trimmed line is the command and the
// timestamp is unknown. With a hint the line must start with a timestamp in
// that format; the timestamp's extent is found at whitespace boundaries, so
// variable-width fields (in particular epoch seconds of any length) parse
// correctly. The remainder is the command and must be non-empty.
func (p *Parser) Parse(line string) (Entry, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Entry{}, hinderrors.NewParseError("", "empty line")
	}
	if p.format == "" {
		return Entry{Command: trimmed}, nil
	}
	if p.numeric {
		return p.parseNumeric(trimmed)
	}
	return p.parseLayout(trimmed)
}

// parseNumeric handles the "%s" hint: an epoch-seconds integer delimited by
// the first run of whitespace, whatever its width.
func (p *Parser) parseNumeric(trimmed string) (Entry, error) {
	cut := strings.IndexFunc(trimmed, unicode.IsSpace)
	if cut < 0 {
		return Entry{}, hinderrors.NewParseError(trimmed, "no command after timestamp")
	}
	seconds, err := strconv.ParseInt(trimmed[:cut], 10, 64)
	if err != nil {
		return Entry{}, hinderrors.NewParseErrorWithCause(trimmed,
			"timestamp prefix is not an integer", err)
	}
	if seconds < 0 {
		return Entry{}, hinderrors.NewParseError(trimmed, "timestamp must not be negative")
	}
	command := strings.TrimSpace(trimmed[cut:])
	if command == "" {
		return Entry{}, hinderrors.NewParseError(trimmed, "no command after timestamp")
	}
	return Entry{Timestamp: time.Unix(seconds, 0), Command: command}, nil
}

// parseLayout handles general strftime hints by extending the candidate
// timestamp one whitespace-delimited field at a time until the layout
// matches.
func (p *Parser) parseLayout(trimmed string) (Entry, error) {
	for _, cut := range splitPoints(trimmed) {
		candidate := strings.TrimRight(trimmed[:cut], " \t")
		ts, err := time.ParseInLocation(p.layout, candidate, time.Local)
		if err != nil {
			continue
		}
		command := strings.TrimSpace(trimmed[cut:])
		if command == "" {
			return Entry{}, hinderrors.NewParseError(trimmed, "no command after timestamp")
		}
		return Entry{Timestamp: ts, Command: command}, nil
	}
	return Entry{}, hinderrors.NewParseError(trimmed, "timestamp prefix does not match format")
}

// RenderTimestamp renders t for display: with the configured hint when one
// is set, otherwise as a local date-time.
func (p *Parser) RenderTimestamp(t time.Time) string {
	switch {
	case p.numeric:
		return strconv.FormatInt(t.Unix(), 10)
	case p.format != "":
		return strings.TrimSpace(strftime.Format(p.format, t))
	default:
		return t.Format(DefaultTimestampLayout)
	}
}

// splitPoints returns the index of each token start after the first, then
// len(s), so callers can grow a prefix one field at a time.
func splitPoints(s string) []int {
	var points []int
	inSpace := false
	for i, r := range s {
		if unicode.IsSpace(r) {
			inSpace = true
			continue
		}
		if inSpace {
			points = append(points, i)
			inSpace = false
		}
	}
	return append(points, len(s))
}
