package memorydb

import (
	"bufio"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// commentKey marks a line of the form `// = ...` that carries no setting
const commentKey = "//"

// defaultAdaptationData is used when the adaptation file does not exist
func defaultAdaptationData() map[string]string {
	return map[string]string{
		"Component.Logger": "Simple Logger",
		"Component.UI":     "Simple UI",
	}
}

// loadAdaptationData reads the adaptation file at path. A missing file yields the defaults.
func loadAdaptationData(path string, logger zerolog.Logger) (map[string]string, error) {
	if path == "" {
		return defaultAdaptationData(), nil
	}

	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		logger.Info().Str("file", path).Msg("adaptation data file not found, using defaults")
		return defaultAdaptationData(), nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "[loadAdaptationData] open %q", path)
	}
	defer file.Close()

	pairs, err := parseAdaptationData(file)
	if err != nil {
		return nil, errors.Wrapf(err, "[loadAdaptationData] %q", path)
	}

	logger.Info().Str("file", path).Int("entries", len(pairs)).Msg("adaptation data loaded")
	return pairs, nil
}

// parseAdaptationData reads one `key = value` pair per line.
//   - a key or value containing whitespace is enclosed in double quotes, a backslash escapes the next character
//   - everything after the value is ignored and may be used as a comment
//   - a key of "//" is ignored, so `// = ...` lines are comments
//   - if a key appears more than once the last one wins
//
// Values are taken literally, nothing is expanded.
func parseAdaptationData(r io.Reader) (map[string]string, error) {
	pairs := make(map[string]string)
	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		key, rest, err := readToken(line, true)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d key", lineNo)
		}
		if key == commentKey {
			continue
		}

		rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
		if !strings.HasPrefix(rest, "=") {
			return nil, errors.Errorf("line %d: expected '=' after key %q", lineNo, key)
		}

		value, _, err := readToken(strings.TrimLeftFunc(rest[1:], unicode.IsSpace), false)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d value for %q", lineNo, key)
		}
		pairs[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading adaptation data")
	}
	return pairs, nil
}

// readToken splits the leading token off s. A quoted token ends at the closing quote. An unquoted one
// ends at whitespace, or also at '=' when reading a key.
func readToken(s string, key bool) (token, rest string, err error) {
	if s == "" {
		return "", "", errors.New("missing")
	}

	if s[0] != '"' {
		end := strings.IndexFunc(s, func(r rune) bool {
			return unicode.IsSpace(r) || (key && r == '=')
		})
		switch {
		case end < 0:
			return s, "", nil
		case end == 0:
			return "", "", errors.New("missing")
		}
		return s[:end], s[end:], nil
	}

	var b strings.Builder
	for i := 1; i < len(s); i++ {
		switch c := s[i]; {
		case c == '\\' && i+1 < len(s):
			i++
			b.WriteByte(s[i])
		case c == '"':
			return b.String(), s[i+1:], nil
		default:
			b.WriteByte(c)
		}
	}
	return "", "", errors.New("unterminated quote")
}
