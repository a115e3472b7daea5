package youtube

import (
	"strings"

	"github.com/pagemark/pagemark"
)

// ExtractJSONObject returns the JSON object embedded in page text right
// after marker. The object is delimited by scanning forward with brace-depth
// counting, tracking string literals and backslash escapes; greedy or lazy
// regexes are unreliable on nested JSON.
//
// Truncated or malformed input fails cleanly with EEXTRACTION.
func ExtractJSONObject(page, marker string) (string, error) {
	idx := strings.Index(page, marker)
	if idx == -1 {
		return "", pagemark.Errorf(pagemark.EEXTRACTION, "marker %q not found", marker)
	}

	rest := page[idx+len(marker):]
	start := strings.IndexByte(rest, '{')
	if start == -1 || strings.TrimSpace(rest[:start]) != "" {
		return "", pagemark.Errorf(pagemark.EEXTRACTION, "no JSON object after marker %q", marker)
	}

	var (
		depth    int
		inString bool
		escaped  bool
	)

	for i := start; i < len(rest); i++ {
		c := rest[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return rest[start : i+1], nil
			}
		}
	}

	return "", pagemark.Errorf(pagemark.EEXTRACTION, "unterminated JSON object after marker %q", marker)
}
