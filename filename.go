package pagemark

import (
	"regexp"
	"strings"
)

var unsafeFilenameRE = regexp.MustCompile(`[^a-z0-9]`)

// SafeFilename derives an export-safe filename stem from a title:
// lowercase, every character outside [a-z0-9] replaced with an underscore,
// truncated to 50 characters. The extension is the caller's concern.
func SafeFilename(title string) string {
	name := unsafeFilenameRE.ReplaceAllString(strings.ToLower(title), "_")
	if len(name) > 50 {
		name = name[:50]
	}
	return name
}
