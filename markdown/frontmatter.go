package markdown

import (
	"strings"

	"github.com/pagemark/pagemark"
	"gopkg.in/yaml.v3"
)

// Frontmatter is the metadata block prefixed to every rendered document.
type Frontmatter struct {
	Title   string `yaml:"title"`
	Source  string `yaml:"source"`
	Author  string `yaml:"author,omitempty"`
	VideoID string `yaml:"video_id,omitempty"`
	Date    string `yaml:"date"`
}

// ParseFrontmatter reads the leading frontmatter block of a rendered
// document and returns it together with the body that follows.
func ParseFrontmatter(markdown string) (*Frontmatter, string, error) {
	const delim = "---\n"

	if !strings.HasPrefix(markdown, delim) {
		return nil, "", pagemark.Errorf(pagemark.EINVALID, "document does not begin with a frontmatter block")
	}

	rest := markdown[len(delim):]
	end := strings.Index(rest, "\n"+delim)
	if end == -1 {
		return nil, "", pagemark.Errorf(pagemark.EINVALID, "unterminated frontmatter block")
	}

	var fm Frontmatter
	if err := yaml.Unmarshal([]byte(rest[:end]), &fm); err != nil {
		return nil, "", pagemark.Errorf(pagemark.EINVALID, "malformed frontmatter: %v", err)
	}

	body := strings.TrimPrefix(rest[end+len(delim):], "\n")
	body = strings.TrimPrefix(body, "\n")

	return &fm, body, nil
}
