// Package pagemark converts web resources into normalized Markdown documents.
// It classifies a submitted URL as either a generic article page or a YouTube
// video page, acquires the raw content through a relay (proxy) channel,
// extracts the main article or the timed transcript, and renders the result
// as Markdown with a YAML frontmatter header.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., readability/, etree/, sqlite/).
package pagemark
