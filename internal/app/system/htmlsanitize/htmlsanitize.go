// Package htmlsanitize strips unsafe markup from user-supplied text before
// it is stored or rendered.
//
// Text covers plain free-text values (skill strings, display names): any
// markup at all is removed. Sanitize keeps a safe UGC subset and exists for
// fields that legitimately carry formatting.
package htmlsanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	ugcPolicy    = bluemonday.UGCPolicy()
	strictPolicy = bluemonday.StrictPolicy()
)

// Sanitize keeps a safe subset of user-generated HTML (bold, links, lists)
// while removing scripts, event handlers, and javascript: URLs.
func Sanitize(s string) string {
	return ugcPolicy.Sanitize(s)
}

// Text strips all markup, leaving trimmed plain text. Used for values that
// must never carry HTML, like skill strings and names.
func Text(s string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}
