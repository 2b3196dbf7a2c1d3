// Package redact removes sensitive fragments from strings before they are
// logged. Upstream transport errors embed the full request URL, so anything
// that looks like a credential in a URL, a query parameter or a header is
// replaced; host names and paths are kept because they are needed to diagnose
// upstream failures.
package redact

import "regexp"

// Placeholders substituted for redacted fragments.
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedStackTracePlaceholder = "[STACK_TRACE_REDACTED]"
)

type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// rules are applied in order. Replacements may reference capture groups.
var rules = []rule{
	// user:password@ in URLs
	{
		pattern:     regexp.MustCompile(`([a-zA-Z][a-zA-Z0-9+.-]*://)[^/@\s"]+@`),
		replacement: "${1}" + RedactedCredentialPlaceholder + "@",
	},
	// Authorization: Bearer xyz / Basic xyz
	{
		pattern:     regexp.MustCompile(`(?i)\b(bearer|basic)\s+[A-Za-z0-9_\-.~+/=]{8,}`),
		replacement: "${1} " + RedactedKeyPlaceholder,
	},
	// ?api_key=..., &token=..., secret: ...
	{
		pattern:     regexp.MustCompile(`(?i)\b(api[_-]?key|access[_-]?token|token|secret|password|passwd|pwd)(["']?\s*[=:]\s*["']?)[^"'&\s]{3,}`),
		replacement: "${1}${2}" + RedactedKeyPlaceholder,
	},
	// goroutine dumps and panic traces
	{
		pattern:     regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`),
		replacement: RedactedStackTracePlaceholder,
	},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.replacement)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
