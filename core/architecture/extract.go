// Package architecture pulls the recommended architecture out of an assistant reply.
// The recommendation itself is produced upstream; this package only locates and
// decodes the JSON block the assistant is instructed to emit.
package architecture

import (
	"encoding/json"
	"regexp"
	"strings"

	"mach-cost/core/types"
	"mach-cost/internal/errors"
)

var (
	// labelledBlock is the exact format requested from the assistant
	labelledBlock = regexp.MustCompile("\\*\\*ARCHITECTURE JSON:\\*\\*\\s*```json\\s*([\\s\\S]*?)\\s*```")

	fallbackPatterns = []*regexp.Regexp{
		regexp.MustCompile("```json\\s*([\\s\\S]*?)\\s*```"),
		regexp.MustCompile("```\\s*json\\s*([\\s\\S]*?)\\s*```"),
		regexp.MustCompile(`\{[\s\S]*"business"[\s\S]*\}`),
	}
)

// Extract finds and decodes the architecture in a message
func Extract(message string) (*types.Architecture, error) {
	if m := labelledBlock.FindStringSubmatch(message); m != nil {
		return decode(strings.TrimSpace(m[1]))
	}

	for _, pattern := range fallbackPatterns {
		m := pattern.FindStringSubmatch(message)
		if m == nil {
			continue
		}
		candidate := m[0]
		if len(m) > 1 {
			candidate = m[1]
		}
		candidate = trimToObject(candidate)
		if strings.HasPrefix(candidate, "{") && strings.Contains(candidate, `"business"`) {
			return decode(candidate)
		}
	}

	return nil, errors.New(errors.TypeNotFound, "no architecture JSON found in message")
}

// trimToObject drops anything before the first '{' and after the last '}'
func trimToObject(s string) string {
	s = strings.TrimSpace(s)
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end < start {
		return ""
	}
	return s[start : end+1]
}

func decode(raw string) (*types.Architecture, error) {
	var a types.Architecture
	if err := json.Unmarshal([]byte(raw), &a); err != nil {
		return nil, errors.Parsing("malformed architecture JSON", err)
	}
	return &a, nil
}
