package tier

import (
	"strings"

	"mach-cost/core/types"
)

// SizeMatcher decides whether a tier is intended for a business size.
// It is the first-pass signal of tier selection.
type SizeMatcher interface {
	Matches(tier *types.PricingTier, size types.BusinessSize) bool
}

// SizeMatcherFunc adapts a function to SizeMatcher
type SizeMatcherFunc func(tier *types.PricingTier, size types.BusinessSize) bool

// Matches implements SizeMatcher
func (f SizeMatcherFunc) Matches(tier *types.PricingTier, size types.BusinessSize) bool {
	return f(tier, size)
}

// DefaultKeywords maps sizes to the tier-name fragments that suggest them
var DefaultKeywords = map[types.BusinessSize][]string{
	types.SizeStartup:    {"startup", "smb", "small"},
	types.SizeSMB:        {"smb", "growth", "medium"},
	types.SizeEnterprise: {"enterprise", "large"},
}

// KeywordMatcher matches case-folded tier names against size keywords
type KeywordMatcher struct {
	Keywords map[types.BusinessSize][]string
}

// NewKeywordMatcher creates a matcher with DefaultKeywords
func NewKeywordMatcher() *KeywordMatcher {
	return &KeywordMatcher{Keywords: DefaultKeywords}
}

// Matches implements SizeMatcher
func (m *KeywordMatcher) Matches(tier *types.PricingTier, size types.BusinessSize) bool {
	name := strings.ToLower(tier.Name)
	for _, kw := range m.Keywords[size] {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}

// MetadataMatcher uses the structured TargetSizes of a tier
type MetadataMatcher struct{}

// Matches implements SizeMatcher
func (MetadataMatcher) Matches(tier *types.PricingTier, size types.BusinessSize) bool {
	for _, s := range tier.TargetSizes {
		if s == size {
			return true
		}
	}
	return false
}

// FirstOf returns a matcher that matches when any of the given matchers does
func FirstOf(matchers ...SizeMatcher) SizeMatcher {
	return SizeMatcherFunc(func(tier *types.PricingTier, size types.BusinessSize) bool {
		for _, m := range matchers {
			if m.Matches(tier, size) {
				return true
			}
		}
		return false
	})
}

// DefaultMatcher prefers structured metadata and falls back to tier names
func DefaultMatcher() SizeMatcher {
	return FirstOf(MetadataMatcher{}, NewKeywordMatcher())
}
