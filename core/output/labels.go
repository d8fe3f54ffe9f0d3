package output

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"mach-cost/core/types"
)

var (
	titleCaser = cases.Title(language.English)

	acronyms = map[string]string{
		"pim": "PIM",
		"cms": "CMS",
		"erp": "ERP",
	}
)

// CategoryLabel renders a category as a display name, e.g. "Commerce Engine"
func CategoryLabel(c types.Category) string {
	words := strings.Split(string(c), "_")
	for i, w := range words {
		if a, ok := acronyms[w]; ok {
			words[i] = a
			continue
		}
		words[i] = titleCaser.String(w)
	}
	return strings.Join(words, " ")
}
