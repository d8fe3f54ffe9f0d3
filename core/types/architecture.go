package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Selection is the ordered list of vendor names chosen for one category
type Selection struct {
	Category Category `json:"category"`
	Vendors  []string `json:"vendors"`
}

// Architecture maps categories to chosen vendor names.
// Category order is the order the recommendation produced them in.
type Architecture struct {
	Business   string
	Selections []Selection
}

// NewArchitecture builds an architecture from a plain map. Categories are sorted
// by name because map order carries no meaning.
func NewArchitecture(business string, m map[Category][]string) Architecture {
	keys := make([]Category, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	a := Architecture{Business: business}
	for _, k := range keys {
		a.Add(k, m[k]...)
	}
	return a
}

// Add appends vendors to a category, creating it if needed
func (a *Architecture) Add(category Category, vendors ...string) {
	for i := range a.Selections {
		if a.Selections[i].Category == category {
			a.Selections[i].Vendors = append(a.Selections[i].Vendors, vendors...)
			return
		}
	}
	a.Selections = append(a.Selections, Selection{
		Category: category,
		Vendors:  append([]string(nil), vendors...),
	})
}

// Vendors returns the vendor names for a category, nil when absent
func (a Architecture) Vendors(category Category) []string {
	for _, s := range a.Selections {
		if s.Category == category {
			return s.Vendors
		}
	}
	return nil
}

// VendorNames flattens all vendor names, first occurrence wins
func (a Architecture) VendorNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, s := range a.Selections {
		for _, name := range s.Vendors {
			if seen[name] {
				continue
			}
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

// IsEmpty reports whether no vendor was selected
func (a Architecture) IsEmpty() bool {
	for _, s := range a.Selections {
		if len(s.Vendors) > 0 {
			return false
		}
	}
	return true
}

// UnmarshalJSON decodes {"business": "...", "<category>": ["vendor", ...]} keeping key order.
// Values that are not lists are ignored, as are non-string list entries.
func (a *Architecture) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("architecture must be a JSON object")
	}

	*a = Architecture{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}

		if key == "business" {
			if err := json.Unmarshal(raw, &a.Business); err != nil {
				return fmt.Errorf("business must be a string: %w", err)
			}
			continue
		}

		var items []interface{}
		if err := json.Unmarshal(raw, &items); err != nil {
			continue
		}
		var vendors []string
		for _, item := range items {
			if name, ok := item.(string); ok {
				vendors = append(vendors, name)
			}
		}
		a.Add(Category(key), vendors...)
	}

	_, err = dec.Token()
	return err
}

// MarshalJSON encodes the architecture as a flat object in category order
func (a Architecture) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	first := true
	writeField := func(key string, value interface{}) error {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		k, _ := json.Marshal(key)
		v, err := json.Marshal(value)
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
		return nil
	}

	if a.Business != "" {
		if err := writeField("business", a.Business); err != nil {
			return nil, err
		}
	}
	for _, s := range a.Selections {
		vendors := s.Vendors
		if vendors == nil {
			vendors = []string{}
		}
		if err := writeField(string(s.Category), vendors); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalYAML decodes the same shape from a YAML mapping, keeping key order
func (a *Architecture) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("architecture must be a mapping")
	}

	*a = Architecture{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		value := node.Content[i+1]

		if key == "business" {
			if value.Kind != yaml.ScalarNode {
				return fmt.Errorf("business must be a string, line %d", value.Line)
			}
			a.Business = value.Value
			continue
		}
		if value.Kind != yaml.SequenceNode {
			continue
		}

		var vendors []string
		for _, item := range value.Content {
			if item.Kind == yaml.ScalarNode && item.ShortTag() == "!!str" {
				vendors = append(vendors, item.Value)
			}
		}
		a.Add(Category(key), vendors...)
	}
	return nil
}
