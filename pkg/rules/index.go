package rules

import (
	"sort"
	"strings"
)

// SuffixIndex matches file names with a plain "ends-with" test against
// arbitrary suffix tokens. When several tokens match the same file name the
// longest one wins; equal-length tokens are ordered lexicographically so the
// result never depends on map iteration order.
type SuffixIndex struct {
	rules []Rule
}

// NewSuffixIndex builds a SuffixIndex from a suffix to target mapping.
// Empty suffix tokens are dropped.
func NewSuffixIndex(mapping map[string]string) *SuffixIndex {
	rules := make([]Rule, 0, len(mapping))
	for suffix, target := range mapping {
		if suffix == "" {
			continue
		}
		rules = append(rules, Rule{Suffix: suffix, Target: target})
	}
	sort.Slice(rules, func(i, j int) bool {
		if len(rules[i].Suffix) != len(rules[j].Suffix) {
			return len(rules[i].Suffix) > len(rules[j].Suffix)
		}
		return rules[i].Suffix < rules[j].Suffix
	})
	return &SuffixIndex{rules: rules}
}

// Match returns the longest suffix token that the file name ends with.
func (x *SuffixIndex) Match(fileName string) (Rule, bool) {
	for _, r := range x.rules {
		if strings.HasSuffix(fileName, r.Suffix) {
			return r, true
		}
	}
	return Rule{}, false
}

// ExtensionTable matches file names by deriving an extension and looking it
// up in an exact table. Unlike SuffixIndex there is no ends-with matching, so
// ambiguity between tokens like "json" and "rc.json" cannot arise.
type ExtensionTable struct {
	rules map[string]Rule
}

// NewExtensionTable builds an ExtensionTable from an extension to target
// mapping. Empty extension keys are dropped.
func NewExtensionTable(mapping map[string]string) *ExtensionTable {
	rules := make(map[string]Rule, len(mapping))
	for ext, target := range mapping {
		if ext == "" {
			continue
		}
		rules[ext] = Rule{Suffix: ext, Target: target}
	}
	return &ExtensionTable{rules: rules}
}

// Match derives the file's extension and looks it up in the table.
func (x *ExtensionTable) Match(fileName string) (Rule, bool) {
	r, ok := x.rules[DeriveExtension(fileName)]
	return r, ok
}

// DeriveExtension extracts the extension used for classification. The file
// name is split on '.'; when the last segment is "json" the extension is the
// last two segments joined ("rc.json"), otherwise the last segment alone. A
// name without dots is returned whole, which is what makes bare files like
// "lang" resolve against the table.
func DeriveExtension(fileName string) string {
	parts := strings.Split(fileName, ".")
	last := parts[len(parts)-1]
	if last == "json" && len(parts) >= 2 {
		return parts[len(parts)-2] + ".json"
	}
	return last
}
