package rules

// Rule pairs a file-name suffix token with the pack directory it maps to.
type Rule struct {
	Suffix string // Non-empty token matched against the end of a file name
	Target string // Destination template, authored with '/' separators
}

// Matcher selects the rule, if any, that applies to a file name.
type Matcher interface {
	Match(fileName string) (Rule, bool)
}
