package rules

import (
	"path"
	"path/filepath"
	"strings"
)

// Classify computes the destination of a staged file from its path relative
// to a source root. It is a pure function: no I/O, no hidden state. The
// second return value is false when the file cannot be mapped, which the
// caller reports as a skip rather than an error.
//
// Destination templates use '/' as a virtual separator; the returned path
// uses the platform's native separators.
func Classify(relPath string, m Matcher) (string, bool) {
	rel := path.Clean(filepath.ToSlash(relPath))
	if rel == "." || rel == "/" || rel == "" {
		return "", false
	}

	name := path.Base(rel)
	rule, ok := m.Match(name)
	if !ok {
		return "", false
	}

	// A file named only after its suffix (optionally underscore-prefixed)
	// inherits its parent directory's name and is placed one level up.
	var baseName, baseDir string
	if isBareName(name, rule.Suffix) {
		parent := path.Dir(rel)
		if parent == "." || parent == "/" {
			return "", false
		}
		baseName = joinSuffix(path.Base(parent), rule.Suffix)
		baseDir = path.Dir(parent)
	} else {
		baseName = name
		baseDir = path.Dir(rel)
	}

	target := rule.Target
	if baseDir != "." && baseDir != "/" {
		target = path.Join(target, baseDir)
	}
	target = path.Join(target, baseName)
	return filepath.FromSlash(target), true
}

// isBareName reports whether the file name consists only of the matched
// suffix token. Both underscore conventions are recognized: "_bpe.json" and
// "_.bpe.json" for the token "bpe.json".
func isBareName(name, suffix string) bool {
	if name == suffix || name == "_"+suffix {
		return true
	}
	return !strings.HasPrefix(suffix, ".") && name == "_."+suffix
}

// joinSuffix builds the effective base name of a bare file from its parent
// directory name. A separating '.' is inserted unless the token already
// carries one, so "entities" + "bpe.json" becomes "entities.bpe.json".
func joinSuffix(parentName, suffix string) string {
	if strings.HasPrefix(suffix, ".") {
		return parentName + suffix
	}
	return parentName + "." + suffix
}
