// Package rules implements the path classification core of the filter.
//
// A staged file's destination inside the RP/BP trees is derived purely from
// its file name. Two matcher variants exist: SuffixIndex matches arbitrary
// suffix tokens with an "ends-with" test (used with user-supplied rule sets),
// and ExtensionTable looks up a derived extension in an exact table (used
// with the built-in mapping). Classify combines either matcher with the
// bare-file naming convention and produces the destination path.
package rules
