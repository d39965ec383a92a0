// Test Type: Unit Test
// Description: Tests for the rules package - pure path classification

package rules_test

import (
	"path/filepath"
	"testing"

	"github.com/Nusiq/custom-project-filter-src/pkg/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_SuffixIndex(t *testing.T) {
	tests := []struct {
		name       string
		relPath    string
		mapping    map[string]string
		wantTarget string
		wantOK     bool
	}{
		{
			name:       "plain_file_keeps_directory",
			relPath:    "mobs/zombie.bpe.json",
			mapping:    map[string]string{"bpe.json": "BP/entities"},
			wantTarget: "BP/entities/mobs/zombie.bpe.json",
			wantOK:     true,
		},
		{
			name:       "file_at_root",
			relPath:    "en_US.lang",
			mapping:    map[string]string{"lang": "RP/texts"},
			wantTarget: "RP/texts/en_US.lang",
			wantOK:     true,
		},
		{
			name:       "longest_suffix_wins",
			relPath:    "foo/bar.rc.json",
			mapping:    map[string]string{"json": "RP/x", "rc.json": "RP/render_controllers"},
			wantTarget: "RP/render_controllers/foo/bar.rc.json",
			wantOK:     true,
		},
		{
			name:       "bare_file_underscore_form",
			relPath:    "entities/_bpe.json",
			mapping:    map[string]string{"bpe.json": "BP/entities"},
			wantTarget: "BP/entities/entities.bpe.json",
			wantOK:     true,
		},
		{
			name:       "bare_file_underscore_dot_form",
			relPath:    "entities/_.bpe.json",
			mapping:    map[string]string{"bpe.json": "BP/entities"},
			wantTarget: "BP/entities/entities.bpe.json",
			wantOK:     true,
		},
		{
			name:       "bare_file_exact_suffix",
			relPath:    "zombie/bpe.json",
			mapping:    map[string]string{"bpe.json": "BP/entities"},
			wantTarget: "BP/entities/zombie.bpe.json",
			wantOK:     true,
		},
		{
			name:       "bare_file_keeps_grandparent_directory",
			relPath:    "mobs/zombie/_bpe.json",
			mapping:    map[string]string{"bpe.json": "BP/entities"},
			wantTarget: "BP/entities/mobs/zombie.bpe.json",
			wantOK:     true,
		},
		{
			name:       "bare_file_with_dotted_suffix_token",
			relPath:    "zombie/_.bpe.json",
			mapping:    map[string]string{".bpe.json": "BP/entities"},
			wantTarget: "BP/entities/zombie.bpe.json",
			wantOK:     true,
		},
		{
			name:    "bare_file_at_root_has_no_parent_name",
			relPath: "_bpe.json",
			mapping: map[string]string{"bpe.json": "BP/entities"},
			wantOK:  false,
		},
		{
			name:    "unmapped_file",
			relPath: "readme.txt",
			mapping: map[string]string{"lang": "RP/texts"},
			wantOK:  false,
		},
		{
			name:    "empty_path",
			relPath: "",
			mapping: map[string]string{"lang": "RP/texts"},
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index := rules.NewSuffixIndex(tt.mapping)
			target, ok := rules.Classify(tt.relPath, index)

			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, filepath.FromSlash(tt.wantTarget), target)
			}
		})
	}
}

func TestClassify_IsDeterministic(t *testing.T) {
	// "json" and "rc.json" both end-match "bar.rc.json"; the longest token
	// must win on every call regardless of map iteration order.
	mapping := map[string]string{
		"json":    "RP/x",
		"rc.json": "RP/render_controllers",
	}

	want := filepath.FromSlash("RP/render_controllers/foo/bar.rc.json")
	for i := 0; i < 100; i++ {
		index := rules.NewSuffixIndex(mapping)
		target, ok := rules.Classify("foo/bar.rc.json", index)
		require.True(t, ok)
		require.Equal(t, want, target)
	}
}

func TestClassify_VariantsAgree(t *testing.T) {
	// For file names whose derived extension equals the suffix token, the
	// suffix and extension matchers must classify identically.
	mapping := map[string]string{
		"bpe.json": "BP/entities",
		"geo.json": "RP/models/entity",
		"lang":     "RP/texts",
	}
	suffix := rules.NewSuffixIndex(mapping)
	table := rules.NewExtensionTable(mapping)

	paths := []string{
		"mobs/zombie.bpe.json",
		"models/foo.geo.json",
		"texts/en_US.lang",
		"entities/_.bpe.json",
		"zombie/bpe.json",
		"readme.txt",
	}
	for _, p := range paths {
		suffixTarget, suffixOK := rules.Classify(p, suffix)
		tableTarget, tableOK := rules.Classify(p, table)
		assert.Equal(t, suffixOK, tableOK, "path %q", p)
		assert.Equal(t, suffixTarget, tableTarget, "path %q", p)
	}
}

func TestClassify_NormalizesSeparators(t *testing.T) {
	index := rules.NewSuffixIndex(map[string]string{"png": "RP/textures"})

	target, ok := rules.Classify("blocks/stone.png", index)
	require.True(t, ok)
	assert.Equal(t, filepath.Join("RP", "textures", "blocks", "stone.png"), target)
}
