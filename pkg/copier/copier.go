// Package copier walks staged source trees and copies each file to the
// destination computed by pkg/rules.
//
// The walk is an explicit worklist rather than recursion. A directory that
// cannot be listed is fatal for its root; every per-file condition (unmapped
// name, existing destination, I/O failure) is logged and the walk continues.
// Existing destination files are never overwritten.
package copier

import (
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/Nusiq/custom-project-filter-src/pkg/errors"
	"github.com/Nusiq/custom-project-filter-src/pkg/logging"
	"github.com/Nusiq/custom-project-filter-src/pkg/rules"
	"github.com/Nusiq/custom-project-filter-src/pkg/types"
)

// Copier copies staged files into the RP/BP trees. The rule set is read-only
// for the duration of a run; the only mutable state is the result being
// accumulated.
type Copier struct {
	fs     types.FS
	rules  rules.Matcher
	logger zerolog.Logger
}

// New creates a Copier that classifies files with the given matcher.
func New(fs types.FS, m rules.Matcher) *Copier {
	return &Copier{
		fs:     fs,
		rules:  m,
		logger: logging.GetLogger("copier"),
	}
}

// CopyTree walks sourceRoot and copies every mapped file to its destination
// resolved under workingDir. The returned Result covers all files visited
// before a fatal directory-read error, if one occurred.
func (c *Copier) CopyTree(sourceRoot, workingDir string) (*Result, error) {
	res := &Result{}
	err := c.walk(sourceRoot, workingDir, res)
	return res, err
}

// CopyTreesByRoots processes each named root under workingDir/dataPath in
// order. A root whose directory tree cannot be read aborts the run; results
// gathered up to that point are still returned.
func (c *Copier) CopyTreesByRoots(workingDir, dataPath string, roots []string) (*Result, error) {
	res := &Result{}
	for _, root := range roots {
		rootDir := filepath.Join(workingDir, dataPath, root)
		c.logger.Info().Str("root", rootDir).Msg("Copying files")
		if err := c.walk(rootDir, workingDir, res); err != nil {
			return res, err
		}
	}
	return res, nil
}

// walk visits every file under sourceRoot depth-first using an explicit
// worklist. Directory depth is shallow in staged projects, but the worklist
// avoids stack growth on adversarial trees.
func (c *Copier) walk(sourceRoot, workingDir string, res *Result) error {
	dirs := []string{sourceRoot}
	for len(dirs) > 0 {
		dir := dirs[len(dirs)-1]
		dirs = dirs[:len(dirs)-1]

		entries, err := c.fs.ReadDir(dir)
		if err != nil {
			return errors.Wrapf(err, errors.ErrDirRead,
				"failed to read directory %q", dir)
		}

		for _, entry := range entries {
			full := filepath.Join(dir, entry.Name())
			if entry.IsDir() {
				dirs = append(dirs, full)
				continue
			}
			c.copyOne(full, sourceRoot, workingDir, res)
		}
	}
	return nil
}

// copyOne classifies and copies a single file. Failures are recorded and
// logged, never returned; a single bad file must not stop the walk.
func (c *Copier) copyOne(source, sourceRoot, workingDir string, res *Result) {
	rel, err := filepath.Rel(sourceRoot, source)
	if err != nil {
		wrapped := errors.Wrapf(err, errors.ErrInternal,
			"failed to relativize %q against %q", source, sourceRoot)
		c.logger.Warn().Err(err).Str("source", source).
			Msg("Unable to compute relative path, skipped")
		res.record(FileResult{Source: source, Outcome: Failed, Err: wrapped})
		return
	}

	target, ok := rules.Classify(rel, c.rules)
	if !ok {
		c.logger.Warn().Str("source", source).
			Msg("Unable to map file to a pack location, skipped")
		res.record(FileResult{Source: source, Outcome: SkippedUnmapped})
		return
	}
	target = filepath.Join(workingDir, target)

	if _, err := c.fs.Stat(target); err == nil {
		c.logger.Warn().Str("source", source).Str("target", target).
			Msg("Target file already exists, skipped")
		res.record(FileResult{Source: source, Target: target, Outcome: SkippedExists})
		return
	}

	if err := c.fs.MkdirAll(filepath.Dir(target), 0755); err != nil {
		wrapped := errors.Wrapf(err, errors.ErrDirCreate,
			"failed to create directory for %q", target)
		c.logger.Warn().Err(err).Str("source", source).Str("target", target).
			Msg("Unable to create target directory, skipped")
		res.record(FileResult{Source: source, Target: target, Outcome: Failed, Err: wrapped})
		return
	}

	data, err := c.fs.ReadFile(source)
	if err == nil {
		err = c.fs.WriteFile(target, data, 0644)
	}
	if err != nil {
		wrapped := errors.Wrapf(err, errors.ErrFileCopy,
			"failed to copy %q to %q", source, target)
		c.logger.Warn().Err(err).Str("source", source).Str("target", target).
			Msg("Unable to copy file")
		res.record(FileResult{Source: source, Target: target, Outcome: Failed, Err: wrapped})
		return
	}

	c.logger.Debug().Str("source", source).Str("target", target).Msg("Copied file")
	res.record(FileResult{Source: source, Target: target, Outcome: Copied})
}
