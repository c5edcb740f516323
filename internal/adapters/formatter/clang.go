// Package formatter wraps clang-format as the source formatter.
package formatter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/vtrg/internal/core/domain"
	"go.trai.ch/vtrg/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultExecutable is the formatter binary looked up on PATH.
const DefaultExecutable = "clang-format"

// ClangFormat implements ports.Formatter.
type ClangFormat struct {
	runner     ports.ProcessRunner
	logger     ports.Logger
	executable string
}

// NewClangFormat creates a formatter that runs clang-format through runner.
func NewClangFormat(runner ports.ProcessRunner, logger ports.Logger) *ClangFormat {
	return &ClangFormat{
		runner:     runner,
		logger:     logger,
		executable: DefaultExecutable,
	}
}

// Format runs clang-format with the repository's .clang-format style on every
// matching file below req.Root. In check mode files are left untouched and the
// ones that would change are reported.
func (f *ClangFormat) Format(ctx context.Context, req domain.FormatRequest) (domain.FormatReport, error) {
	var report domain.FormatReport

	if _, err := f.runner.LookPath(f.executable); err != nil {
		return report, zerr.With(domain.Fail(domain.ErrDependencyMissing, err), "executable", f.executable)
	}

	files, err := CollectSources(req)
	if err != nil {
		return report, err
	}
	report.Files = files

	if len(files) == 0 {
		f.logger.Warn(fmt.Sprintf("no files with extensions %s found in %s", strings.Join(req.Extensions, ", "), req.Root))
		return report, nil
	}

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		args := []string{"--style=file", "-i", file}
		if req.Check {
			args = []string{"--style=file", "--dry-run", "--Werror", file}
		}

		outcome, err := f.runner.Run(domain.ProcessSpec{
			Executable: f.executable,
			Args:       args,
			Dir:        req.Root,
		})
		if err != nil {
			return report, err
		}

		if outcome.Succeeded() {
			f.logger.Debug("formatted " + file)
			continue
		}

		if req.Check {
			report.Unformatted = append(report.Unformatted, file)
			f.logger.Warn("needs formatting: " + file)
			continue
		}

		return report, zerr.With(
			domain.Fail(domain.ErrFormatFailed, errors.New(outcome.Diagnostics())),
			"file", file,
		)
	}

	if len(report.Unformatted) > 0 {
		return report, zerr.With(domain.Fail(domain.ErrFormatCheckFailed, nil), "count", len(report.Unformatted))
	}
	return report, nil
}

// CollectSources returns the slash-separated paths, relative to req.Root, of
// files with one of req.Extensions that no exclude pattern matches.
func CollectSources(req domain.FormatRequest) ([]string, error) {
	pattern, ok := sourcePattern(req.Extensions)
	if !ok {
		return nil, nil
	}

	excludes := make([]string, 0, len(req.Exclude))
	for _, p := range req.Exclude {
		p = filepath.ToSlash(strings.TrimPrefix(p, "./"))
		if strings.HasSuffix(p, "/") {
			p += "**"
		}
		if !doublestar.ValidatePattern(p) {
			return nil, zerr.With(zerr.New("invalid exclude pattern"), "pattern", p)
		}
		excludes = append(excludes, p)
	}

	var files []string
	err := doublestar.GlobWalk(os.DirFS(req.Root), pattern, func(path string, d fs.DirEntry) error {
		if d.IsDir() || isExcluded(path, excludes) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to collect sources"), "root", req.Root)
	}

	slices.Sort(files)
	return files, nil
}

// sourcePattern builds "**/*.{cpp,h}" from the extensions.
func sourcePattern(extensions []string) (string, bool) {
	cleaned := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
		if ext != "" {
			cleaned = append(cleaned, ext)
		}
	}

	switch len(cleaned) {
	case 0:
		return "", false
	case 1:
		return "**/*." + cleaned[0], true
	default:
		return "**/*.{" + strings.Join(cleaned, ",") + "}", true
	}
}

// isExcluded matches path against each pattern, also treating a pattern as a
// directory prefix so "External" excludes everything below it.
func isExcluded(path string, patterns []string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, path); ok {
			return true
		}
		if ok, _ := doublestar.Match(p+"/**", path); ok {
			return true
		}
	}
	return false
}

var _ ports.Formatter = (*ClangFormat)(nil)
