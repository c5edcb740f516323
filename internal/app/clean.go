package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/vtrg/internal/core/domain"
	"go.trai.ch/zerr"
)

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	All    bool
	Build  bool
	Cache  bool
	Path   string
	DryRun bool
}

func (o CleanOptions) scope() domain.CleanScope {
	if o.All || (!o.Build && !o.Cache) {
		return domain.CleanAll()
	}
	return domain.CleanScope{Build: o.Build, Cache: o.Cache}
}

// Clean removes build state. With opts.Path set only that directory is cleaned;
// otherwise the scope flags select build directories, cache artifacts or both.
// The project root and its source directories are never removed.
func (a *App) Clean(ctx context.Context, opts CleanOptions) (domain.CleanReport, error) {
	if opts.Path != "" && (opts.All || opts.Build || opts.Cache) {
		return domain.CleanReport{DryRun: opts.DryRun}, usageError("--path cannot be combined with --all, --build or --cache")
	}

	layout, err := a.loadLayout()
	if err != nil {
		return domain.CleanReport{DryRun: opts.DryRun}, err
	}
	protected := layout.ProtectedDirs()

	if opts.Path != "" {
		path := a.resolvePath(opts.Path)
		return a.engine.Clean(ctx, domain.CleanRequest{
			Path:      path,
			DryRun:    opts.DryRun,
			Known:     layout.InBuildDir(path),
			Protected: protected,
		})
	}

	plan, err := CleanPlan(layout, opts.scope())
	if err != nil {
		return domain.CleanReport{DryRun: opts.DryRun}, err
	}

	report := domain.CleanReport{DryRun: opts.DryRun}
	if len(plan) == 0 {
		a.logger.Info("nothing to clean")
		return report, nil
	}

	var errs error
	for _, path := range plan {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}

		if info.IsDir() {
			sub, err := a.engine.Clean(ctx, domain.CleanRequest{
				Path:      path,
				DryRun:    opts.DryRun,
				Known:     true,
				Protected: protected,
			})
			report.Removed = append(report.Removed, sub.Removed...)
			report.Commands = append(report.Commands, sub.Commands...)
			errs = errors.Join(errs, err)
			continue
		}

		report.Removed = append(report.Removed, path)
		if opts.DryRun {
			a.logger.Info("would remove " + path)
			continue
		}
		if err := os.Remove(path); err != nil {
			errs = errors.Join(errs, zerr.With(domain.Fail(domain.ErrRemoveFailed, err), "path", path))
			continue
		}
		a.logger.Success("removed " + path)
	}

	if opts.DryRun {
		a.logger.Info(fmt.Sprintf("dry run: %d paths would be removed", len(report.Removed)))
	}
	return report, errs
}

// CleanPlan lists the paths a clean of scope removes, sorted, without nested duplicates.
func CleanPlan(layout domain.Layout, scope domain.CleanScope) ([]string, error) {
	buildDirs := layout.BuildDirs()

	var paths []string
	if scope.Build {
		paths = append(paths, buildDirs...)
	}

	if scope.Cache {
		for _, dir := range buildDirs {
			for _, pattern := range domain.CacheArtifactPatterns {
				matches, err := doublestar.Glob(os.DirFS(dir), pattern)
				if err != nil {
					return nil, zerr.With(zerr.Wrap(err, "invalid cache pattern"), "pattern", pattern)
				}
				for _, m := range matches {
					paths = append(paths, filepath.Join(dir, filepath.FromSlash(m)))
				}
			}
		}
	}

	return outermost(paths), nil
}

// outermost sorts paths and drops every path nested below another entry.
func outermost(paths []string) []string {
	sorted := slices.Clone(paths)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	out := make([]string, 0, len(sorted))
	for _, p := range sorted {
		nested := slices.ContainsFunc(out, func(parent string) bool {
			return domain.IsWithin(parent, p)
		})
		if !nested {
			out = append(out, p)
		}
	}
	return out
}
