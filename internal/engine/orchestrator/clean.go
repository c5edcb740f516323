package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/vtrg/internal/core/domain"
	"go.trai.ch/zerr"
)

// Clean removes the build directory at req.Path. When the directory holds a
// Makefile, "make clean" runs first; its failure is reported and removal continues.
// A missing path is not an error. Protected directories and their parents are
// refused, as is a directory that neither the layout nor a build marker
// identifies as a build directory. With req.DryRun set nothing is spawned or
// removed and the report lists what a real run would do.
func (o *Orchestrator) Clean(_ context.Context, req domain.CleanRequest) (domain.CleanReport, error) {
	path := req.Path
	report := domain.CleanReport{DryRun: req.DryRun}

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		o.logger.Warn(fmt.Sprintf("%s does not exist, nothing to clean", path))
		return report, nil
	}
	if err != nil {
		return report, zerr.With(domain.Fail(domain.ErrRemoveFailed, err), "path", path)
	}
	if !info.IsDir() {
		return report, zerr.With(domain.Fail(domain.ErrNotADirectory, nil), "path", path)
	}
	if err := checkRemovable(req); err != nil {
		return report, err
	}

	if hasFile(path, domain.MakefileName) {
		report.Commands = append(report.Commands, CompileExecutable+" clean")
		if req.DryRun {
			o.logger.Info(fmt.Sprintf("would run %s clean in %s", CompileExecutable, path))
		} else {
			o.driverClean(path)
		}
	}

	report.Removed = append(report.Removed, path)
	if req.DryRun {
		o.logger.Info("would remove " + path)
		return report, nil
	}

	if err := os.RemoveAll(path); err != nil {
		return report, zerr.With(domain.Fail(domain.ErrRemoveFailed, err), "path", path)
	}
	o.logger.Success("removed " + path)
	return report, nil
}

func checkRemovable(req domain.CleanRequest) error {
	abs, err := filepath.Abs(req.Path)
	if err != nil {
		return zerr.With(domain.Fail(domain.ErrRemoveFailed, err), "path", req.Path)
	}

	for _, dir := range req.Protected {
		protected, err := filepath.Abs(dir)
		if err != nil {
			continue
		}
		if domain.IsWithin(abs, protected) {
			return zerr.With(zerr.With(domain.Fail(domain.ErrProtectedPath, nil), "path", req.Path), "protected", protected)
		}
	}

	if req.Known || slices.ContainsFunc(domain.BuildMarkers, func(name string) bool {
		return hasFile(abs, name)
	}) {
		return nil
	}
	return zerr.With(domain.Fail(domain.ErrNotBuildDir, nil), "path", req.Path)
}

func hasFile(dir, name string) bool {
	info, err := os.Stat(filepath.Join(dir, name))
	return err == nil && !info.IsDir()
}

func (o *Orchestrator) driverClean(dir string) {
	spec := domain.ProcessSpec{Executable: CompileExecutable, Args: []string{"clean"}, Dir: dir}
	outcome, err := o.runner.Run(spec)
	switch {
	case err != nil:
		o.logger.Error(zerr.With(domain.Fail(domain.ErrCleanFailed, err), "path", dir))
	case !outcome.Succeeded():
		o.logger.Error(zerr.With(processFailure(domain.ErrCleanFailed, spec, outcome), "path", dir))
	default:
		o.logger.Debug(fmt.Sprintf("%s clean succeeded in %s", CompileExecutable, dir))
	}
}
