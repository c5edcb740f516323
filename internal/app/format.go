package app

import (
	"context"
	"fmt"
	"path/filepath"

	"go.trai.ch/vtrg/internal/core/domain"
	"go.trai.ch/zerr"
)

// FormatOptions configuration for the Format method.
// Nil Extensions or Exclude fall back to the format settings.
type FormatOptions struct {
	Path       string
	Check      bool
	Extensions []string
	Exclude    []string
}

// Format runs the external formatter over the sources below opts.Path.
func (a *App) Format(ctx context.Context, opts FormatOptions) (domain.FormatReport, error) {
	path := opts.Path
	if path == "" {
		path = "."
	}
	path = a.resolvePath(path)
	root, err := filepath.Abs(path)
	if err != nil {
		return domain.FormatReport{}, zerr.With(zerr.Wrap(err, "failed to resolve format path"), "path", path)
	}

	extensions := opts.Extensions
	if extensions == nil {
		extensions = a.stringsSetting(domain.SettingFormatExtensions)
	}
	exclude := opts.Exclude
	if exclude == nil {
		exclude = a.stringsSetting(domain.SettingFormatExclude)
	}

	a.logger.Debug(fmt.Sprintf("formatting %s (extensions %v, exclude %v)", root, extensions, exclude))

	report, err := a.formatter.Format(ctx, domain.FormatRequest{
		Root:       root,
		Check:      opts.Check,
		Extensions: extensions,
		Exclude:    exclude,
	})
	if err != nil {
		return report, err
	}

	switch {
	case len(report.Files) == 0:
	case opts.Check:
		a.logger.Success(fmt.Sprintf("%d files are correctly formatted", len(report.Files)))
	default:
		a.logger.Success(fmt.Sprintf("formatted %d files", len(report.Files)))
	}
	return report, nil
}
