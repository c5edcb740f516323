package orchestrator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/otiai10/copy"
	"go.trai.ch/vtrg/internal/core/domain"
	"go.trai.ch/vtrg/internal/core/ports"
	"go.trai.ch/zerr"
)

// headerExtensions are the files collected into the public include directory.
var headerExtensions = map[string]bool{
	".h":   true,
	".hpp": true,
}

// copyResources copies every resource directory of layout into outputDir.
// A missing resource directory is logged and skipped.
func copyResources(layout domain.Layout, outputDir string, logger ports.Logger) (int, error) {
	copied := 0
	for _, dir := range layout.ResourceDirs {
		src := filepath.Join(layout.ResourceRoot(), dir)
		info, err := os.Stat(src)
		if err != nil || !info.IsDir() {
			logger.Warn(fmt.Sprintf("resource directory %s not found, skipping", src))
			continue
		}

		dest := filepath.Join(outputDir, dir)
		if err := copy.Copy(src, dest); err != nil {
			return copied, zerr.With(domain.Fail(domain.ErrResourceCopyFailed, err), "path", src)
		}
		logger.Debug(fmt.Sprintf("copied %s to %s", src, dest))
		copied++
	}
	return copied, nil
}

// collectHeaders mirrors the header files below sourceDir into includeDir.
func collectHeaders(sourceDir, includeDir string) error {
	err := copy.Copy(sourceDir, includeDir, copy.Options{
		Skip: func(info os.FileInfo, src, _ string) (bool, error) {
			if info.IsDir() {
				return false, nil
			}
			return !headerExtensions[filepath.Ext(src)], nil
		},
	})
	if err != nil {
		return zerr.With(domain.Fail(domain.ErrResourceCopyFailed, err), "path", includeDir)
	}
	return nil
}
