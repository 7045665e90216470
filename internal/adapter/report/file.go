package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// FileDownloader writes reports into a directory on disk.
type FileDownloader struct {
	dir    string
	logger zerolog.Logger
}

// NewFileDownloader creates a FileDownloader rooted at dir.
func NewFileDownloader(dir string, logger zerolog.Logger) *FileDownloader {
	return &FileDownloader{dir: dir, logger: logger}
}

// Download writes content to dir/fileName, replacing any earlier report.
func (d *FileDownloader) Download(ctx context.Context, fileName string, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}

	path := filepath.Join(d.dir, filepath.Base(fileName))
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	d.logger.Info().Str("path", path).Int("bytes", len(content)).Msg("error report written")
	return nil
}

// Path returns where a report named fileName is written.
func (d *FileDownloader) Path(fileName string) string {
	return filepath.Join(d.dir, filepath.Base(fileName))
}
