package writer

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	appdomain "github.com/ukripo/sisindex/internal/application/domain"
	"github.com/ukripo/sisindex/internal/receiver"
)

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".tiff": true,
}

// applicationDir resolves the local directory holding the application's
// published files.
func (s *Service) applicationDir(app *appdomain.Application) string {
	return receiver.RealFilesPath(s.cfg, app.FilesPath)
}

// censorImage copies the placeholder image over the published mark
// image. Idempotent; a missing original is created from the placeholder.
func (s *Service) censorImage(app *appdomain.Application, fileName string) {
	if fileName == "" || s.cfg.CensoredImagePath == "" {
		return
	}
	target := filepath.Join(s.applicationDir(app), fileName)

	placeholder, err := os.Open(s.cfg.CensoredImagePath)
	if err != nil {
		s.log.Warn("censored placeholder unavailable",
			zap.String("path", s.cfg.CensoredImagePath), zap.Error(err))
		return
	}
	defer placeholder.Close()

	out, err := os.Create(target)
	if err != nil {
		s.log.Warn("censor image failed",
			zap.String("path", target), zap.Error(err))
		return
	}
	defer out.Close()

	if _, err := io.Copy(out, placeholder); err != nil {
		s.log.Warn("censor image failed",
			zap.String("path", target), zap.Error(err))
	}
}

// deleteImages removes every published image from the application
// directory. Idempotent; already-removed files are fine.
func (s *Service) deleteImages(app *appdomain.Application) {
	dir := s.applicationDir(app)
	entries, err := os.ReadDir(dir)
	if err != nil {
		s.log.Warn("read application dir failed",
			zap.String("dir", dir), zap.Error(err))
		return
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !imageExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}
		s.deleteFile(filepath.Join(dir, entry.Name()))
	}
}

func (s *Service) deleteFile(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		s.log.Warn("delete file failed", zap.String("path", path), zap.Error(err))
	}
}
