package scanner

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/config"
	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/models"
)

func (s *Scanner) walkFiles() {
	defer close(s.jobs)

	err := filepath.WalkDir(s.cfg.RootPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			log.Printf("Error accessing path %s: %v", path, err)
			return nil // Continue walking
		}

		if d.IsDir() {
			if path != s.cfg.RootPath && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !s.factory.IsSupported(ext) {
			return nil
		}

		if s.cfg.FastMode {
			info, err := d.Info()
			if err == nil && info.Size() > config.FastModeMaxBytes {
				return nil
			}
		}

		select {
		case <-s.ctx.Done():
			return filepath.SkipAll
		case s.jobs <- models.Job{FilePath: path}:
		}
		return nil
	})

	if err != nil {
		log.Printf("Error walking directory: %v", err)
	}
}
