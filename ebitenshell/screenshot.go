package ebitenshell

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// screenshots collects labels during Update and writes one PNG per label at
// the end of the next Draw.
type screenshots struct {
	dir   string
	queue []string
	log   zerolog.Logger
	now   func() time.Time
}

func (s *screenshots) request(label string) {
	s.queue = append(s.queue, label)
}

func (s *screenshots) flush(screen *ebiten.Image) {
	if len(s.queue) == 0 {
		return
	}
	defer func() { s.queue = s.queue[:0] }()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		s.log.Error().Err(err).Str("dir", s.dir).Msg("screenshot dir")
		return
	}

	frame := capture(screen)
	stamp := s.now().Format("20060102_150405")
	for _, label := range s.queue {
		path := s.path(stamp, label)
		if err := save(path, frame); err != nil {
			s.log.Error().Err(err).Msg("screenshot")
			continue
		}
		s.log.Info().Str("path", path).Msg("screenshot saved")
	}
}

// capture copies the screen into an image.RGBA. Both use premultiplied
// alpha, so the pixels go in unchanged and png.Encode straightens them.
func capture(screen *ebiten.Image) *image.RGBA {
	b := screen.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	screen.ReadPixels(img.Pix)
	return img
}

var unsafeLabel = regexp.MustCompile(`[^A-Za-z0-9.-]`)

// path names the file for label under s.dir as <stamp>_<label>.png. Anything
// but letters, digits, '-' and '.' becomes '_'.
func (s *screenshots) path(stamp, label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		label = "unlabeled"
	}
	return filepath.Join(s.dir, stamp+"_"+unsafeLabel.ReplaceAllString(label, "_")+".png")
}

func save(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("screenshot %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("screenshot %s: %w", path, cerr)
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("screenshot %s: %w", path, err)
	}
	return nil
}
