package utils

import (
	"errors"
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	MaxImageBytes  = 5 << 20
	MaxImagePixels = 40_000_000
	maxImageSide   = 1600
)

var (
	ErrNotAnImage    = errors.New("file is not a supported image")
	ErrImageTooLarge = errors.New("image is too large")
)

// SaveImage decodes an uploaded image, shrinks it to fit 1600x1600 and writes
// it as <prefix>-<uuid>.jpg under dir. It returns the file name only.
func SaveImage(fh *multipart.FileHeader, dir, prefix string) (string, error) {
	if fh.Size > MaxImageBytes {
		return "", ErrImageTooLarge
	}
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	// Header only; refuse pixel bombs before allocating the bitmap.
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return "", ErrNotAnImage
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > MaxImagePixels {
		return "", ErrImageTooLarge
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	img, err := imaging.Decode(f, imaging.AutoOrientation(true))
	if err != nil {
		return "", ErrNotAnImage
	}
	b := img.Bounds()
	if b.Dx() > maxImageSide || b.Dy() > maxImageSide {
		img = imaging.Fit(img, maxImageSide, maxImageSide, imaging.Lanczos)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	name := fmt.Sprintf("%s-%s.jpg", prefix, uuid.NewString())
	if err := imaging.Save(img, filepath.Join(dir, name), imaging.JPEGQuality(85)); err != nil {
		return "", err
	}
	return name, nil
}

// RemoveImages deletes previously saved files, ignoring ones already gone.
func RemoveImages(dir string, names []string) {
	for _, n := range names {
		_ = os.Remove(filepath.Join(dir, filepath.Base(n)))
	}
}
