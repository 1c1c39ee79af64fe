package pkg

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

const MaxUploadSize = 10 << 20 // 10 MB

var (
	ErrFileTooLarge = errors.New("file exceeds the 10MB limit")
	ErrBadFileType  = errors.New("only jpeg, jpg, png and gif images are allowed")
)

var allowedImageExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
}

var allowedImageMIMEs = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

// SaveImage validates an uploaded image (extension and sniffed content type)
// and writes it into dir under a timestamped collision-free name. It returns
// the bare stored filename; callers prefix the public mount path.
func SaveImage(fh *multipart.FileHeader, dir string) (string, error) {
	if fh.Size > MaxUploadSize {
		return "", ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedImageExts[ext] {
		return "", ErrBadFileType
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	// Sniff real content; the extension alone is spoofable.
	mt, err := mimetype.DetectReader(src)
	if err != nil {
		return "", err
	}
	if !allowedImageMIMEs[mt.String()] {
		return "", ErrBadFileType
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	suffix, err := RandDigits(6)
	if err != nil {
		return "", err
	}
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), suffix, ext)

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", err
	}
	return name, nil
}
