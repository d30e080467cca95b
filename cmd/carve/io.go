package main

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
)

// decodeImg decodes an arbitrary supported image from r, sniffing its
// container format from the source path's extension when known and falling
// back to image.Decode's format registry otherwise.
func decodeImg(r io.Reader, hintPath string) (image.Image, error) {
	switch strings.ToLower(filepath.Ext(hintPath)) {
	case ".webp":
		img, err := webp.Decode(r)
		return img, errors.Wrap(err, "decode webp")
	case ".bmp":
		img, err := bmp.Decode(r)
		return img, errors.Wrap(err, "decode bmp")
	case ".gif":
		img, err := gif.Decode(r)
		return img, errors.Wrap(err, "decode gif")
	}
	img, _, err := image.Decode(r)
	return img, errors.Wrap(err, "decode image")
}

// encodeImg writes img to w in the format implied by destPath's extension.
// An empty or unrecognized extension (including the pipe name) falls back to
// JPEG at full quality, matching the teacher's pipe-to-stdout behavior.
func encodeImg(w io.Writer, img image.Image, destPath string) error {
	switch strings.ToLower(filepath.Ext(destPath)) {
	case ".png":
		return errors.Wrap(png.Encode(w, img), "encode png")
	case ".bmp":
		return errors.Wrap(bmp.Encode(w, img), "encode bmp")
	case ".gif":
		return errors.Wrap(gif.Encode(w, img, nil), "encode gif")
	case ".webp":
		return errors.Wrap(webp.Encode(w, img, &webp.Options{Quality: 100}), "encode webp")
	default:
		return errors.Wrap(jpeg.Encode(w, img, &jpeg.Options{Quality: 100}), "encode jpeg")
	}
}

// detectContentType sniffs a file's MIME type from its first 512 bytes, the
// same rule the teacher applies when validating a supplied mask file.
func detectContentType(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	buf := make([]byte, 512)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return "", err
	}
	return http.DetectContentType(buf[:n]), nil
}

var supportedExtensions = []string{".jpg", ".jpeg", ".png", ".bmp", ".gif", ".webp"}

func isSupportedExtension(ext string) bool {
	ext = strings.ToLower(ext)
	for _, e := range supportedExtensions {
		if e == ext {
			return true
		}
	}
	return false
}

func requireImageFile(path string) error {
	ctype, err := detectContentType(path)
	if err != nil {
		return err
	}
	if !strings.Contains(ctype, "image") {
		return fmt.Errorf("%s is not an image file", path)
	}
	return nil
}
