package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

const (
	// Uploaded avatars / course images are bounded to this width.
	maxImageWidth = 1280

	webpQuality = 80
)

// UploadImageAsWebP decodes an uploaded image, resizes it to a bounded
// width and re-encodes it as webp before storing. Returns the public URL.
func UploadImageAsWebP(folder string, fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open image: %w", err)
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	if img.Bounds().Dx() > maxImageWidth {
		img = imaging.Resize(img, maxImageWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return "", fmt.Errorf("failed to encode webp: %w", err)
	}

	name := strings.TrimSuffix(fileHeader.Filename, extOf(fileHeader.Filename)) + ".webp"
	return SaveBytes(folder, name, buf.Bytes())
}

func extOf(filename string) string {
	if i := strings.LastIndex(filename, "."); i >= 0 {
		return filename[i:]
	}
	return ""
}
