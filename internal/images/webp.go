package images

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	// Patient photos are thumbnails; anything wider gets scaled down.
	maxWidth = 640

	quality = 82
)

// NormalizePhoto decodes an uploaded JPEG/PNG, scales it down to at most
// maxWidth and re-encodes as webp. Returns the encoded bytes and the
// content type to store with them.
func NormalizePhoto(data []byte) ([]byte, string, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", err
	}

	img = scaleDown(img, maxWidth)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: quality}); err != nil {
		return nil, "", err
	}

	return buf.Bytes(), "image/webp", nil
}

func scaleDown(img image.Image, width int) image.Image {
	b := img.Bounds()
	if b.Dx() <= width {
		return img
	}

	height := b.Dy() * width / b.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
