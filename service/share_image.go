package service

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"log"

	_ "image/png"

	"github.com/disintegration/imaging"
)

const (
	// Max dimension and JPEG quality for shared invoice images
	shareImageMaxDim  = 1080
	shareImageQuality = 80
)

// OptimizeShareImage converts a screenshot (PNG or JPEG) into a JPEG sized
// for messaging apps, downscaling when either dimension exceeds the max
func OptimizeShareImage(imageData []byte) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	var resizedImg image.Image = img
	if width > shareImageMaxDim || height > shareImageMaxDim {
		var newWidth, newHeight int
		if width > height {
			newWidth = shareImageMaxDim
			newHeight = int(float64(height) * float64(shareImageMaxDim) / float64(width))
		} else {
			newHeight = shareImageMaxDim
			newWidth = int(float64(width) * float64(shareImageMaxDim) / float64(height))
		}

		log.Printf("🔄 Resizing share image: %dx%d -> %dx%d", width, height, newWidth, newHeight)
		resizedImg = imaging.Resize(img, newWidth, newHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	opts := &jpeg.Options{
		Quality: shareImageQuality,
	}
	if err := jpeg.Encode(&buf, resizedImg, opts); err != nil {
		return nil, fmt.Errorf("failed to encode to JPEG: %w", err)
	}

	log.Printf("✓ Share image optimized: format=%s output_size=%d bytes", format, buf.Len())
	return buf.Bytes(), nil
}
