package service

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"strings"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	maxImageWidth  = 1200
	jpegQuality    = 70
	maxUploadBytes = 10 << 20
)

var errEmptyImage = errors.New("image data is empty")

// decodeDataURL 接受 data:image/...;base64,xxx 或純 base64
func decodeDataURL(data string) ([]byte, error) {
	data = strings.TrimSpace(data)
	if data == "" {
		return nil, errEmptyImage
	}
	if strings.HasPrefix(data, "data:") {
		comma := strings.IndexByte(data, ',')
		if comma < 0 || !strings.Contains(data[:comma], ";base64") {
			return nil, errors.New("unsupported data url")
		}
		data = data[comma+1:]
	}
	if base64.StdEncoding.DecodedLen(len(data)) > maxUploadBytes {
		return nil, fmt.Errorf("image larger than %d bytes", maxUploadBytes)
	}
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("invalid base64: %w", err)
	}
	return raw, nil
}

// compressImage 解碼 JPEG/PNG/WebP，寬度超過 1200 等比縮小，輸出 JPEG q70
func compressImage(raw []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	bounds := src.Bounds()
	var dst image.Image = src
	if bounds.Dx() > maxImageWidth {
		height := bounds.Dy() * maxImageWidth / bounds.Dx()
		if height < 1 {
			height = 1
		}
		scaled := image.NewRGBA(image.Rect(0, 0, maxImageWidth, height))
		draw.CatmullRom.Scale(scaled, scaled.Bounds(), src, bounds, draw.Over, nil)
		dst = scaled
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

func toDataURL(contentType string, data []byte) string {
	if len(data) == 0 {
		return ""
	}
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
