package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"mannamsalon/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngDataURL(t *testing.T, width, height int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		img.Set(x, x%height, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestDecodeDataURL(t *testing.T) {
	raw, err := decodeDataURL("data:image/png;base64,aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(raw))

	raw, err = decodeDataURL("aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(raw))

	_, err = decodeDataURL("")
	assert.ErrorIs(t, err, errEmptyImage)
	_, err = decodeDataURL("data:image/png,hello")
	assert.Error(t, err)
	_, err = decodeDataURL("data:image/png;base64,@@@")
	assert.Error(t, err)
}

func TestCompressImage_ScalesWideImages(t *testing.T) {
	raw, err := decodeDataURL(pngDataURL(t, 2400, 600))
	require.NoError(t, err)

	out, err := compressImage(raw)
	require.NoError(t, err)
	cfg, err := jpeg.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, maxImageWidth, cfg.Width)
	assert.Equal(t, 300, cfg.Height)
}

func TestCompressImage_KeepsSmallImageSize(t *testing.T) {
	raw, err := decodeDataURL(pngDataURL(t, 640, 480))
	require.NoError(t, err)

	out, err := compressImage(raw)
	require.NoError(t, err)
	cfg, err := jpeg.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 640, cfg.Width)

	_, err = compressImage([]byte("not an image"))
	assert.Error(t, err)
}

func TestSaveHealthCert_StoresCompressedJPEG(t *testing.T) {
	e := newTestEnv(kim)
	ctx := context.Background()

	err := e.docsSv.SaveHealthCert(ctx, managerSession(), kim.UID, &dto.HealthCertDto{
		ExpiryDate: "2026-06-30",
		ImageData:  pngDataURL(t, 1600, 400),
	})
	require.NoError(t, err)

	stored, err := e.docs.GetByUID(ctx, kim.UID)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", stored.HealthCert.ContentType)
	cfg, err := jpeg.DecodeConfig(bytes.NewReader(stored.HealthCert.ImageData))
	require.NoError(t, err)
	assert.Equal(t, maxImageWidth, cfg.Width)
}
