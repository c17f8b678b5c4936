package middleware

import (
	"bytes"
	"compress/gzip"
	"compress/zlib"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"mannamsalon/internal/telemetry"

	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const payload = `{"action":"clockIn","token":"t"}`

func compress(t *testing.T, enc string, body []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	var w io.WriteCloser
	switch enc {
	case "gzip":
		w = gzip.NewWriter(&buf)
	case "deflate":
		w = zlib.NewWriter(&buf)
	case "br":
		w = brotli.NewWriter(&buf)
	case "zstd":
		zw, err := zstd.NewWriter(&buf)
		require.NoError(t, err)
		w = zw
	}
	_, err := w.Write(body)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func newDecompressEngine(seen *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(NewDecompress(&telemetry.Trace{}).Handler())
	r.POST("/echo", func(c *gin.Context) {
		b, _ := io.ReadAll(c.Request.Body)
		*seen = string(b)
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestDecompress_Encodings(t *testing.T) {
	for _, enc := range []string{"gzip", "deflate", "br", "zstd"} {
		t.Run(enc, func(t *testing.T) {
			var seen string
			r := newDecompressEngine(&seen)
			req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewReader(compress(t, enc, []byte(payload))))
			req.Header.Set("Content-Encoding", enc)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusNoContent, w.Code)
			assert.Equal(t, payload, seen)
		})
	}
}

func TestDecompress_PlainBodyUntouched(t *testing.T) {
	var seen string
	r := newDecompressEngine(&seen)
	req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewBufferString(payload))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, payload, seen)
}

func TestDecompress_RejectsUnknownOrCorrupt(t *testing.T) {
	tests := []struct {
		name string
		enc  string
		body []byte
	}{
		{"unknown encoding", "lzma", []byte(payload)},
		{"corrupt gzip", "gzip", []byte("not gzip")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			r := newDecompressEngine(&seen)
			req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewReader(tt.body))
			req.Header.Set("Content-Encoding", tt.enc)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Empty(t, seen)
			assert.NotEqual(t, http.StatusNoContent, w.Code)
		})
	}
}
