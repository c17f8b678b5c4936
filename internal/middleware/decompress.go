package middleware

import (
	"bytes"
	"compress/gzip"
	"compress/zlib"
	"io"
	"net/http"
	"strconv"
	"strings"

	"mannamsalon/internal/core"
	cErr "mannamsalon/internal/pkg/error"
	"mannamsalon/internal/pkg/response"
	"mannamsalon/internal/telemetry"

	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/zstd"
	"go.opentelemetry.io/otel/attribute"
)

// 健康證圖片 base64 後約 14MB，解壓後上限放寬到 16MB
const maxDecompressedBytes = 16 << 20

type Decompress struct {
	trace *telemetry.Trace
}

func NewDecompress(trace *telemetry.Trace) *Decompress {
	return &Decompress{trace: trace}
}

// Handler 依 Content-Encoding 解開請求本體，後續 handler 只會看到明文 JSON
func (m *Decompress) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		enc := strings.ToLower(strings.TrimSpace(c.GetHeader("Content-Encoding")))
		if c.Request.Body == nil || enc == "" || enc == "identity" {
			c.Next()
			return
		}
		_, span, end := m.trace.WithSpan(c, string(core.SpanDecompressMiddleware))
		raw, err := io.ReadAll(c.Request.Body)
		_ = c.Request.Body.Close()
		if err != nil {
			appErr := cErr.BadRequest("read body: " + err.Error())
			end(appErr)
			response.AbortWithError(c, appErr)
			return
		}
		plain, err := decompressBody(raw, enc)
		if err != nil {
			appErr := cErr.BadRequest("unsupported or corrupt " + enc + " body")
			end(appErr)
			response.AbortWithError(c, appErr)
			return
		}
		if len(plain) > maxDecompressedBytes {
			appErr := cErr.BadRequest("body too large")
			end(appErr)
			response.AbortWithError(c, appErr)
			return
		}
		span.SetAttributes(
			attribute.String("http.request.content_encoding", enc),
			attribute.Int("http.request.compressed_bytes", len(raw)),
			attribute.Int("http.request.body_bytes", len(plain)),
		)
		end(nil)

		c.Request.Body = io.NopCloser(bytes.NewReader(plain))
		c.Request.ContentLength = int64(len(plain))
		c.Request.Header.Set("Content-Length", strconv.Itoa(len(plain)))
		c.Request.Header.Del("Content-Encoding")
		c.Next()
	}
}

func decompressBody(raw []byte, enc string) ([]byte, error) {
	switch enc {
	case "gzip", "x-gzip":
		return gunzipBytes(raw)
	case "deflate":
		return inflateZlibBytes(raw)
	case "zstd":
		return zstdBytes(raw)
	case "br":
		return brotliBytes(raw)
	default:
		return nil, http.ErrNotSupported
	}
}

func limited(r io.Reader) ([]byte, error) {
	return io.ReadAll(io.LimitReader(r, maxDecompressedBytes+1))
}

func gunzipBytes(b []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return limited(zr)
}

func inflateZlibBytes(b []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return limited(zr)
}

func zstdBytes(b []byte) ([]byte, error) {
	dec, err := zstd.NewReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return limited(dec)
}

func brotliBytes(b []byte) ([]byte, error) {
	return limited(brotli.NewReader(bytes.NewReader(b)))
}
