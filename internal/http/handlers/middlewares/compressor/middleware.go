package compressor

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"bloglist/internal/http/httputils"

	"github.com/go-chi/chi/v5/middleware"
)

// MiddlewareCompressing распаковывает gzip-тело запроса, а ответы сжимает
// chi-компрессором для JSON и текстовых типов
func MiddlewareCompressing() func(http.Handler) http.Handler {
	compress := middleware.Compress(gzip.DefaultCompression, compressibleTypes...)

	return func(next http.Handler) http.Handler {
		compressed := compress(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Обработка входящего сжатого контента
			if err := decompressRequest(r); err != nil {
				httputils.WriteJSONError(w, http.StatusBadRequest, "invalid gzip data")
				return
			}
			compressed.ServeHTTP(w, r)
		})
	}
}

var compressibleTypes = []string{
	httputils.MIMEApplicationJSON,
	httputils.MIMETextHTML,
	httputils.MIMETextPlain,
}

// gzipBody закрывает и gzip-ридер, и исходное тело запроса
type gzipBody struct {
	*gzip.Reader
	src io.Closer
}

func (b gzipBody) Close() error {
	if err := b.Reader.Close(); err != nil {
		_ = b.src.Close()
		return err
	}
	return b.src.Close()
}

func decompressRequest(r *http.Request) error {
	if !hasEncoding(r.Header.Get(httputils.HeaderContentEncoding), httputils.EncodingGzip) {
		return nil
	}

	gz, err := gzip.NewReader(r.Body)
	if err != nil {
		return err
	}
	r.Body = gzipBody{Reader: gz, src: r.Body}
	r.ContentLength = -1
	r.Header.Del(httputils.HeaderContentEncoding)
	r.Header.Del(httputils.HeaderContentLength)
	return nil
}

// hasEncoding ищет кодировку в списке через запятую, параметры вида ;q= отбрасываются.
// q=0 означает явный отказ.
func hasEncoding(header, encoding string) bool {
	for _, part := range strings.Split(header, ",") {
		name, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		if !strings.EqualFold(strings.TrimSpace(name), encoding) {
			continue
		}
		q := strings.ReplaceAll(params, " ", "")
		return q != "q=0" && q != "q=0.0" && q != "q=0.00" && q != "q=0.000"
	}
	return false
}
