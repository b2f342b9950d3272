package compressor

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"bloglist/internal/http/httputils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestMiddlewareCompressing_Response(t *testing.T) {
	jsonHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httputils.WriteJSONResponse(w, http.StatusOK, map[string]int{"likes": 7})
	})
	noContent := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name         string
		handler      http.Handler
		acceptGzip   bool
		wantEncoding string
		wantBody     string
	}{
		{
			name:         "json is compressed for gzip clients",
			handler:      jsonHandler,
			acceptGzip:   true,
			wantEncoding: httputils.EncodingGzip,
			wantBody:     "{\"likes\":7}\n",
		},
		{
			name:       "plain clients get plain json",
			handler:    jsonHandler,
			acceptGzip: false,
			wantBody:   "{\"likes\":7}\n",
		},
		{
			name:       "204 stays empty",
			handler:    noContent,
			acceptGzip: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/posts", nil)
			if tt.acceptGzip {
				r.Header.Set(httputils.HeaderAcceptEncoding, "gzip, deflate")
			}
			w := httptest.NewRecorder()

			MiddlewareCompressing()(tt.handler).ServeHTTP(w, r)

			assert.Equal(t, tt.wantEncoding, w.Header().Get(httputils.HeaderContentEncoding))

			body := w.Body.Bytes()
			if tt.wantEncoding == httputils.EncodingGzip {
				zr, err := gzip.NewReader(bytes.NewReader(body))
				require.NoError(t, err)
				body, err = io.ReadAll(zr)
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantBody, string(body))
		})
	}
}

func TestMiddlewareCompressing_Request(t *testing.T) {
	echo := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		w.Write(b)
	})

	t.Run("gzip body is unpacked", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/posts", bytes.NewReader(gzipBytes(t, `{"title":"x"}`)))
		r.Header.Set(httputils.HeaderContentEncoding, httputils.EncodingGzip)
		w := httptest.NewRecorder()

		MiddlewareCompressing()(echo).ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, `{"title":"x"}`, w.Body.String())
	})

	t.Run("broken gzip is rejected", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/posts", bytes.NewReader([]byte("not gzip")))
		r.Header.Set(httputils.HeaderContentEncoding, httputils.EncodingGzip)
		w := httptest.NewRecorder()

		MiddlewareCompressing()(echo).ServeHTTP(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHasEncoding(t *testing.T) {
	tests := []struct {
		header string
		want   bool
	}{
		{header: "gzip", want: true},
		{header: "deflate, GZIP;q=0.8", want: true},
		{header: "br, gzip ; q=0", want: false},
		{header: "x-gzip-custom", want: false},
		{header: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, hasEncoding(tt.header, httputils.EncodingGzip))
		})
	}
}
