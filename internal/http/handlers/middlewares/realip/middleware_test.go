package realip

import (
	"net/http"
	"net/http/httptest"
	"net/netip"
	"testing"

	"bloglist/internal/http/httputils"

	"github.com/stretchr/testify/assert"
)

func TestMiddlewareRealIP(t *testing.T) {
	proxies := []netip.Prefix{netip.MustParsePrefix("10.0.0.0/8")}

	tests := []struct {
		name      string
		trusted   []netip.Prefix
		peer      string
		forwarded []string
		want      string
	}{
		{
			name:      "no trusted proxies ignores headers",
			peer:      "203.0.113.5:4000",
			forwarded: []string{"198.51.100.1"},
			want:      "203.0.113.5:4000",
		},
		{
			name:      "untrusted peer cannot spoof",
			trusted:   proxies,
			peer:      "203.0.113.5:4000",
			forwarded: []string{"198.51.100.1"},
			want:      "203.0.113.5:4000",
		},
		{
			name:      "trusted proxy forwards client",
			trusted:   proxies,
			peer:      "10.0.0.2:4000",
			forwarded: []string{"198.51.100.1"},
			want:      "198.51.100.1",
		},
		{
			name:      "spoofed left entries are skipped",
			trusted:   proxies,
			peer:      "10.0.0.2:4000",
			forwarded: []string{"1.1.1.1, 198.51.100.1, 10.0.0.3"},
			want:      "198.51.100.1",
		},
		{
			name:      "several header lines",
			trusted:   proxies,
			peer:      "10.0.0.2:4000",
			forwarded: []string{"1.1.1.1", "198.51.100.1"},
			want:      "198.51.100.1",
		},
		{
			name:      "garbage keeps the peer",
			trusted:   proxies,
			peer:      "10.0.0.2:4000",
			forwarded: []string{"198.51.100.1, not-an-ip"},
			want:      "10.0.0.2:4000",
		},
		{
			name:    "no header keeps the peer",
			trusted: proxies,
			peer:    "10.0.0.2:4000",
			want:    "10.0.0.2:4000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			h := MiddlewareRealIP(tt.trusted)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = r.RemoteAddr
			}))

			r := httptest.NewRequest(http.MethodPost, "/login", nil)
			r.RemoteAddr = tt.peer
			for _, v := range tt.forwarded {
				r.Header.Add(httputils.HeaderXForwardedFor, v)
			}
			h.ServeHTTP(httptest.NewRecorder(), r)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPeerAddr(t *testing.T) {
	addr, ok := PeerAddr("[::ffff:192.0.2.1]:80")
	assert.True(t, ok)
	assert.Equal(t, "192.0.2.1", addr.String())

	addr, ok = PeerAddr("192.0.2.9")
	assert.True(t, ok)
	assert.Equal(t, "192.0.2.9", addr.String())

	_, ok = PeerAddr("@")
	assert.False(t, ok)
}
