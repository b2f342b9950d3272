package realip

import (
	"net"
	"net/http"
	"net/netip"
	"strings"

	"bloglist/internal/http/httputils"
)

// MiddlewareRealIP заменяет RemoteAddr адресом клиента из X-Forwarded-For,
// только если соединение пришло от доверенного прокси. Список читается справа
// налево, доверенные адреса пропускаются; первый недоверенный и есть клиент.
// Без доверенных прокси заголовки не читаются вовсе.
func MiddlewareRealIP(trusted []netip.Prefix) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if len(trusted) == 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			peer, ok := PeerAddr(r.RemoteAddr)
			if ok && contains(trusted, peer) {
				if client, found := fromForwarded(trusted, r.Header.Values(httputils.HeaderXForwardedFor)); found {
					r.RemoteAddr = client.String()
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// PeerAddr разбирает RemoteAddr с портом или без.
func PeerAddr(remoteAddr string) (netip.Addr, bool) {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		host = remoteAddr
	}
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return netip.Addr{}, false
	}
	return addr.Unmap(), true
}

func fromForwarded(trusted []netip.Prefix, headers []string) (netip.Addr, bool) {
	var hops []string
	for _, h := range headers {
		hops = append(hops, strings.Split(h, ",")...)
	}

	for i := len(hops) - 1; i >= 0; i-- {
		addr, err := netip.ParseAddr(strings.TrimSpace(hops[i]))
		if err != nil {
			// мусор в цепочке: дальше левее верить нельзя
			return netip.Addr{}, false
		}
		addr = addr.Unmap()
		if !contains(trusted, addr) {
			return addr, true
		}
	}
	return netip.Addr{}, false
}

func contains(prefixes []netip.Prefix, addr netip.Addr) bool {
	for _, p := range prefixes {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}
