package http

import (
	"net"
	"net/http"
	"strings"

	"github.com/MKhiriev/credit-risk-gateway/internal/logger"
	"github.com/MKhiriev/credit-risk-gateway/internal/utils"
)

// withTrustedHosts rejects requests whose Host header (port ignored) is not
// listed in allowedHosts. A "*" entry or an empty list accepts any host.
// Entries of the form "*.example.com" match any subdomain.
func withTrustedHosts(allowedHosts []string) func(http.Handler) http.Handler {
	allowAll := len(allowedHosts) == 0
	exact := make(map[string]struct{}, len(allowedHosts))
	var suffixes []string
	for _, host := range allowedHosts {
		host = strings.ToLower(strings.TrimSpace(host))
		switch {
		case host == "*":
			allowAll = true
		case strings.HasPrefix(host, "*."):
			suffixes = append(suffixes, host[1:])
		case host != "":
			exact[host] = struct{}{}
		}
	}

	return func(next http.Handler) http.Handler {
		if allowAll {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			host := hostWithoutPort(r.Host)
			if _, ok := exact[host]; ok || hasAnySuffix(host, suffixes) {
				next.ServeHTTP(w, r)
				return
			}

			logger.FromRequest(r).Warn().Str("host", r.Host).Msg("untrusted host header")
			utils.WriteError(w, msgInvalidHost, http.StatusBadRequest)
		})
	}
}

func hostWithoutPort(hostport string) string {
	host := hostport
	if h, _, err := net.SplitHostPort(hostport); err == nil {
		host = h
	}
	return strings.ToLower(strings.Trim(host, "[]"))
}

func hasAnySuffix(host string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(host, suffix) {
			return true
		}
	}
	return false
}
