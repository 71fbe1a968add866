package utils

import (
	"net/http"
	"strings"
)

// Proxy headers consulted for the client address, most trustworthy first.
var ipHeaders = []string{
	"cf-connecting-ip",
	"x-client-ip",
	"x-forwarded-for",
	"x-real-ip",
	"x-cluster-client-ip",
	"forwarded-for",
	"forwarded",
}

// ClientIP resolves the caller's address from proxy headers. The first
// non-empty header wins; comma-separated lists keep the leftmost entry.
func ClientIP(header http.Header) string {
	for _, name := range ipHeaders {
		value := header.Get(name)
		if value == "" {
			continue
		}
		ip := strings.TrimSpace(strings.SplitN(value, ",", 2)[0])
		if ip != "" {
			return ip
		}
	}
	return "0.0.0.0"
}
