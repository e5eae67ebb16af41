package ratelimit

import (
	"net/http"
	"strings"
)

// UnknownClient is the shared key of requests that carry no client address header.
const UnknownClient = "unknown"

// ClientKey derives the rate-limit key of a request from proxy headers:
// the first X-Forwarded-For entry, then X-Real-IP, then CF-Connecting-IP.
func ClientKey(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	if cfIP := r.Header.Get("CF-Connecting-IP"); cfIP != "" {
		return cfIP
	}
	return UnknownClient
}
