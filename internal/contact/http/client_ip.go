package http

import (
	"net/http"
	"strings"
)

const unknownClient = "unknown"

// ClientID derives the rate-limit key for a request: the first entry
// of X-Forwarded-For, else X-Real-Ip, else "unknown". The pipeline
// only needs a stable string per client.
func ClientID(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first := strings.TrimSpace(strings.Split(fwd, ",")[0])
		if first != "" {
			return first
		}
	}

	if rip := strings.TrimSpace(r.Header.Get("X-Real-Ip")); rip != "" {
		return rip
	}

	return unknownClient
}
