package util

import (
	"net/http"
	"net/url"
	"strings"
)

// NewProxyFunc creates a proxy function based on configuration.
// If no proxy URLs are provided, falls back to environment variables.
// Hosts listed in noProxy (comma-separated, optionally with a leading dot
// for domain suffixes) connect directly.
func NewProxyFunc(httpProxy, httpsProxy, noProxy string) func(*http.Request) (*url.URL, error) {
	if httpProxy == "" && httpsProxy == "" {
		return http.ProxyFromEnvironment
	}

	skip := parseNoProxy(noProxy)

	return func(req *http.Request) (*url.URL, error) {
		if bypassProxy(req.URL.Hostname(), skip) {
			return nil, nil
		}
		if req.URL.Scheme == "https" && httpsProxy != "" {
			return url.Parse(httpsProxy)
		}
		if httpProxy != "" {
			return url.Parse(httpProxy)
		}
		return http.ProxyFromEnvironment(req)
	}
}

func parseNoProxy(noProxy string) []string {
	var entries []string
	for _, part := range strings.Split(noProxy, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			entries = append(entries, part)
		}
	}
	return entries
}

func bypassProxy(host string, skip []string) bool {
	host = strings.ToLower(host)
	for _, entry := range skip {
		if entry == "*" {
			return true
		}
		domain := strings.TrimPrefix(entry, ".")
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return true
		}
	}
	return false
}
