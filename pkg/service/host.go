package service

import (
	"regexp"
	"strings"
)

// remoteURLRegexp splits https, ssh and scp-like remote URLs into host and path.
var remoteURLRegexp = regexp.MustCompile(`^(?:[a-z+]+://)?(?:[^@/]+@)?([^:/]+)(?::\d+)?[:/](.+?)(?:\.git)?/?$`)

// webBaseURL returns the scheme and host of a configured host, "https://" being the default scheme.
func webBaseURL(host, defaultHost string) string {
	base := strings.TrimSuffix(strings.TrimSpace(host), "/")
	if base == "" {
		base = defaultHost
	}
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "https://" + base
	}
	return base
}

// hostName strips the scheme, port and path of a base URL.
func hostName(baseURL string) string {
	name := strings.TrimPrefix(strings.TrimPrefix(baseURL, "https://"), "http://")
	name, _, _ = strings.Cut(name, "/")
	name, _, _ = strings.Cut(name, ":")
	return strings.ToLower(name)
}

// splitRemoteURL returns the repository path of a remote URL hosted on host.
func splitRemoteURL(url, host string) (string, bool) {
	matches := remoteURLRegexp.FindStringSubmatch(strings.TrimSpace(url))
	if len(matches) != 3 || !strings.EqualFold(matches[1], host) {
		return "", false
	}
	return matches[2], true
}
