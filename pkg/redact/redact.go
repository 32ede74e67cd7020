// Package redact scrubs identifying information from report text so users
// can paste reports into public support threads.
package redact

import (
	"net"
	"os"
	"os/user"
	"regexp"
	"runtime"
	"strings"
)

var ipv4Re = regexp.MustCompile(`\b(?:(?:25[0-5]|2[0-4]\d|[01]?\d\d?)\.){3}(?:25[0-5]|2[0-4]\d|[01]?\d\d?)\b`)

// Redactor replaces usernames, hostnames and IP addresses with placeholders.
// A disabled Redactor passes everything through unchanged.
type Redactor struct {
	enabled  bool
	username string
	hostname string
}

// New creates a Redactor seeded from the current environment.
func New(enabled bool) *Redactor {
	r := &Redactor{enabled: enabled}
	if !enabled {
		return r
	}

	r.hostname, _ = os.Hostname()
	if u, err := user.Current(); err == nil {
		r.username = u.Username
		// Windows usernames may arrive as "DOMAIN\user".
		if idx := strings.LastIndex(r.username, `\`); idx >= 0 {
			r.username = r.username[idx+1:]
		}
	}
	return r
}

// Redact scrubs usernames, the hostname, and IPv4 addresses from s.
func (r *Redactor) Redact(s string) string {
	if !r.enabled || s == "" {
		return s
	}

	if r.username != "" {
		re := regexp.MustCompile(usernameFlags() + `\b` + regexp.QuoteMeta(r.username) + `\b`)
		s = re.ReplaceAllString(s, "<user>")
	}
	if r.hostname != "" {
		re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(r.hostname) + `\b`)
		s = re.ReplaceAllString(s, "<host>")
	}

	s = ipv4Re.ReplaceAllStringFunc(s, func(match string) string {
		if ip := net.ParseIP(match); ip != nil && isPrivateIP(ip) {
			return "<lan-ip>"
		}
		return "<public-ip-redacted>"
	})

	return s
}

// RedactHostname replaces a hostname value outright.
func (r *Redactor) RedactHostname(hostname string) string {
	if !r.enabled || hostname == "" {
		return hostname
	}
	return "<host>"
}

// RedactPath scrubs the username component from home-directory paths.
func (r *Redactor) RedactPath(path string) string {
	if !r.enabled || path == "" || r.username == "" {
		return path
	}
	re := regexp.MustCompile(usernameFlags() + `((?:C:\\Users\\|/home/|/Users/))` + regexp.QuoteMeta(r.username))
	return re.ReplaceAllString(path, "${1}<user>")
}

func usernameFlags() string {
	if runtime.GOOS == "windows" {
		return "(?i)"
	}
	return ""
}

func isPrivateIP(ip net.IP) bool {
	return ip.IsLoopback() || ip.IsPrivate() || ip.IsLinkLocalUnicast()
}
