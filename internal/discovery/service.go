package discovery

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// Service represents an anagram endpoint advertised on the local network
type Service struct {
	// Instance is the mDNS instance name (e.g., "Anagram Service")
	Instance string

	// Hostname is the mDNS hostname (e.g., "anagrams.local.")
	Hostname string

	// IP is the advertised address, IPv4 when available
	IP string

	// Port is the HTTP port
	Port int

	// Path is the URL prefix from the "path" TXT record, without a trailing slash
	Path string

	// Scheme is "http" unless the "scheme" TXT record says "https"
	Scheme string

	// Metadata contains every TXT record as key/value pairs
	Metadata map[string]string

	// DiscoveredAt is when the service was resolved
	DiscoveredAt time.Time
}

// String returns a human-readable string representation of the service
func (s *Service) String() string {
	return fmt.Sprintf("%s (%s) at %s", s.Instance, s.Hostname, s.BaseURL())
}

// BaseURL returns the endpoint base URL suitable for anagram.NewClient
func (s *Service) BaseURL() string {
	scheme := s.Scheme
	if scheme == "" {
		scheme = "http"
	}
	host := net.JoinHostPort(s.IP, strconv.Itoa(s.Port))
	return scheme + "://" + host + s.Path
}

// GetMetadata retrieves a metadata value by key, or returns empty string if not found
func (s *Service) GetMetadata(key string) string {
	if s.Metadata == nil {
		return ""
	}
	return s.Metadata[key]
}

// normalizePath turns a TXT path value into a URL prefix: "" or "/api"
func normalizePath(p string) string {
	p = strings.TrimSpace(p)
	p = strings.TrimRight(p, "/")
	if p == "" {
		return ""
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

func normalizeScheme(s string) string {
	if strings.EqualFold(strings.TrimSpace(s), "https") {
		return "https"
	}
	return "http"
}
