package discovery

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/grandcat/zeroconf"
	"go.uber.org/zap"

	"github.com/muurk/anagram-form/internal/logging"
)

const (
	// ServiceType is the mDNS service type anagram endpoints advertise
	ServiceType = "_anagram._tcp"

	// ServiceDomain is the mDNS domain (typically "local.")
	ServiceDomain = "local."

	// DefaultScanTimeout is the default timeout for service discovery
	DefaultScanTimeout = 5 * time.Second

	// DefaultPort is used when an entry advertises port 0
	DefaultPort = 80
)

// ErrNoService is returned by First when nothing answers before the timeout
var ErrNoService = errors.New("no service answered")

// Scanner handles mDNS service discovery
type Scanner struct {
	// Timeout is the maximum time to wait for advertisements
	Timeout time.Duration

	// ServiceType overrides the browsed service type
	ServiceType string

	// browse starts a DNS-SD browse; nil uses a zeroconf resolver
	browse browseFunc
}

// browseFunc starts browsing in the background and delivers entries until
// ctx is done, then closes entries.
type browseFunc func(ctx context.Context, service, domain string, entries chan<- *zeroconf.ServiceEntry) error

// zeroconfBrowse browses with a fresh zeroconf resolver on all interfaces
func zeroconfBrowse(ctx context.Context, service, domain string, entries chan<- *zeroconf.ServiceEntry) error {
	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return fmt.Errorf("failed to create mDNS resolver: %w", err)
	}
	if err := resolver.Browse(ctx, service, domain, entries); err != nil {
		return fmt.Errorf("failed to browse for mDNS services: %w", err)
	}
	return nil
}

// NewScanner creates a new mDNS scanner with default settings
func NewScanner() *Scanner {
	return &Scanner{
		Timeout:     DefaultScanTimeout,
		ServiceType: ServiceType,
	}
}

// Scan discovers anagram services on the local network until the timeout
// elapses or ctx is cancelled. Duplicate advertisements of the same
// instance are collapsed.
func (s *Scanner) Scan(ctx context.Context) ([]*Service, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout())
	defer cancel()

	entries := make(chan *zeroconf.ServiceEntry)

	var (
		mu       sync.Mutex
		services []*Service
		done     = make(chan struct{})
	)

	go func() {
		defer close(done)
		seen := make(map[string]bool)
		for entry := range entries {
			svc := parseServiceEntry(entry)
			if svc == nil || seen[svc.Instance] {
				continue
			}
			seen[svc.Instance] = true
			logging.Debug("Discovered anagram service",
				zap.String("instance", svc.Instance),
				zap.String("url", svc.BaseURL()))

			mu.Lock()
			services = append(services, svc)
			mu.Unlock()
		}
	}()

	logging.Debug("Browsing for services",
		zap.String("service", s.serviceType()),
		zap.Duration("timeout", s.timeout()))

	if err := s.browser()(ctx, s.serviceType(), ServiceDomain, entries); err != nil {
		return nil, err
	}

	<-ctx.Done()

	// The resolver closes entries once browsing stops
	select {
	case <-done:
	case <-time.After(time.Second):
	}

	mu.Lock()
	defer mu.Unlock()
	return append([]*Service(nil), services...), nil
}

// First waits for the first advertised service and returns as soon as one
// answers. It fails when nothing answers before the timeout.
func (s *Scanner) First(ctx context.Context) (*Service, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout())
	defer cancel()

	entries := make(chan *zeroconf.ServiceEntry)
	found := make(chan *Service, 1)

	go func() {
		for entry := range entries {
			if svc := parseServiceEntry(entry); svc != nil {
				select {
				case found <- svc:
				default:
				}
				cancel()
				return
			}
		}
	}()

	if err := s.browser()(ctx, s.serviceType(), ServiceDomain, entries); err != nil {
		return nil, err
	}

	select {
	case svc := <-found:
		return svc, nil
	case <-ctx.Done():
		select {
		case svc := <-found:
			return svc, nil
		default:
		}
		return nil, fmt.Errorf("%w: %s within %s", ErrNoService, s.serviceType(), s.timeout())
	}
}

func (s *Scanner) browser() browseFunc {
	if s.browse == nil {
		return zeroconfBrowse
	}
	return s.browse
}

func (s *Scanner) timeout() time.Duration {
	if s.Timeout <= 0 {
		return DefaultScanTimeout
	}
	return s.Timeout
}

func (s *Scanner) serviceType() string {
	if s.ServiceType == "" {
		return ServiceType
	}
	return s.ServiceType
}

// parseServiceEntry converts a zeroconf service entry to a Service.
// Returns nil if the entry carries no usable address.
func parseServiceEntry(entry *zeroconf.ServiceEntry) *Service {
	if entry == nil {
		return nil
	}

	// Prefer IPv4
	var ip string
	if len(entry.AddrIPv4) > 0 {
		ip = entry.AddrIPv4[0].String()
	} else if len(entry.AddrIPv6) > 0 {
		ip = entry.AddrIPv6[0].String()
	}
	if ip == "" {
		return nil
	}

	port := entry.Port
	if port == 0 {
		port = DefaultPort
	}

	metadata := parseTXT(entry.Text)

	instance := entry.Instance
	if instance == "" {
		instance = entry.HostName
	}

	return &Service{
		Instance:     instance,
		Hostname:     entry.HostName,
		IP:           ip,
		Port:         port,
		Path:         normalizePath(metadata["path"]),
		Scheme:       normalizeScheme(metadata["scheme"]),
		Metadata:     metadata,
		DiscoveredAt: time.Now(),
	}
}

// parseTXT splits "key=value" TXT records; a bare key maps to ""
func parseTXT(records []string) map[string]string {
	metadata := make(map[string]string, len(records))
	for _, txt := range records {
		parts := strings.SplitN(txt, "=", 2)
		if parts[0] == "" {
			continue
		}
		if len(parts) == 2 {
			metadata[parts[0]] = parts[1]
		} else {
			metadata[parts[0]] = ""
		}
	}
	return metadata
}
