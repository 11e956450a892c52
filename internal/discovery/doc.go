// Package discovery locates anagram endpoints on the local network using
// multicast DNS.
//
// Services advertise as "_anagram._tcp" in the "local." domain. Two optional
// TXT records shape the resulting base URL:
//
//	path=/api      URL prefix placed before /generate-anagram
//	scheme=https   use HTTPS instead of HTTP
//
// # Usage Example
//
//	scanner := discovery.NewScanner()
//	scanner.Timeout = 3 * time.Second
//	services, err := scanner.Scan(ctx)
//	if err != nil {
//	    return err
//	}
//	for _, svc := range services {
//	    fmt.Println(svc.Instance, svc.BaseURL())
//	}
//
// # Network Requirements
//
// - Requires multicast support on the network interface
// - The service must be on the same local network segment
// - Firewall must allow mDNS (UDP port 5353)
package discovery
