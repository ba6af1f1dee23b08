// Package weburl guards RDF fetches against server-side request forgery.
//
// # URL Validation
//
// ValidateURL checks a URL before any request is made:
//
//   - Requires an http or https scheme and a host
//   - Blocks localhost variants (localhost, *.localhost)
//   - Blocks local domains (.local, .internal)
//   - Blocks private IP literals (see IsPrivateIP)
//
// # IP Address Handling
//
// IsPrivateIP detects private/reserved IP addresses including:
//
//   - IPv4 private ranges (10.0.0.0/8, 172.16.0.0/12, 192.168.0.0/16)
//   - IPv4 loopback (127.0.0.0/8) and the unspecified address
//   - IPv4 link-local (169.254.0.0/16)
//   - CGNAT range (100.64.0.0/10)
//   - IPv6 loopback (::1), unique local (fc00::/7), link-local (fe80::/10)
//   - IPv6-mapped IPv4 addresses (::ffff:x.x.x.x)
//
// # Dialing
//
// A hostname that passes ValidateURL can still resolve to a private address.
// SafeDialContext resolves the host itself and refuses the connection when
// any resolved address is private; install it as http.Transport.DialContext.
//
// # Usage
//
//	if err := weburl.ValidateURL("https://dbpedia.org/resource/Cat"); err != nil {
//	    return err
//	}
//
//	transport := &http.Transport{
//	    DialContext: weburl.SafeDialContext(&net.Dialer{Timeout: 10 * time.Second}),
//	}
package weburl
