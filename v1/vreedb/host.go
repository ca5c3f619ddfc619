package vreedb

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
)

const (
	defaultScheme   = "http"
	defaultHostname = "127.0.0.1"
	schemeSeparator = "://"
	maxPort         = 65535
)

// schemeKind classifies the scheme found in a host string.
type schemeKind int

const (
	schemeAbsent schemeKind = iota
	schemeHTTP
	schemeHTTPS
	schemeOther
)

// defaultPorts maps each scheme kind to the port used when the host string
// carries none. Only an exact "http" or "https" picks its own port; an absent
// or unrecognized scheme keeps 8080.
var defaultPorts = map[schemeKind]int{
	schemeAbsent: 8080,
	schemeHTTP:   8080,
	schemeHTTPS:  443,
	schemeOther:  8080,
}

func classifyScheme(scheme string) schemeKind {
	switch scheme {
	case "http":
		return schemeHTTP
	case "https":
		return schemeHTTPS
	default:
		return schemeOther
	}
}

// Endpoint is a fully populated base address.
type Endpoint struct {
	Scheme   string
	Hostname string
	Port     int
}

// String renders the endpoint as scheme://hostname:port. IPv6 hostnames are
// bracketed.
func (e Endpoint) String() string {
	return e.Scheme + schemeSeparator + net.JoinHostPort(e.Hostname, strconv.Itoa(e.Port))
}

// ResolveEndpoint normalizes a loosely specified host string.
//
//	""                -> http://127.0.0.1:8080
//	"myhost"          -> http://myhost:8080
//	"myhost:9000"     -> http://myhost:9000
//	"https://myhost"  -> https://myhost:443
//	"ftp://myhost"    -> ftp://myhost:8080
//
// The explicit scheme is kept verbatim. A port of 0 counts as absent. The
// normalization is one-way: it is not meant to be a fixed point when applied
// to its own output with arbitrary schemes.
func ResolveEndpoint(host string) (Endpoint, error) {
	scheme, hostPort, found := strings.Cut(host, schemeSeparator)

	kind := schemeAbsent
	if !found || hostPort == "" {
		scheme, hostPort = defaultScheme, host
	} else {
		kind = classifyScheme(scheme)
	}
	port := defaultPorts[kind]

	u, err := url.Parse(scheme + schemeSeparator + hostPort)
	if err != nil {
		return Endpoint{}, fmt.Errorf("%w %q: %w", ErrHostResolution, host, err)
	}

	hostname := strings.ToLower(u.Hostname())
	if hostname == "" {
		hostname = defaultHostname
	}

	if raw := u.Port(); raw != "" {
		explicit, err := strconv.Atoi(raw)
		if err != nil || explicit > maxPort {
			return Endpoint{}, fmt.Errorf("%w %q: port %s out of range 0-%d", ErrHostResolution, host, raw, maxPort)
		}
		if explicit != 0 {
			port = explicit
		}
	}

	return Endpoint{Scheme: scheme, Hostname: hostname, Port: port}, nil
}

// ResolveHost is ResolveEndpoint(host).String().
func ResolveHost(host string) (string, error) {
	ep, err := ResolveEndpoint(host)
	if err != nil {
		return "", err
	}
	return ep.String(), nil
}
