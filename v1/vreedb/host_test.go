package vreedb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveHost(t *testing.T) {
	tests := []struct {
		name string
		host string
		want string
	}{
		{"empty", "", "http://127.0.0.1:8080"},
		{"bare hostname", "a.b.c", "http://a.b.c:8080"},
		{"hostname with port", "a.b.c:1234", "http://a.b.c:1234"},
		{"http scheme", "http://a.b.c", "http://a.b.c:8080"},
		{"https scheme", "https://a.b.c", "https://a.b.c:443"},
		{"http scheme with port", "http://a.b.c:1234", "http://a.b.c:1234"},
		{"https scheme with port", "https://a.b.c:8443", "https://a.b.c:8443"},
		{"other scheme keeps 8080", "ftp://a.b.c", "ftp://a.b.c:8080"},
		{"myhost", "myhost", "http://myhost:8080"},
		{"myhost with port", "myhost:9000", "http://myhost:9000"},
		{"https myhost", "https://myhost", "https://myhost:443"},
		{"uppercase scheme is not https", "HTTPS://MyHost", "HTTPS://myhost:8080"},
		{"port zero counts as absent", "https://a.b.c:0", "https://a.b.c:443"},
		{"empty port", "a.b.c:", "http://a.b.c:8080"},
		{"userinfo and path dropped", "user:pw@db.local:7000/api", "http://db.local:7000"},
		{"ipv6 literal", "[::1]:9000", "http://[::1]:9000"},
		{"ipv4 literal", "10.0.0.7", "http://10.0.0.7:8080"},
		{"nothing after separator", "https://", "http://https:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveHost(tt.host)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveHostErrors(t *testing.T) {
	for _, host := range []string{
		"myhost:abc",
		"myhost:70000",
		"http://a b",
		"://a.b.c",
	} {
		t.Run(host, func(t *testing.T) {
			_, err := ResolveHost(host)
			require.Error(t, err)
			assert.True(t, IsHostResolutionError(err), "got %v", err)
		})
	}
}

func TestResolveEndpointFields(t *testing.T) {
	ep, err := ResolveEndpoint("https://Vectors.Example.com")
	require.NoError(t, err)

	assert.Equal(t, Endpoint{Scheme: "https", Hostname: "vectors.example.com", Port: 443}, ep)
	assert.Equal(t, "https://vectors.example.com:443", ep.String())
}

func TestDefaultPortsPerSchemeKind(t *testing.T) {
	assert.Equal(t, 8080, defaultPorts[schemeAbsent])
	assert.Equal(t, 8080, defaultPorts[schemeHTTP])
	assert.Equal(t, 443, defaultPorts[schemeHTTPS])
	assert.Equal(t, 8080, defaultPorts[schemeOther])

	assert.Equal(t, schemeHTTP, classifyScheme("http"))
	assert.Equal(t, schemeHTTPS, classifyScheme("https"))
	assert.Equal(t, schemeOther, classifyScheme("grpc"))
	assert.Equal(t, schemeOther, classifyScheme("HTTP"))
}

func TestResolveHostOutputIsStableForHTTP(t *testing.T) {
	// Normalization is one-way in general; for http/https outputs a second
	// pass happens to change nothing.
	for _, host := range []string{"", "a.b.c:1234", "https://a.b.c"} {
		first, err := ResolveHost(host)
		require.NoError(t, err)
		second, err := ResolveHost(first)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}
