package nix

import "net/http"

// Exported internals for tests.

var (
	RenderShellExpression = renderShellExpression
	ParseDevEnv           = parseDevEnv
)

// NewResolverForTest creates a Resolver pointed at a test server and cache.
func NewResolverForTest(apiBase, cachePath string, client *http.Client) (*Resolver, error) {
	return newResolver(apiBase, cachePath, client)
}
