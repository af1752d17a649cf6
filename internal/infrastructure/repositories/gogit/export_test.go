//go:build unit

package gogit

// WithContextBytes exposes withContext to the external test package.
var WithContextBytes = withContext[[]byte] //nolint:gochecknoglobals // test export
