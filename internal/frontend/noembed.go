//go:build !embed

package frontend

import "net/http"

// Handler returns nil when the binary is built without -tags embed; main
// falls back to serving the viewer from the filesystem.
func Handler() http.Handler {
	return nil
}
