// Package static holds the page served at the frontend base path.
package static

import (
	_ "embed"
)

//go:embed index.html
var indexHTML []byte

// Page returns the bundled index page. The slice is shared; callers must not
// modify it.
func Page() []byte {
	return indexHTML
}
