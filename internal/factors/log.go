package factors

import "github.com/rs/zerolog"

// logger is used for embedded metadata parsing diagnostics.
// Defaults to a no-op logger until SetLogger is called.
var logger = zerolog.Nop()

// SetLogger injects the logger used by this package.
func SetLogger(l zerolog.Logger) {
	logger = l
}
