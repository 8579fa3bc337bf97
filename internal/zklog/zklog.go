// Package zklog provides a configurable logger shared by this module's components.
//
// The root logger defaults to github.com/rs/zerolog with a console writer.
package zklog

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	logger = zerolog.New(output).With().Timestamp().Logger()

	if strings.HasSuffix(os.Args[0], ".test") {
		logger = zerolog.Nop()
	}
}

// SetOutput changes the output of the global logger.
func SetOutput(w io.Writer) {
	logger = logger.Output(w)
}

// Set lets a caller override the global logger entirely.
func Set(l zerolog.Logger) {
	logger = l
}

// Disable silences all logging from this module.
func Disable() {
	logger = zerolog.Nop()
}

// Logger returns a sublogger scoped to component.
func Logger(component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}
