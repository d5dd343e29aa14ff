// Package obslog provides a configurable logger shared by the splitter and
// sampler binaries.
//
// The root logger defined by default uses github.com/rs/zerolog with a
// console writer.
package obslog

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	logger = zerolog.New(output).With().Timestamp().Logger()

	if strings.HasSuffix(os.Args[0], ".test") {
		logger = zerolog.Nop()
	}
}

// SetOutput changes the output of the global logger.
func SetOutput(w io.Writer) {
	logger = logger.Output(w)
}

// Set allows a caller to override the global logger, e.g. to stamp every
// line with a run id.
func Set(l zerolog.Logger) {
	logger = l
}

// Disable silences all logging.
func Disable() {
	logger = zerolog.Nop()
}

// Logger returns a sub-logger for a component.
func Logger(component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}
