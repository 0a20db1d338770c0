// Package logging configures the process-wide zerolog logger. Output is quiet
// by default so command output stays clean; debug mode turns on a console
// writer on stderr.
package logging

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const debugEnvVar = "VIDEO_DASHBOARD_DEBUG"

// Setup installs the global logger. Call once from the CLI entrypoint.
func Setup(debug bool) {
	if !debug && os.Getenv(debugEnvVar) == "" {
		zerolog.SetGlobalLevel(zerolog.Disabled)
		return
	}
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

// Component returns a logger tagged with a component identifier.
func Component(name string) zerolog.Logger {
	return log.With().Str("cmp", name).Logger()
}
