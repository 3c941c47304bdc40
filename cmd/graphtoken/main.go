// Command graphtoken is a small demonstration binary wrapping the
// encode/decode library, in the same "CLI wraps a library" shape as
// examples/compress_demo — a CLI frontend, not part of the codec itself
// (spec §1 lists host-integration glue as out of scope for the core).
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

var log zerolog.Logger

func main() {
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
