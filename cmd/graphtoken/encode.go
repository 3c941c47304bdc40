package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/satisfactorytools/graphtoken/envelope"
	"github.com/satisfactorytools/graphtoken/gamedata"
	"github.com/satisfactorytools/graphtoken/graphcodec"
	"github.com/satisfactorytools/graphtoken/transport"
	"github.com/spf13/cobra"
)

func newEncodeCmd() *cobra.Command {
	var inputPath string

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode a JSON graph document (file or stdin) into a share token",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(inputPath)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			start := time.Now()
			tables := graphcodec.Tables{Recipes: gamedata.Table{}, Items: gamedata.Table{}}

			digest, err := transport.Encode(data, tables)
			if err != nil {
				return fmt.Errorf("encode: %w", err)
			}

			token := envelope.Wrap(digest)

			log.Info().
				Int("digest_bytes", len(digest)).
				Int("token_bytes", len(token)).
				Dur("elapsed", time.Since(start)).
				Msg("encoded graph token")

			fmt.Println(token)

			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "path to JSON graph document (default: stdin)")

	return cmd
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}

	return os.ReadFile(path)
}
