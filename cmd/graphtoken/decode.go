package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/satisfactorytools/graphtoken/envelope"
	"github.com/satisfactorytools/graphtoken/gamedata"
	"github.com/satisfactorytools/graphtoken/graphcodec"
	"github.com/satisfactorytools/graphtoken/transport"
	"github.com/spf13/cobra"
)

func newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [token]",
		Short: "Decode a share token (argument or stdin) back into a JSON graph document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := readToken(args)
			if err != nil {
				return fmt.Errorf("read token: %w", err)
			}

			start := time.Now()

			digest, err := envelope.Unwrap(token)
			if err != nil {
				return fmt.Errorf("unwrap token: %w", err)
			}

			tables := graphcodec.Tables{Recipes: gamedata.Table{}, Items: gamedata.Table{}}

			out, err := transport.Decode(digest, tables)
			if err != nil {
				return fmt.Errorf("decode: %w", err)
			}

			log.Info().
				Int("token_bytes", len(token)).
				Int("digest_bytes", len(digest)).
				Dur("elapsed", time.Since(start)).
				Msg("decoded graph token")

			fmt.Println(string(out))

			return nil
		},
	}

	return cmd
}

func readToken(args []string) (string, error) {
	if len(args) == 1 {
		return strings.TrimSpace(args[0]), nil
	}

	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
	}

	return strings.TrimSpace(scanner.Text()), nil
}
