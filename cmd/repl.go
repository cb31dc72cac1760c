package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/keydex/keydex/pkg/x_log"
	"github.com/keydex/keydex/repl"
)

// replCmd runs the interactive menu on stdin/stdout.
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive menu over one tree instance",
	RunE: func(cmd *cobra.Command, args []string) error {
		tree := newTree()
		log := x_log.With("cmd")
		log.Info().
			Int("max_keys", tree.MaxKeys()).
			Str("theme", cfg.Theme).
			Msg("starting interactive session")

		return repl.New(tree, cfg.Theme, os.Stdin, os.Stdout).Run()
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
