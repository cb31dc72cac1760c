// Package cmd wires the command line entry points.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/keydex/keydex/btree"
	"github.com/keydex/keydex/config"
	"github.com/keydex/keydex/pkg/x_log"
)

var (
	cfgPath     string
	maxKeysFlag int

	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "keydex",
	Short: "In-memory ordered index with auto-generated keys",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		if maxKeysFlag > 0 {
			cfg.MaxKeys = maxKeysFlag
		}
		x_log.InitWithConfig(&cfg.Log, "keydex")
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log := x_log.L()
		log.Fatal().Err(err).Msg("command failed")
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (default ./keydex.json)")
	rootCmd.PersistentFlags().IntVar(&maxKeysFlag, "max-keys", 0, "override max keys per node")
}

// newTree builds the engine from the loaded config.
func newTree() *btree.Tree {
	var opts []btree.Option
	if cfg.Seed != 0 {
		opts = append(opts, btree.WithSeed(cfg.Seed))
	}
	return btree.New(cfg.MaxKeys, opts...)
}
