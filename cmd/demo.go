package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/keydex/keydex/render"
)

var demoCount int

// demoCmd fills a fresh tree with random values and prints the shape
// after every insert, a quick way to watch splits happen.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Insert random values and print the tree after each step",
	RunE: func(cmd *cobra.Command, args []string) error {
		tree := newTree()
		rend := render.New(cfg.Theme)

		for i := 0; i < demoCount; i++ {
			key := tree.AddRandom()
			value, _ := tree.Search(key)
			fmt.Fprintf(os.Stdout, "insert #%d: key=%d value=%d\n", i+1, key, value)
			fmt.Fprint(os.Stdout, rend.Render(tree))
			fmt.Fprintln(os.Stdout, rend.Summary(tree))
			fmt.Fprintln(os.Stdout)
		}
		return nil
	},
}

func init() {
	demoCmd.Flags().IntVar(&demoCount, "n", 10, "number of random inserts")
	rootCmd.AddCommand(demoCmd)
}
