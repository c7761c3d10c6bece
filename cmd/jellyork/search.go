package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Urgush/jellyork/internal/catalog"
)

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search <library-root> <query>",
	Short: "Fuzzy-search the library by title",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := newLogger(cfg)

		scanner := catalog.NewScanner(catalog.ScanConfig{Workers: cfg.Catalog.Workers}, logger)
		entities, err := scanner.Scan(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		matches := catalog.Search(args[1], entities)
		if len(matches) == 0 {
			fmt.Println("No matches.")
			return nil
		}
		if searchLimit > 0 && len(matches) > searchLimit {
			matches = matches[:searchLimit]
		}

		tw := table.NewWriter()
		tw.SetStyle(table.StyleRounded)
		tw.AppendHeader(table.Row{"Title", "Year", "Type", "Score", "Confidence"})
		for _, m := range matches {
			tw.AppendRow(table.Row{
				m.Entity.Title,
				m.Entity.Year,
				m.Entity.Category.String(),
				fmt.Sprintf("%.2f", m.Score),
				m.Confidence.String(),
			})
		}
		fmt.Println(tw.Render())
		return nil
	},
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 10, "Maximum results to show")
	rootCmd.AddCommand(searchCmd)
}
