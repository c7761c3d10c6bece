package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Urgush/jellyork/internal/catalog"
	"github.com/Urgush/jellyork/internal/render"
	"github.com/Urgush/jellyork/internal/scancache"
)

var (
	generateSort         string
	generateOutput       string
	generateItemsPerPage int
	generateWorkers      int
	generateNoCache      bool
)

var generateCmd = &cobra.Command{
	Use:   "generate <library-root>",
	Short: "Scan a library and render the catalog document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := newLogger(cfg)

		opts := generateOptions{
			root:         args[0],
			sort:         cfg.Catalog.Sort,
			output:       cfg.Catalog.Output,
			itemsPerPage: cfg.Catalog.ItemsPerPage,
			workers:      cfg.Catalog.Workers,
		}
		if cmd.Flags().Changed("sort") {
			opts.sort = generateSort
		}
		if cmd.Flags().Changed("output") {
			opts.output = generateOutput
		}
		if cmd.Flags().Changed("items-per-page") {
			opts.itemsPerPage = generateItemsPerPage
		}
		if cmd.Flags().Changed("workers") {
			opts.workers = generateWorkers
		}
		if cfg.Cache.Enabled && !generateNoCache {
			opts.cachePath = cfg.Cache.Path
		}

		renderer := render.NewTextRenderer(opts.itemsPerPage)
		return runGenerate(cmd.Context(), opts, logger, renderer)
	},
}

func init() {
	generateCmd.Flags().StringVarP(&generateSort, "sort", "s", "title", "Sort method: title, year or type")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "-", "Output path (- for stdout)")
	generateCmd.Flags().IntVar(&generateItemsPerPage, "items-per-page", 0, "Entities per page (0 disables pagination)")
	generateCmd.Flags().IntVar(&generateWorkers, "workers", 1, "Parallel descriptor parse workers")
	generateCmd.Flags().BoolVar(&generateNoCache, "no-cache", false, "Bypass the scan cache")
	rootCmd.AddCommand(generateCmd)
}

type generateOptions struct {
	root         string
	sort         string
	output       string
	itemsPerPage int
	workers      int
	cachePath    string // empty disables the cache
}

func runGenerate(ctx context.Context, opts generateOptions, logger *slog.Logger, renderer render.Renderer) error {
	method, err := catalog.ParseSortMethod(opts.sort)
	if err != nil {
		return err
	}

	scanCfg := catalog.ScanConfig{Workers: opts.workers}
	if opts.cachePath != "" {
		if err := os.MkdirAll(filepath.Dir(opts.cachePath), 0755); err != nil {
			return fmt.Errorf("create cache dir: %w", err)
		}
		cache, err := scancache.Open(opts.cachePath)
		if err != nil {
			// The cache is an optimization; scan without it.
			logger.Warn("scan cache unavailable", "path", opts.cachePath, "error", err)
		} else {
			defer func() { _ = cache.Close() }()
			scanCfg.Cache = cache
		}
	}

	scanner := catalog.NewScanner(scanCfg, logger)
	entities, err := scanner.Scan(ctx, opts.root)
	if err != nil {
		if errors.Is(err, catalog.ErrEmptyLibrary) {
			return fmt.Errorf("%w under %s", catalog.ErrEmptyLibrary, opts.root)
		}
		return err
	}

	catalog.Sort(entities, method)
	cat := &catalog.Catalog{Entities: entities, Sort: method}

	out := os.Stdout
	if opts.output != "-" {
		f, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	if err := renderer.Render(out, cat); err != nil {
		return fmt.Errorf("render catalog: %w", err)
	}
	logger.Info("catalog rendered", "entities", len(cat.Entities), "output", opts.output)
	return nil
}
