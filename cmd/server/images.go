package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"storefront/internal/cms"
	"storefront/internal/content"
	"storefront/internal/models"
)

type imageCheck struct {
	ProductID string
	Kind      string
	Path      string
	Status    string
}

const (
	statusOK      = "ok"
	statusMissing = "missing"
	statusRemote  = "remote"
	statusEmpty   = "empty"
)

// checkImages looks up every main and per-color image of the catalog under staticDir.
func checkImages(catalog *models.Catalog, staticDir string) []imageCheck {
	var out []imageCheck
	check := func(id, kind, path string) {
		c := imageCheck{ProductID: id, Kind: kind, Path: path}
		switch {
		case strings.TrimSpace(path) == "":
			c.Status = statusEmpty
		case strings.HasPrefix(path, "http://"), strings.HasPrefix(path, "https://"):
			c.Status = statusRemote
		default:
			if _, err := os.Stat(filepath.Join(staticDir, filepath.FromSlash(strings.TrimLeft(path, "/")))); err != nil {
				c.Status = statusMissing
			} else {
				c.Status = statusOK
			}
		}
		out = append(out, c)
	}

	for _, p := range catalog.Products() {
		check(p.ID, "main", p.ImagePath)
		for _, img := range p.Images {
			check(p.ID, "color "+img.Color, img.ImagePath)
		}
	}
	return out
}

func (a *app) catalog(ctx context.Context) (*models.Catalog, error) {
	source := content.NewSource(cms.New(a.cfg.CMS, a.logger), a.cfg.ContentDir, a.cfg.StaticDir, a.logger)
	return source.Products(ctx)
}

func newVerifyImagesCommand(a *app) *cobra.Command {
	var strict, all bool
	cmd := &cobra.Command{
		Use:   "verify-images",
		Short: "Check that every catalog image exists under the static directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := a.catalog(cmd.Context())
			if err != nil {
				return err
			}
			checks := checkImages(catalog, a.cfg.StaticDir)
			missing := writeImageReport(cmd.OutOrStdout(), checks, all)
			if strict && missing > 0 {
				return fmt.Errorf("%d images missing", missing)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit with an error when images are missing")
	cmd.Flags().BoolVar(&all, "all", false, "List every image, not only the missing ones")
	return cmd
}

func writeImageReport(w io.Writer, checks []imageCheck, all bool) int {
	var rows [][]string
	found, missing := 0, 0
	for _, c := range checks {
		switch c.Status {
		case statusOK:
			if c.Kind == "main" {
				found++
			}
		case statusMissing, statusEmpty:
			missing++
		}
		if all || c.Status == statusMissing || c.Status == statusEmpty {
			rows = append(rows, []string{c.ProductID, c.Kind, c.Path, c.Status})
		}
	}
	fmt.Fprintf(w, "Found %d main images\n", found)
	if len(rows) > 0 {
		fmt.Fprintln(w, renderTable([]string{"Product", "Image", "Path", "Status"}, rows))
	}
	if missing == 0 {
		fmt.Fprintln(w, "All images exist!")
	} else {
		fmt.Fprintf(w, "Missing %d images\n", missing)
	}
	return missing
}

func newCheckPathsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check-paths",
		Short: "Print the main image path of every product",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := a.catalog(cmd.Context())
			if err != nil {
				return err
			}
			var rows [][]string
			for _, p := range catalog.Products() {
				path := p.ImagePath
				if path == "" {
					path = "MISSING"
				}
				rows = append(rows, []string{p.ID, p.Name, path, fmt.Sprint(len(p.Images))})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"ID", "Name", "Image path", "Colors"}, rows, 4))
			return nil
		},
	}
}
