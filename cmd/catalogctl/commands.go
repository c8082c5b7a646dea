package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"ndjimba/internal/adapters/catalogfile"
	"ndjimba/internal/adapters/memory"
	postgres_adapter "ndjimba/internal/adapters/postgres"
	"ndjimba/internal/core/domain"
	"ndjimba/internal/core/search"
	"ndjimba/pkg/postgres"
)

// loadRecords reads the catalog file at path, or the built-in sample when path is empty.
func loadRecords(ctx context.Context, path string) ([]domain.Property, error) {
	if path == "" {
		return memory.NewSampleCatalog().All(ctx)
	}
	catalog, err := catalogfile.Load(path)
	if err != nil {
		return nil, err
	}
	return catalog.All(ctx)
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <catalog.json>",
		Short: "Check a catalog file against the schema and the listing rules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := catalogfile.Load(args[0])
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid: %d listings\n", args[0], catalog.Len())
			return nil
		},
	}
}

func importCmd() *cobra.Command {
	var (
		databaseURL  string
		ensureSchema bool
	)
	cmd := &cobra.Command{
		Use:   "import <catalog.json>",
		Short: "Replace the PostgreSQL catalog with the content of a catalog file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			records, err := loadRecords(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to load %s: %w", args[0], err)
			}

			pool, err := postgres.NewClient(ctx, postgres.Config{DatabaseURL: databaseURL})
			if err != nil {
				return err
			}
			defer pool.Close()

			if ensureSchema {
				if err := postgres_adapter.EnsureSchema(ctx, pool); err != nil {
					return err
				}
			}

			repo, err := postgres_adapter.NewCatalogRepository(pool)
			if err != nil {
				return err
			}
			n, err := repo.ReplaceAll(ctx, records)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d listings\n", n)
			return nil
		},
	}
	cmd.Flags().StringVar(&databaseURL, "database-url", os.Getenv("DATABASE_URL"), "PostgreSQL connection URL")
	cmd.Flags().BoolVar(&ensureSchema, "ensure-schema", true, "create the tables when missing")
	return cmd
}

func exportCmd() *cobra.Command {
	var (
		databaseURL string
		output      string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a catalog file from PostgreSQL, or from the built-in sample",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var records []domain.Property
			if databaseURL == "" {
				var err error
				if records, err = loadRecords(ctx, ""); err != nil {
					return err
				}
			} else {
				pool, err := postgres.NewClient(ctx, postgres.Config{DatabaseURL: databaseURL})
				if err != nil {
					return err
				}
				defer pool.Close()

				repo, err := postgres_adapter.NewCatalogRepository(pool)
				if err != nil {
					return err
				}
				if records, err = repo.All(ctx); err != nil {
					return err
				}
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" && output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			return catalogfile.Encode(w, records)
		},
	}
	cmd.Flags().StringVar(&databaseURL, "database-url", "", "read the catalog from this PostgreSQL database instead of the sample")
	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file")
	return cmd
}

type searchFlags struct {
	file          string
	city          string
	neighborhoods []string
	types         []string
	priceRange    int
	minRooms      int
	minSurface    float64
	query         string
	sort          string
}

func searchCmd() *cobra.Command {
	var f searchFlags
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Filter and sort a catalog the way the search screen does",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := loadRecords(cmd.Context(), f.file)
			if err != nil {
				return err
			}

			session := search.NewSession(records)
			if err := applySearchFlags(session.Filters(), cmd, f); err != nil {
				return err
			}
			session.Apply()
			results, err := session.ChangeSort(domain.SortKey(f.sort))
			if err != nil {
				return err
			}
			return printResults(cmd.OutOrStdout(), results, session.SortKey())
		},
	}
	cmd.Flags().StringVar(&f.file, "file", "", "catalog file (built-in sample when empty)")
	cmd.Flags().StringVar(&f.city, "city", "", "city")
	cmd.Flags().StringSliceVar(&f.neighborhoods, "neighborhood", nil, "neighborhood, repeatable")
	cmd.Flags().StringSliceVar(&f.types, "type", nil, "property type, repeatable")
	cmd.Flags().IntVar(&f.priceRange, "price-range", -1, "price bracket index")
	cmd.Flags().IntVar(&f.minRooms, "min-rooms", 0, "minimum number of rooms")
	cmd.Flags().Float64Var(&f.minSurface, "min-surface", 0, "minimum surface in m²")
	cmd.Flags().StringVarP(&f.query, "query", "q", "", "free text")
	cmd.Flags().StringVar(&f.sort, "sort", string(domain.DefaultSortKey), "price_asc, price_desc or date_desc")
	return cmd
}

func applySearchFlags(filters *domain.SearchFilters, cmd *cobra.Command, f searchFlags) error {
	if f.city != "" {
		city, err := domain.ParseCity(f.city)
		if err != nil {
			return err
		}
		if err := filters.SelectCity(city); err != nil {
			return err
		}
	}
	for _, n := range f.neighborhoods {
		if err := filters.ToggleNeighborhood(n); err != nil {
			return err
		}
	}
	for _, raw := range f.types {
		t, err := domain.ParsePropertyType(raw)
		if err != nil {
			return err
		}
		if err := filters.TogglePropertyType(t); err != nil {
			return err
		}
	}
	if f.priceRange >= 0 {
		if err := filters.SelectPriceRange(f.priceRange); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("min-rooms") {
		v := f.minRooms
		filters.MinRooms = &v
	}
	if cmd.Flags().Changed("min-surface") {
		v := f.minSurface
		filters.MinSurface = &v
	}
	filters.Query = strings.TrimSpace(f.query)
	return nil
}

func printResults(w io.Writer, results []domain.Property, key domain.SortKey) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\tTITLE\tTYPE\tPRICE\tNEIGHBORHOOD\tCITY\tCREATED\n")
	for _, p := range results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\t%s\n",
			p.ID, p.Title, p.Type.Label(), p.Price, p.Neighborhood, p.City, p.CreatedAt.Format("2006-01-02"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d listings, sorted by %s\n", len(results), key)
	return err
}
