package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"catalog-bridge/core/config"
	"catalog-bridge/core/logger"
	"catalog-bridge/core/soap"
	"catalog-bridge/core/storage"
	"catalog-bridge/feature/nucleo"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for catalog dump commands
	catalogLimit      int
	catalogWithImages bool
)

// catalogCmd is the parent command for catalog inspection operations.
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the upstream catalog from the command line",
	Long: `Fetch and print catalog data from the Nucleo web service without
starting the HTTP server. Useful for verifying credentials and feed health.`,
}

// catalogProductsCmd dumps the reconciled product catalog as JSON.
var catalogProductsCmd = &cobra.Command{
	Use:   "products",
	Short: "Dump the reconciled product catalog as JSON",
	Long: `Fetch both product feeds, reconcile them, and print the result to stdout.

Examples:
  # Dump the reconciled catalog
  catalog products

  # First 10 products only
  catalog products --limit 10

  # Include stored image references (uploads pictures to the bucket)
  catalog products --limit 10 --with-images`,
	RunE: runCatalogProducts,
}

// catalogBrandsCmd dumps the brand feed as JSON.
var catalogBrandsCmd = &cobra.Command{
	Use:   "brands",
	Short: "Dump the brand feed as JSON",
	RunE:  runCatalogBrands,
}

func init() {
	catalogCmd.AddCommand(catalogProductsCmd)
	catalogCmd.AddCommand(catalogBrandsCmd)

	catalogProductsCmd.Flags().IntVar(&catalogLimit, "limit", 0, "Maximum number of products to print (0 = all)")
	catalogProductsCmd.Flags().BoolVar(&catalogWithImages, "with-images", false, "Attach image sets (uploads pictures to the storage bucket)")

	RootCmd.AddCommand(catalogCmd)
}

// newCatalogService builds a fully wired service for one-shot CLI use.
func newCatalogService() (*nucleo.Service, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to storage: %w", err)
	}
	if err := storage.EnsureBucket(context.Background(), store, cfg.Storage.Bucket); err != nil {
		return nil, nil, fmt.Errorf("failed to ensure storage bucket: %w", err)
	}

	policy, err := soap.ParseBackoff(cfg.Nucleo.RetryWaits)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid retry policy: %w", err)
	}

	client := soap.NewClient(cfg.Nucleo, l)
	auth := nucleo.NewAuthenticator(client, policy, l)

	return nucleo.NewService(client, auth, store, cfg.Storage.Bucket, l, policy), l, nil
}

func runCatalogProducts(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	svc, l, err := newCatalogService()
	if err != nil {
		return err
	}

	l.Info("Fetching reconciled catalog",
		zap.Int("limit", catalogLimit),
		zap.Bool("with_images", catalogWithImages),
	)

	if catalogWithImages {
		products, err := svc.ProductsCombinedWithImages(ctx, catalogLimit)
		if err != nil {
			return fmt.Errorf("failed to fetch catalog: %w", err)
		}
		return printJSON(products)
	}

	products, err := svc.ProductsCombined(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch catalog: %w", err)
	}
	if catalogLimit > 0 && len(products) > catalogLimit {
		products = products[:catalogLimit]
	}

	return printJSON(products)
}

func runCatalogBrands(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	svc, l, err := newCatalogService()
	if err != nil {
		return err
	}

	l.Info("Fetching brand feed")

	brands, err := svc.Brands(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch brands: %w", err)
	}

	return printJSON(brands)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
