// Command gallery-seed uploads a local folder of photos to the gallery bucket.
//
// Usage:
//
//	gallery-seed --dir ./photos [--dry-run]
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"salonweb/internal/config"
	"salonweb/internal/logging"
	"salonweb/internal/service"
	"salonweb/internal/storage"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		dir    string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "gallery-seed",
		Short: "Upload gallery photos to object storage",
		Long: `Uploads every image under --dir to the configured MinIO/S3 bucket
under the gallery/ prefix. The website picks new images up on its next
gallery refresh.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if !cfg.MinIO.Enabled() {
				return fmt.Errorf("MINIO_ENDPOINT is not set")
			}

			info, err := os.Stat(dir)
			if err != nil {
				return err
			}
			if !info.IsDir() {
				return fmt.Errorf("%s is not a directory", dir)
			}

			logger, err := logging.New(cfg.Development(), cfg.LogLevel)
			if err != nil {
				return err
			}
			defer logger.Sync()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			store, err := storage.NewMinIO(ctx, cfg.MinIO)
			if err != nil {
				return err
			}

			res, err := service.SeedGallery(ctx, store, os.DirFS(dir), dryRun, logger)
			if err != nil {
				return err
			}
			logger.Info("gallery_seed_complete",
				zap.Int("uploaded", len(res.Uploaded)),
				zap.Int("skipped", len(res.Skipped)),
				zap.Bool("dry_run", dryRun),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "%d uploaded, %d skipped\n", len(res.Uploaded), len(res.Skipped))
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "local directory of gallery images")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "list what would be uploaded without writing")
	_ = cmd.MarkFlagRequired("dir")
	cmd.SetContext(context.Background())

	return cmd
}
