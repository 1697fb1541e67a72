// Command qr_prune applies the QR retention cap to the QR directory once and
// lists what is left. It is meant for cron jobs and for shrinking the store
// after lowering QR_MAX_FILES.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"relay/internal/config"
	"relay/internal/repositories"

	"github.com/spf13/cobra"
)

func main() {
	config.LoadEnv()
	cfg := config.Load()

	if err := rootCmd(cfg).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd(cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "qr_prune",
		Short: "Delete QR codes beyond the most recent N",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			keep, _ := cmd.Flags().GetInt("keep")
			list, _ := cmd.Flags().GetBool("list")
			return runPrune(cmd.Context(), dir, keep, list)
		},
	}

	cmd.Flags().StringP("dir", "d", cfg.QRDir, "QR code directory")
	cmd.Flags().IntP("keep", "k", cfg.QRMaxFiles, "Number of most recent files to keep")
	cmd.Flags().BoolP("list", "l", false, "Print the remaining files")

	return cmd
}

func runPrune(ctx context.Context, dir string, keep int, list bool) error {
	if keep < 1 {
		return fmt.Errorf("keep must be positive, got %d", keep)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	repo, err := repositories.NewQRCodeRepository(dir, keep)
	if err != nil {
		return err
	}

	removed, err := repo.EvictBeyond(ctx, keep)
	if err != nil {
		return fmt.Errorf("prune %s: %w", dir, err)
	}
	fmt.Printf("Pruned %d QR code(s) from %s, keeping at most %d\n", removed, dir, keep)

	if !list {
		return nil
	}
	files, err := repo.List(ctx)
	if err != nil {
		return fmt.Errorf("list %s: %w", dir, err)
	}
	for _, f := range files {
		fmt.Printf("  %s\t%d bytes\t%s\n", f.Name, f.Size, f.ModTime.Format(time.RFC3339))
	}
	return nil
}
