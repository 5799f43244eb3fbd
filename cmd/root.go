package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/offerscore/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "offerscore",
	Short: "Affiliate offer scoring pipeline",
	Long:  "Scores affiliate sales pages across page quality, copywriting, pricing, SEO, CTR potential, seasonality, and social presence, then ranks the products and narrates the comparison.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
