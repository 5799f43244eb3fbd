package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/offerscore/internal/model"
	"github.com/sells-group/offerscore/internal/pipeline"
)

var scoreCmd = &cobra.Command{
	Use:   "score <products.yaml>",
	Short: "Score and rank products from a YAML file",
	Long: `Evaluates up to five products against the nine scoring criteria, ranks
them by total score, and prints the comparison narrative.

The input file lists the products:

  products:
    - name: GlucoTrust
      url: https://example.com/glucotrust
      category: health and wellness
      paid_traffic_allowed: true
      funnel_bottom_allowed: true
      keywords:
        - term: buy glucotrust
          volume: 6000
          cpc: 2.5
      social:
        instagram_present: true
        engagement: medium

Examples:
  # Score products and print the ranked table
  offerscore score products.yaml

  # Full JSON report to a file
  offerscore score products.yaml --format json --output report.json`,
	Args: cobra.ExactArgs(1),
	RunE: runScore,
}

func init() {
	f := scoreCmd.Flags()
	f.String("output", "", "output file path (default: stdout)")
	f.String("format", "table", "output format: table or json")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cfg.Validate("evaluate"); err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	outputPath, _ := cmd.Flags().GetString("output")
	if format != "table" && format != "json" {
		return eris.Errorf("score: --format must be table or json (got %q)", format)
	}

	inputs, err := loadProducts(args[0])
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return eris.Errorf("score: no products in %s", args[0])
	}

	p, err := buildPipeline()
	if err != nil {
		return err
	}

	zap.L().Info("scoring products", zap.Int("count", len(inputs)))

	result, err := p.EvaluateBatch(ctx, inputs)
	if err != nil {
		return eris.Wrap(err, "score: evaluate batch")
	}

	w := os.Stdout
	if outputPath != "" {
		w, err = os.Create(outputPath)
		if err != nil {
			return eris.Wrapf(err, "score: create output file %s", outputPath)
		}
		defer w.Close() //nolint:errcheck
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return eris.Wrap(err, "score: encode JSON")
		}
	case "table":
		writeScoreReport(w, result)
	}

	return nil
}

func loadProducts(path string) ([]model.ProductInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "score: read %s", path)
	}

	var doc struct {
		Products []model.ProductInput `yaml:"products"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, eris.Wrapf(err, "score: parse %s", path)
	}
	return doc.Products, nil
}

func writeScoreReport(w *os.File, result *pipeline.BatchResult) {
	fmt.Fprintf(w, "%-4s %-30s %-26s %8s %7s %8s\n",
		"Rank", "Product", "Category", "Total", "Grade", "Avg CPC")
	fmt.Fprintln(w, strings.Repeat("-", 88))
	for i, r := range result.Reports {
		name := r.Name
		if len(name) > 30 {
			name = name[:27] + "..."
		}
		fmt.Fprintf(w, "%-4d %-30s %-26s %8.2f %7.2f %8s\n",
			i+1, name, r.Category, r.TotalScore, r.FinalGrade, formatAvgCPC(r.AvgCPC))
	}

	for _, r := range result.Reports {
		fmt.Fprintf(w, "\n=== %s ===\n", r.Name)
		fmt.Fprintf(w, "  Page quality:        %6.2f\n", r.PageQuality)
		fmt.Fprintf(w, "  Copywriting:         %6.2f\n", r.Copywriting)
		fmt.Fprintf(w, "  Benefits and offers: %6.2f\n", r.BenefitsOffers)
		fmt.Fprintf(w, "  Price to value:      %6.2f\n", r.PriceValue)
		fmt.Fprintf(w, "  Price range:         %6.2f\n", r.PriceRange)
		fmt.Fprintf(w, "  Seasonality:         %6.2f\n", r.Seasonality)
		fmt.Fprintf(w, "  SEO keywords:        %6.2f\n", r.SEOKeywords)
		fmt.Fprintf(w, "  CTR potential:       %6.2f\n", r.CTR)
		fmt.Fprintf(w, "  Social presence:     %6.2f\n", r.SocialPresence)
		fmt.Fprintf(w, "  Community (info):    %6.2f\n", r.CommunityEngagement)
		if r.SeasonalityNote != "" {
			fmt.Fprintf(w, "  %s\n", r.SeasonalityNote)
		}
		if r.CTRNote != "" {
			fmt.Fprintf(w, "  %s\n", r.CTRNote)
		}
		for _, alert := range r.SEODetail.CPCAlerts {
			fmt.Fprintf(w, "  ! %s\n", alert)
		}
	}

	writeNarrative(w, "Cost-benefit", result.CostBenefit)
	writeNarrative(w, "Total score", result.TotalScore)
	writeNarrative(w, "Conclusion", result.Conclusion)

	if len(result.Skipped) > 0 {
		fmt.Fprintf(w, "\nSkipped:\n")
		for _, s := range result.Skipped {
			fmt.Fprintf(w, "  %s: %s\n", s.Name, s.Reason)
		}
	}
}

func writeNarrative(w *os.File, title string, lines []string) {
	if len(lines) == 0 {
		return
	}
	fmt.Fprintf(w, "\n--- %s ---\n", title)
	for _, line := range lines {
		fmt.Fprintf(w, "%s\n", line)
	}
}

func formatAvgCPC(v float64) string {
	if v == 0 {
		return "n/a"
	}
	return fmt.Sprintf("$%.2f", v)
}
