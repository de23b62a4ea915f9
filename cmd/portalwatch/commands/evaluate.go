package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/portalwatch/backend/internal/contracts"
	"github.com/portalwatch/backend/internal/signals"
	"github.com/portalwatch/backend/pkg/config"
	"github.com/portalwatch/backend/pkg/logger"
)

// evaluateCmd represents the evaluate command
var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Estimate transfer risk for a player or team",
	Long: `Aggregates signals from the configured sources and prints the
transfer risk probability and per-factor breakdown.

Example:
  go run ./cmd/portalwatch evaluate --year 2025 --team "Ohio State" --player "Marcus Webb"
  go run ./cmd/portalwatch evaluate --year 2025 --team Akron --nil-score 0.9 --json`,
	RunE: runEvaluate,
}

var (
	evalYear        int
	evalTeam        string
	evalPlayer      string
	evalNILScore    float64
	evalSentiment   float64
	evalDistance    float64
	evalPlayingTime float64
	evalJSON        bool
)

func init() {
	rootCmd.AddCommand(evaluateCmd)

	evaluateCmd.Flags().IntVar(&evalYear, "year", 0, "season year (required)")
	evaluateCmd.Flags().StringVar(&evalTeam, "team", "", "team name")
	evaluateCmd.Flags().StringVar(&evalPlayer, "player", "", "player name")
	evaluateCmd.Flags().Float64Var(&evalNILScore, "nil-score", 0, "override NIL collective score (0-1)")
	evaluateCmd.Flags().Float64Var(&evalSentiment, "sentiment", 0, "override social sentiment (0-1)")
	evaluateCmd.Flags().Float64Var(&evalDistance, "distance", 0, "override distance from home in miles")
	evaluateCmd.Flags().Float64Var(&evalPlayingTime, "playing-time", 0, "override playing time share (0-1)")
	evaluateCmd.Flags().BoolVar(&evalJSON, "json", false, "print the full result as JSON")

	evaluateCmd.MarkFlagRequired("year")
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	log := logger.New(cfg)

	aggregator, scorer := buildCore(cfg, log, nil)

	req := signals.Request{
		Year:   evalYear,
		Team:   evalTeam,
		Player: evalPlayer,
	}
	flags := cmd.Flags()
	if flags.Changed("nil-score") {
		req.Overrides.NILScore = &evalNILScore
	}
	if flags.Changed("sentiment") {
		req.Overrides.SocialSentiment = &evalSentiment
	}
	if flags.Changed("distance") {
		req.Overrides.DistanceFromHomeMiles = &evalDistance
	}
	if flags.Changed("playing-time") {
		req.Overrides.PlayingTime = &evalPlayingTime
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	record, err := aggregator.Aggregate(ctx, req)
	if err != nil {
		return err
	}

	result := scorer.Score(record, nil)

	if evalJSON {
		return printEvaluationJSON(record, result)
	}
	printEvaluation(record, result)
	return nil
}

func printEvaluation(record *contracts.SignalRecord, result contracts.Result) {
	fmt.Println()
	if record.Player != "" {
		fmt.Printf("Player:      %s\n", record.Player)
	}
	if record.Team != "" {
		fmt.Printf("Team:        %s\n", record.Team)
	}
	fmt.Printf("Year:        %d\n", record.Year)
	fmt.Printf("Probability: %.1f%%\n", result.Probability)
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FACTOR\tRISK\tWEIGHT\tCONTRIBUTION")
	for _, entry := range result.Breakdown {
		fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.2f\n",
			entry.Factor, entry.Risk, entry.Weight, entry.Contribution)
	}
	w.Flush()
	fmt.Println()
}

func printEvaluationJSON(record *contracts.SignalRecord, result contracts.Result) error {
	out := map[string]interface{}{
		"player":      record.Player,
		"team":        record.Team,
		"year":        record.Year,
		"probability": result.Probability,
		"breakdown":   result.Breakdown,
		"signals":     record,
	}

	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
