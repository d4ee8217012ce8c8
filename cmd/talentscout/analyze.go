package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/talentscout/internal/analysis"
	"github.com/jonathan/talentscout/internal/config"
	"github.com/jonathan/talentscout/internal/llm"
	"github.com/jonathan/talentscout/internal/observability"
	"github.com/jonathan/talentscout/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze and rank a campaign's interviews",
	Long:  "Runs LLM judgment calls over completed interview transcripts and produces a tiered campaign ranking JSON. Requires Gemini API keys in the environment.",
	RunE:  runAnalyze,
}

var (
	analyzeInput       string
	analyzeICP         string
	analyzeOutput      string
	analyzeConcurrency int
	analyzeVerbose     bool
)

// AnalyzeInput is the on-disk input format for the analyze command.
type AnalyzeInput struct {
	Interviews []types.InterviewRecord `json:"interviews"`
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeInput, "input", "i", "", "Path to input interviews JSON file (required)")
	analyzeCmd.Flags().StringVar(&analyzeICP, "icp", "", "Path to ICP profile JSON file (optional)")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "out", "o", "", "Path to output campaign report JSON file (required)")
	analyzeCmd.Flags().IntVar(&analyzeConcurrency, "concurrency", 0, "Number of interviews analyzed in parallel (default sequential)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print the campaign report and API key usage")

	if err := analyzeCmd.MarkFlagRequired("input"); err != nil {
		panic(fmt.Sprintf("failed to mark input flag as required: %v", err))
	}
	if err := analyzeCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	content, err := os.ReadFile(analyzeInput)
	if err != nil {
		return fmt.Errorf("failed to read input file %s: %w", analyzeInput, err)
	}

	var input AnalyzeInput
	if err := json.Unmarshal(content, &input); err != nil {
		return fmt.Errorf("failed to unmarshal interviews JSON: %w", err)
	}
	if len(input.Interviews) == 0 {
		return fmt.Errorf("input contains no interviews")
	}

	var icp *types.ICPProfile
	if analyzeICP != "" {
		icpContent, err := os.ReadFile(analyzeICP)
		if err != nil {
			return fmt.Errorf("failed to read ICP profile file %s: %w", analyzeICP, err)
		}
		icp = &types.ICPProfile{}
		if err := json.Unmarshal(icpContent, icp); err != nil {
			return fmt.Errorf("failed to unmarshal ICP profile JSON: %w", err)
		}
	}

	cfg := config.FromEnv()
	if len(cfg.APIKeys) == 0 {
		return fmt.Errorf("GEMINI_API_KEY or GEMINI_API_KEYS environment variable is required")
	}
	concurrency := analyzeConcurrency
	if concurrency == 0 {
		concurrency = cfg.Concurrency
	}

	ctx := cmd.Context()
	keyring, err := llm.NewKeyring(cfg.APIKeys, 60, time.Minute)
	if err != nil {
		return fmt.Errorf("failed to create keyring: %w", err)
	}
	client, err := llm.NewClient(ctx, llm.DefaultConfig(), keyring)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	logger, err := buildLogger(analyzeVerbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	analyzer := analysis.NewAnalyzer(
		analysis.NewLLMJudge(client), logger,
		analysis.WithConcurrency(concurrency),
	)

	report := analyzer.RankCampaignInterviews(ctx, input.Interviews, icp)

	jsonOutput, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal campaign report to JSON: %w", err)
	}
	if err := writeOutputFile(analyzeOutput, jsonOutput); err != nil {
		return err
	}

	if analyzeVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintCampaignReport(report)
		printer.PrintKeyUsage(keyring.Stats())
	}
	_, _ = fmt.Fprintf(os.Stdout, "Analyzed %d interviews (%d ranked, %d failed) to %s\n",
		len(input.Interviews), len(report.Ranked), len(report.Failures), analyzeOutput)

	return nil
}
