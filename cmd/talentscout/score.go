package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/talentscout/internal/config"
	"github.com/jonathan/talentscout/internal/observability"
	"github.com/jonathan/talentscout/internal/scoring"
	"github.com/jonathan/talentscout/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score and rank candidates from a retrieval result file",
	Long:  "Deterministically scores a batch of semantic-search hits against a recruiter query, producing a ranked candidates JSON sorted by overall score.",
	RunE:  runScore,
}

var (
	scoreInput    string
	scoreOutput   string
	scoreMinScore int
	scoreVerbose  bool
)

// ScoreInput is the on-disk input format for the score command: the recruiter
// query alongside the raw retrieval hits.
type ScoreInput struct {
	QueryText       string                  `json:"query_text"`
	RequiredSkills  []string                `json:"required_skills"`
	ExperienceRange types.ExperienceRange   `json:"experience_range"`
	Candidates      []types.CandidateRecord `json:"candidates"`
}

// ScoreOutput is the on-disk output format for the score command.
type ScoreOutput struct {
	Candidates []types.ScoredCandidate `json:"candidates"`
	Averages   types.AverageScores     `json:"averages"`
}

func init() {
	scoreCmd.Flags().StringVarP(&scoreInput, "input", "i", "", "Path to input retrieval results JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreOutput, "out", "o", "", "Path to output ranked candidates JSON file (required)")
	scoreCmd.Flags().IntVar(&scoreMinScore, "min-score", 0, "Drop candidates whose overall score is below this value (0-100)")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print a score breakdown for the top candidates")

	if err := scoreCmd.MarkFlagRequired("input"); err != nil {
		panic(fmt.Sprintf("failed to mark input flag as required: %v", err))
	}
	if err := scoreCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	content, err := os.ReadFile(scoreInput)
	if err != nil {
		return fmt.Errorf("failed to read input file %s: %w", scoreInput, err)
	}

	var input ScoreInput
	if err := json.Unmarshal(content, &input); err != nil {
		return fmt.Errorf("failed to unmarshal input JSON: %w", err)
	}
	if len(input.Candidates) == 0 {
		return fmt.Errorf("input contains no candidates")
	}

	if scoreMinScore == 0 {
		scoreMinScore = config.FromEnv().ScoreThreshold
	}
	if scoreMinScore < 0 || scoreMinScore > 100 {
		return fmt.Errorf("min-score must be in [0, 100], got %d", scoreMinScore)
	}

	result := scoring.ScoreAndRank(input.Candidates, input.RequiredSkills, input.QueryText, input.ExperienceRange)
	if scoreMinScore > 0 {
		// Averages are computed over the reported candidates only.
		kept := result.Candidates[:0]
		for _, c := range result.Candidates {
			if c.OverallScore >= scoreMinScore {
				kept = append(kept, c)
			}
		}
		result.Candidates = kept
	}
	averages := scoring.AverageScores(result)

	jsonOutput, err := json.MarshalIndent(ScoreOutput{
		Candidates: result.Candidates,
		Averages:   averages,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal ranked candidates to JSON: %w", err)
	}

	if err := writeOutputFile(scoreOutput, jsonOutput); err != nil {
		return err
	}

	if scoreVerbose {
		observability.NewPrinter(os.Stdout).PrintRankedCandidates(result, averages)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Successfully ranked %d candidates to %s\n", len(result.Candidates), scoreOutput)

	return nil
}

// writeOutputFile writes data to path, creating the parent directory first.
func writeOutputFile(path string, data []byte) error {
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
