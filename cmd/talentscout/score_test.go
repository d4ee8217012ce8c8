package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talentscout/internal/types"
)

func writeScoreInput(t *testing.T, input ScoreInput) string {
	t.Helper()
	data, err := json.Marshal(input)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "input.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestRunScore(t *testing.T) {
	semantic := 90.0
	scoreInput = writeScoreInput(t, ScoreInput{
		QueryText:      "senior go engineer",
		RequiredSkills: []string{"go"},
		Candidates: []types.CandidateRecord{
			{CandidateID: "c1", Name: "Ada", Skills: []string{"Go"}, SemanticMatchScore: &semantic},
			{CandidateID: "c2", Name: "Bob", Skills: []string{"Cobol"}},
		},
	})
	scoreOutput = filepath.Join(t.TempDir(), "out", "ranked.json")
	scoreMinScore = 0
	scoreVerbose = false

	require.NoError(t, runScore(nil, nil))

	data, err := os.ReadFile(scoreOutput)
	require.NoError(t, err)

	var output ScoreOutput
	require.NoError(t, json.Unmarshal(data, &output))
	require.Len(t, output.Candidates, 2)
	assert.Equal(t, "c1", output.Candidates[0].CandidateID)
	assert.GreaterOrEqual(t, output.Candidates[0].OverallScore, output.Candidates[1].OverallScore)
	assert.Greater(t, output.Averages.Overall, 0)
}

func TestRunScore_MinScoreFiltersLowCandidates(t *testing.T) {
	semantic := 95.0
	scoreInput = writeScoreInput(t, ScoreInput{
		QueryText:      "senior go engineer",
		RequiredSkills: []string{"go"},
		Candidates: []types.CandidateRecord{
			{CandidateID: "strong", Skills: []string{"Go"}, SemanticMatchScore: &semantic},
			{CandidateID: "weak", Skills: []string{"Cobol"}},
		},
	})
	scoreOutput = filepath.Join(t.TempDir(), "ranked.json")
	scoreMinScore = 50
	scoreVerbose = false
	t.Cleanup(func() { scoreMinScore = 0 })

	require.NoError(t, runScore(nil, nil))

	data, err := os.ReadFile(scoreOutput)
	require.NoError(t, err)

	var output ScoreOutput
	require.NoError(t, json.Unmarshal(data, &output))
	require.Len(t, output.Candidates, 1)
	assert.Equal(t, "strong", output.Candidates[0].CandidateID)
}

func TestRunScore_MissingInputFile(t *testing.T) {
	scoreInput = filepath.Join(t.TempDir(), "missing.json")
	scoreOutput = filepath.Join(t.TempDir(), "ranked.json")

	err := runScore(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read input file")
}

func TestRunScore_EmptyCandidates(t *testing.T) {
	scoreInput = writeScoreInput(t, ScoreInput{QueryText: "anything"})
	scoreOutput = filepath.Join(t.TempDir(), "ranked.json")

	err := runScore(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no candidates")
}
