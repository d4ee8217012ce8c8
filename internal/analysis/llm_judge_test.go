package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talentscout/internal/llm"
	"github.com/jonathan/talentscout/internal/types"
)

// fakeLLMClient returns a canned response or error for every call and
// records the prompt and tier of the last request.
type fakeLLMClient struct {
	response   string
	err        error
	lastPrompt string
	lastTier   llm.ModelTier
}

func (c *fakeLLMClient) GenerateContent(_ context.Context, prompt string, tier llm.ModelTier) (string, error) {
	return c.GenerateJSON(context.Background(), prompt, tier)
}

func (c *fakeLLMClient) GenerateJSON(_ context.Context, prompt string, tier llm.ModelTier) (string, error) {
	c.lastPrompt = prompt
	c.lastTier = tier
	return c.response, c.err
}

func (c *fakeLLMClient) Close() error { return nil }

func judgeExchanges() []types.InterviewExchange {
	return []types.InterviewExchange{
		{Question: "How do you debug production incidents?", Answer: "Logs first, then traces."},
		{Question: "Describe a recent design you led.", Answer: "A sharded ingestion queue."},
	}
}

func TestLLMJudge_JudgeTechnical(t *testing.T) {
	client := &fakeLLMClient{response: `{
		"score": 0.82,
		"insights": ["clear debugging methodology"],
		"strengths": ["production experience"],
		"concerns": []
	}`}
	judge := NewLLMJudge(client)

	result, err := judge.JudgeTechnical(context.Background(), judgeExchanges(), types.DefaultICPProfile())
	require.NoError(t, err)

	assert.InDelta(t, 0.82, result.Score, 1e-9)
	assert.Equal(t, []string{"clear debugging methodology"}, result.Insights)
	assert.Equal(t, llm.TierStandard, client.lastTier)
	assert.Contains(t, client.lastPrompt, "Q1: How do you debug production incidents?")
	assert.Contains(t, client.lastPrompt, "A2: A sharded ingestion queue.")
}

func TestLLMJudge_JudgeICPAlignment(t *testing.T) {
	client := &fakeLLMClient{response: `{
		"score": 0.74,
		"sub_scores": {"technical": 0.8, "communication": 0.7, "problem_solving": 0.75, "growth": 0.7},
		"insights": ["strong ownership signals"],
		"strengths": ["matches seniority bar"],
		"concerns": ["limited client exposure"]
	}`}
	judge := NewLLMJudge(client)

	result, err := judge.JudgeICPAlignment(context.Background(), judgeExchanges(), types.DefaultICPProfile())
	require.NoError(t, err)

	assert.InDelta(t, 0.74, result.Score, 1e-9)
	assert.InDelta(t, 0.75, result.SubScores.ProblemSolving, 1e-9)
	assert.Equal(t, llm.TierAdvanced, client.lastTier)
}

func TestLLMJudge_RejectsOutOfRangeScore(t *testing.T) {
	client := &fakeLLMClient{response: `{
		"score": 1.4,
		"insights": [],
		"strengths": [],
		"concerns": []
	}`}
	judge := NewLLMJudge(client)

	_, err := judge.JudgeTechnical(context.Background(), judgeExchanges(), types.DefaultICPProfile())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "judgment response rejected")
}

func TestLLMJudge_RejectsMissingSubScores(t *testing.T) {
	client := &fakeLLMClient{response: `{
		"score": 0.6,
		"insights": [],
		"strengths": [],
		"concerns": []
	}`}
	judge := NewLLMJudge(client)

	_, err := judge.JudgeICPAlignment(context.Background(), judgeExchanges(), types.DefaultICPProfile())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rejected")
}

func TestLLMJudge_RejectsMalformedResponse(t *testing.T) {
	client := &fakeLLMClient{response: `not json at all`}
	judge := NewLLMJudge(client)

	_, err := judge.JudgeCommunication(context.Background(), judgeExchanges(), types.DefaultICPProfile())
	require.Error(t, err)
}

func TestLLMJudge_PropagatesClientError(t *testing.T) {
	client := &fakeLLMClient{err: errors.New("all API keys exhausted")}
	judge := NewLLMJudge(client)

	_, err := judge.JudgeTechnical(context.Background(), judgeExchanges(), types.DefaultICPProfile())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all API keys exhausted")
}
