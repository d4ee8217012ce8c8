package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/talentscout/internal/llm"
	"github.com/jonathan/talentscout/internal/prompts"
	"github.com/jonathan/talentscout/internal/schemas"
	"github.com/jonathan/talentscout/internal/types"
)

// LLMJudge implements Judge on top of the llm.Client boundary. Every
// response is validated against a fixed JSON Schema before use.
type LLMJudge struct {
	client llm.Client
}

// NewLLMJudge creates a schema-validating judge over an LLM client.
func NewLLMJudge(client llm.Client) *LLMJudge {
	return &LLMJudge{client: client}
}

// JudgeTechnical evaluates the candidate's technical depth.
func (j *LLMJudge) JudgeTechnical(ctx context.Context, exchanges []types.InterviewExchange, icp *types.ICPProfile) (*JudgmentResult, error) {
	prompt := prompts.Format(prompts.MustGet(prompts.KeyTechnical), map[string]string{
		"Transcript":   formatTranscript(exchanges),
		"MustHave":     strings.Join(icp.TechnicalSkills.MustHave, ", "),
		"MinimumLevel": icp.TechnicalSkills.MinimumLevel,
	})
	return j.judgment(ctx, prompt, llm.TierStandard)
}

// JudgeCommunication evaluates communication quality.
func (j *LLMJudge) JudgeCommunication(ctx context.Context, exchanges []types.InterviewExchange, icp *types.ICPProfile) (*JudgmentResult, error) {
	prompt := prompts.Format(prompts.MustGet(prompts.KeyCommunication), map[string]string{
		"Transcript":      formatTranscript(exchanges),
		"Preferred":       icp.Communication.Preferred,
		"ClientFacing":    strconv.FormatBool(icp.Communication.ClientFacing),
		"TeachingAbility": icp.Communication.TeachingAbility,
	})
	return j.judgment(ctx, prompt, llm.TierStandard)
}

// JudgeICPAlignment evaluates alignment against the full ICP configuration.
func (j *LLMJudge) JudgeICPAlignment(ctx context.Context, exchanges []types.InterviewExchange, icp *types.ICPProfile) (*ICPJudgmentResult, error) {
	profileJSON, err := json.MarshalIndent(icp, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ICP profile: %w", err)
	}

	prompt := prompts.Format(prompts.MustGet(prompts.KeyICPAlignment), map[string]string{
		"Transcript": formatTranscript(exchanges),
		"Profile":    string(profileJSON),
	})

	raw, err := j.client.GenerateJSON(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return nil, fmt.Errorf("ICP judgment call failed: %w", err)
	}
	if err := schemas.ValidateString(icpJudgmentSchema, raw); err != nil {
		return nil, fmt.Errorf("ICP judgment response rejected: %w", err)
	}

	var result ICPJudgmentResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("failed to parse ICP judgment response: %w", err)
	}
	return &result, nil
}

// judgment runs one technical/communication judgment call and validates the
// response shape.
func (j *LLMJudge) judgment(ctx context.Context, prompt string, tier llm.ModelTier) (*JudgmentResult, error) {
	raw, err := j.client.GenerateJSON(ctx, prompt, tier)
	if err != nil {
		return nil, fmt.Errorf("judgment call failed: %w", err)
	}
	if err := schemas.ValidateString(judgmentSchema, raw); err != nil {
		return nil, fmt.Errorf("judgment response rejected: %w", err)
	}

	var result JudgmentResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("failed to parse judgment response: %w", err)
	}
	return &result, nil
}

// formatTranscript renders answered exchanges as numbered Q/A pairs.
func formatTranscript(exchanges []types.InterviewExchange) string {
	var sb strings.Builder
	for i, ex := range exchanges {
		fmt.Fprintf(&sb, "Q%d: %s\nA%d: %s\n\n", i+1, ex.Question, i+1, ex.Answer)
	}
	return strings.TrimSpace(sb.String())
}
