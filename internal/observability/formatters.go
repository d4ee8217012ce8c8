// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/talentscout/internal/analysis"
	"github.com/jonathan/talentscout/internal/llm"
	"github.com/jonathan/talentscout/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRankedCandidates outputs the top scored candidates with their score
// breakdown, followed by the batch averages.
func (p *Printer) PrintRankedCandidates(result *types.RankedSearchResult, averages types.AverageScores) {
	if result == nil || len(result.Candidates) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total candidates scored: %d\n\n", len(result.Candidates)))

	count := min(len(result.Candidates), maxItemsToShow)
	for i := 0; i < count; i++ {
		c := result.Candidates[i]
		name := c.Name
		if name == "" {
			name = c.CandidateID
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, name))
		sb.WriteString(fmt.Sprintf("    Overall: %d  (sem %.0f / qual %d / rel %d / skills %d%%)\n",
			c.OverallScore, c.SemanticScore(), c.ProjectQualityScore,
			c.ExperienceRelevanceScore, c.SkillMatchPercentage))
		if len(c.MatchingSkills) > 0 {
			skills := strings.Join(c.MatchingSkills, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", skills))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(result.Candidates) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more\n", len(result.Candidates)-maxItemsToShow))
	}

	sb.WriteString(fmt.Sprintf("\nAverages: overall %d, semantic %d, quality %d\n",
		averages.Overall, averages.Semantic, averages.ProjectQuality))

	p.printBox("RANKED CANDIDATES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCampaignReport outputs a campaign analysis report: ranked candidates
// with tiers, then any per-candidate failures.
func (p *Printer) PrintCampaignReport(report *analysis.BatchReport) {
	if report == nil || (len(report.Ranked) == 0 && len(report.Failures) == 0) {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Analyzed: %d succeeded, %d failed\n\n",
		report.Successes(), len(report.Failures)))

	count := min(len(report.Ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		r := report.Ranked[i]
		name := r.CandidateName
		if name == "" {
			name = r.CandidateID
		}
		sb.WriteString(fmt.Sprintf("#%d  %s  [%s]\n", r.Rank, name, r.Tier))
		sb.WriteString(fmt.Sprintf("    Final: %.2f  (tech %.2f / comm %.2f / icp %.2f)\n",
			r.FinalRanking, r.TechnicalScore, r.CommunicationScore, r.ICPAlignment))
	}
	if len(report.Ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(report.Ranked)-maxItemsToShow))
	}

	if len(report.Failures) > 0 {
		sb.WriteString("\nFailures:\n")
		for _, f := range report.Failures {
			name := f.CandidateName
			if name == "" {
				name = f.CandidateID
			}
			reason := f.Reason
			if len(reason) > 35 {
				reason = reason[:32] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s: %s\n", name, reason))
		}
	}

	p.printBox("CAMPAIGN ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintKeyUsage outputs API key usage statistics after an LLM-backed run.
func (p *Printer) PrintKeyUsage(stats []llm.KeyStats) {
	if len(stats) == 0 {
		return
	}

	var sb strings.Builder
	for _, s := range stats {
		sb.WriteString(fmt.Sprintf("%s  requests: %d  in-flight: %d\n",
			s.Key, s.Requests, s.InFlight))
	}

	p.printBox("API KEY USAGE", strings.TrimSuffix(sb.String(), "\n"))
}
