package scoring

import "strings"

// modernTechStack is the fixed allow-list used for the project technology
// overlap bonus.
var modernTechStack = []string{
	"react",
	"next.js",
	"vue",
	"typescript",
	"node.js",
	"go",
	"rust",
	"python",
	"kubernetes",
	"docker",
	"terraform",
	"aws",
	"gcp",
	"graphql",
	"grpc",
	"postgresql",
	"redis",
	"kafka",
	"elasticsearch",
	"tensorflow",
}

// performanceKeywords signal performance or optimization work in a project
// description.
var performanceKeywords = []string{
	"optimiz",
	"performance",
	"latency",
	"throughput",
	"scalab",
	"cache",
	"benchmark",
	"profiling",
}

// innovationKeywords signal initiative and building in an about section.
var innovationKeywords = []string{
	"built",
	"created",
	"launched",
	"designed",
	"founded",
	"open source",
	"prototype",
	"patent",
}

// leadershipKeywords signal seniority in free-form experience text.
var leadershipKeywords = []string{
	"lead",
	"led",
	"senior",
	"principal",
	"staff",
	"architect",
	"mentor",
	"managed",
	"head of",
}

// countKeywordMatches counts how many keywords appear as substrings of text.
// The caller is expected to lowercase text; keywords are stored lowercase.
func countKeywordMatches(text string, keywords []string) int {
	count := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			count++
		}
	}
	return count
}

// isModernTech reports whether a project technology appears in the fixed
// allow-list, using the same bidirectional containment rule as skill
// matching so "React 18" still counts as react.
func isModernTech(tech string) bool {
	tech = strings.ToLower(strings.TrimSpace(tech))
	if tech == "" {
		return false
	}
	for _, known := range modernTechStack {
		if tech == known || strings.Contains(tech, known) || strings.Contains(known, tech) {
			return true
		}
	}
	return false
}
