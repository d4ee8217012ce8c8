package analysis

// judgmentSchema is the fixed response contract for the technical and
// communication judgment calls. Responses that do not conform fail the
// candidate's analysis.
const judgmentSchema = `{
	"type": "object",
	"required": ["score", "insights", "strengths", "concerns"],
	"properties": {
		"score": {"type": "number", "minimum": 0, "maximum": 1},
		"insights": {"type": "array", "items": {"type": "string"}},
		"strengths": {"type": "array", "items": {"type": "string"}},
		"concerns": {"type": "array", "items": {"type": "string"}}
	}
}`

// icpJudgmentSchema extends the judgment contract with the four ICP
// dimension sub-scores.
const icpJudgmentSchema = `{
	"type": "object",
	"required": ["score", "sub_scores", "insights", "strengths", "concerns"],
	"properties": {
		"score": {"type": "number", "minimum": 0, "maximum": 1},
		"sub_scores": {
			"type": "object",
			"required": ["technical", "communication", "problem_solving", "growth"],
			"properties": {
				"technical": {"type": "number", "minimum": 0, "maximum": 1},
				"communication": {"type": "number", "minimum": 0, "maximum": 1},
				"problem_solving": {"type": "number", "minimum": 0, "maximum": 1},
				"growth": {"type": "number", "minimum": 0, "maximum": 1}
			}
		},
		"insights": {"type": "array", "items": {"type": "string"}},
		"strengths": {"type": "array", "items": {"type": "string"}},
		"concerns": {"type": "array", "items": {"type": "string"}}
	}
}`
