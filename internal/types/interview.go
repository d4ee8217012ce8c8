package types

import (
	"strings"
	"time"
)

// InterviewExchange is a single question/answer pair from a completed
// interview session.
type InterviewExchange struct {
	Question      string    `json:"question"`
	Answer        string    `json:"answer"`
	QuestionIndex int       `json:"question_index"`
	AnsweredAt    time.Time `json:"answered_at,omitempty"`
}

// InterviewRecord is one candidate's completed interview.
type InterviewRecord struct {
	CandidateID   string              `json:"candidate_id"`
	CandidateName string              `json:"candidate_name"`
	Exchanges     []InterviewExchange `json:"exchanges"`
}

// Answered returns only the exchanges the candidate actually answered,
// preserving question order. Judgment calls must never see unanswered
// questions.
func (r *InterviewRecord) Answered() []InterviewExchange {
	answered := make([]InterviewExchange, 0, len(r.Exchanges))
	for _, ex := range r.Exchanges {
		if strings.TrimSpace(ex.Answer) != "" {
			answered = append(answered, ex)
		}
	}
	return answered
}
