package quiz

import (
	"github.com/kevin997/CSL-Certification-Rest-API-sub005/internal/grading"
)

// DefaultPassingScore is the pass threshold (in percent) applied when a quiz
// does not set its own.
const DefaultPassingScore = 70

// QuizContent is one quiz as authored: a passing threshold plus its ordered
// questions. The grading engine treats this data as read-only input.
type QuizContent struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	PassingScore float64        `json:"passing_score,omitempty"`
	Questions    []QuizQuestion `json:"questions"`
	CreatedAt    int64          `json:"created_at,omitempty"`
}

// QuizQuestion is one authored question. Options, subquestions and positions
// are decoded into typed records once, at this boundary, so graders never see
// raw untyped data.
type QuizQuestion struct {
	ID           string                `json:"id"`
	Type         grading.QuestionType  `json:"type"`
	Text         string                `json:"text,omitempty"`
	Points       float64               `json:"points,omitempty"`
	Options      []grading.Option      `json:"options,omitempty"`
	Subquestions []grading.Subquestion `json:"subquestions,omitempty"`
}

// GradingView projects the question into the shape the grading engine takes.
func (q QuizQuestion) GradingView() grading.Question {
	return grading.Question{
		Type:         q.Type,
		Points:       q.Points,
		Options:      q.Options,
		Subquestions: q.Subquestions,
	}
}

// PassingThreshold is the effective pass percentage for this quiz.
func (c QuizContent) PassingThreshold() float64 {
	if c.PassingScore <= 0 {
		return DefaultPassingScore
	}
	return c.PassingScore
}

// Question finds a question by id.
func (c QuizContent) Question(id string) (QuizQuestion, bool) {
	for _, q := range c.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return QuizQuestion{}, false
}
