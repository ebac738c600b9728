package grading

// QuestionType selects the grading algorithm for a question. Values mirror
// the authoring data; anything outside this set has no server-side grader.
type QuestionType string

const (
	MultipleChoice   QuestionType = "multiple_choice"
	MultipleResponse QuestionType = "multiple_response"
	TrueFalse        QuestionType = "true_false"
	Questionnaire    QuestionType = "questionnaire"
	ShortAnswer      QuestionType = "short_answer"
	Hotspot          QuestionType = "hotspot"
)

// Position is a circular hotspot zone on the question image.
type Position struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius,omitempty"`
}

// Option is one answer option. Position is only meaningful for hotspot
// questions; SubquestionText and Points only for questionnaire legacy data
// where per-row credit lives on the option itself.
type Option struct {
	ID              string    `json:"id,omitempty"`
	Text            string    `json:"text"`
	IsCorrect       bool      `json:"is_correct"`
	Points          float64   `json:"points,omitempty"`
	Position        *Position `json:"position,omitempty"`
	SubquestionText string    `json:"subquestion_text,omitempty"`
}

// Assignment maps a selectable option to the credit it carries for one
// questionnaire subquestion.
type Assignment struct {
	OptionID string  `json:"option_id"`
	Points   float64 `json:"points"`
}

// Subquestion is one row of a questionnaire matrix.
type Subquestion struct {
	Text        string       `json:"text,omitempty"`
	Assignments []Assignment `json:"assignments"`
}

// Question is the minimal view of a question needed for grading. Storage
// layers convert their records into this shape before dispatch.
type Question struct {
	Type         QuestionType  `json:"type"`
	Points       float64       `json:"points"`
	Options      []Option      `json:"options,omitempty"`
	Subquestions []Subquestion `json:"subquestions,omitempty"`
}

// MaxPoints is the question's point value; absent or zero grades as 1.
func (q Question) MaxPoints() float64 {
	if q.Points <= 0 {
		return 1
	}
	return q.Points
}
