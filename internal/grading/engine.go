package grading

// Grader computes correctness and points for one question type.
//
// Implementations are pure and total: any answer shape they cannot parse
// grades as incorrect with zero points, never an error, and the returned
// points always satisfy 0 <= points <= q.MaxPoints().
type Grader interface {
	Grade(q Question, answer interface{}) (isCorrect bool, points float64)
}

var graders = map[QuestionType]Grader{
	MultipleChoice:   multipleChoiceGrader{},
	MultipleResponse: multipleResponseGrader{},
	TrueFalse:        trueFalseGrader{},
	Questionnaire:    questionnaireGrader{},
	ShortAnswer:      shortAnswerGrader{},
	Hotspot:          hotspotGrader{},
}

// GraderFor returns the grader for a question type, or nil when the type has
// no server-side grading (the validator then trusts the client's claim).
func GraderFor(t QuestionType) Grader {
	return graders[t]
}
