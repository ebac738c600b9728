package submission

// Submission is one graded quiz attempt. It is written once; the aggregator
// finalizes score fields before the record is persisted.
type Submission struct {
	ID               string  `json:"id"`
	QuizContentID    string  `json:"quiz_content_id"`
	UserID           string  `json:"user_id"`
	EnrollmentID     string  `json:"enrollment_id"`
	Score            float64 `json:"score"`
	MaxScore         float64 `json:"max_score"`
	PercentageScore  float64 `json:"percentage_score"`
	IsPassed         bool    `json:"is_passed"`
	CompletedAt      int64   `json:"completed_at"`
	TimeSpentSeconds int     `json:"time_spent_seconds"`
	AttemptNumber    int     `json:"attempt_number"`
	CreatedBy        string  `json:"created_by,omitempty"`
	CreatedAt        int64   `json:"created_at"`
}

// Response is one per-question answer within a submission, stored with the
// values that survived reconciliation.
type Response struct {
	ID             string      `json:"id"`
	SubmissionID   string      `json:"submission_id"`
	QuizQuestionID string      `json:"quiz_question_id"`
	UserResponse   interface{} `json:"user_response"`
	IsCorrect      bool        `json:"is_correct"`
	PointsEarned   float64     `json:"points_earned"`
	MaxPoints      float64     `json:"max_points"`
}

// Warning records one reconciliation disagreement. Warnings are diagnostics
// for the client; they never fail a submit.
type Warning struct {
	QuizQuestionID  string  `json:"quiz_question_id"`
	ClientIsCorrect bool    `json:"client_is_correct"`
	ClientPoints    float64 `json:"client_points"`
	ServerIsCorrect bool    `json:"server_is_correct"`
	ServerPoints    float64 `json:"server_points"`
}
