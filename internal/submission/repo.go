package submission

import "context"

// ListOpts filters submission listings. Zero-valued fields are ignored.
type ListOpts struct {
	QuizContentID string
	UserID        string
	EnrollmentID  string
	Limit         int
	Offset        int
}

// Store persists submissions and their responses.
//
// CreateSubmission must resolve the attempt number (1 + max existing for the
// (quiz, user, enrollment) triple) and write the submission with its
// responses as one atomic unit: two racing submits for the same triple must
// never store the same attempt number.
type Store interface {
	CreateSubmission(ctx context.Context, sub *Submission, responses []Response) error
	GetSubmission(ctx context.Context, id string) (Submission, []Response, error)
	ListSubmissions(ctx context.Context, opts ListOpts) ([]Submission, error)
	ListResponsesByQuiz(ctx context.Context, quizContentID string) ([]Response, error)
}
