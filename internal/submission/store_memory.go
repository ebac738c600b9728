package submission

import (
	"context"
	"fmt"
	"sync"
	"time"
)

type memoryStore struct {
	mu          sync.Mutex
	submissions map[string]Submission
	responses   map[string][]Response // submission id -> responses
}

// NewInMemoryStore backs tests and offline runs without a database. The
// single mutex makes attempt-number resolution and the write one atomic
// unit, mirroring the SQL store's transaction.
func NewInMemoryStore() Store {
	return &memoryStore{
		submissions: map[string]Submission{},
		responses:   map[string][]Response{},
	}
}

func (m *memoryStore) CreateSubmission(_ context.Context, sub *Submission, responses []Response) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	maxAttempt := 0
	for _, s := range m.submissions {
		if s.QuizContentID == sub.QuizContentID && s.UserID == sub.UserID && s.EnrollmentID == sub.EnrollmentID &&
			s.AttemptNumber > maxAttempt {
			maxAttempt = s.AttemptNumber
		}
	}
	sub.AttemptNumber = maxAttempt + 1
	if sub.CreatedAt == 0 {
		sub.CreatedAt = time.Now().Unix()
	}
	stored := make([]Response, len(responses))
	for i, r := range responses {
		r.SubmissionID = sub.ID
		stored[i] = r
	}
	m.submissions[sub.ID] = *sub
	m.responses[sub.ID] = stored
	return nil
}

func (m *memoryStore) GetSubmission(_ context.Context, id string) (Submission, []Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sub, ok := m.submissions[id]
	if !ok {
		return Submission{}, nil, fmt.Errorf("submission %s: %w", id, ErrNotFound)
	}
	return sub, append([]Response(nil), m.responses[id]...), nil
}

func (m *memoryStore) ListSubmissions(_ context.Context, opts ListOpts) ([]Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Submission
	for _, s := range m.submissions {
		if opts.QuizContentID != "" && s.QuizContentID != opts.QuizContentID {
			continue
		}
		if opts.UserID != "" && s.UserID != opts.UserID {
			continue
		}
		if opts.EnrollmentID != "" && s.EnrollmentID != opts.EnrollmentID {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (m *memoryStore) ListResponsesByQuiz(_ context.Context, quizContentID string) ([]Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Response
	for id, s := range m.submissions {
		if s.QuizContentID != quizContentID {
			continue
		}
		out = append(out, m.responses[id]...)
	}
	return out, nil
}
