package submission

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

// createRetries bounds how often a racing writer retries after losing the
// attempt-number unique constraint.
const createRetries = 3

func (s *SQLStore) CreateSubmission(ctx context.Context, sub *Submission, responses []Response) error {
	var err error
	for i := 0; i < createRetries; i++ {
		if err = s.tryCreate(ctx, sub, responses); err == nil {
			return nil
		}
		if !isUniqueViolation(err) {
			return err
		}
	}
	return fmt.Errorf("create submission: attempt number contention: %w", err)
}

func (s *SQLStore) tryCreate(ctx context.Context, sub *Submission, responses []Response) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var maxAttempt int
	err = tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(attempt_number),0) FROM quiz_submissions
		 WHERE quiz_content_id=$1 AND user_id=$2 AND enrollment_id=$3`,
		sub.QuizContentID, sub.UserID, sub.EnrollmentID).Scan(&maxAttempt)
	if err != nil {
		return err
	}
	sub.AttemptNumber = maxAttempt + 1
	if sub.CreatedAt == 0 {
		sub.CreatedAt = time.Now().Unix()
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO quiz_submissions
		 (id,quiz_content_id,user_id,enrollment_id,score,max_score,percentage_score,is_passed,
		  completed_at,time_spent_seconds,attempt_number,created_by,created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		sub.ID, sub.QuizContentID, sub.UserID, sub.EnrollmentID,
		sub.Score, sub.MaxScore, sub.PercentageScore, sub.IsPassed,
		sub.CompletedAt, sub.TimeSpentSeconds, sub.AttemptNumber, sub.CreatedBy, sub.CreatedAt)
	if err != nil {
		return err
	}

	for i := range responses {
		responses[i].SubmissionID = sub.ID
		rj, err := json.Marshal(responses[i].UserResponse)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO quiz_question_responses
			 (id,submission_id,quiz_question_id,user_response_json,is_correct,points_earned,max_points)
			 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
			responses[i].ID, sub.ID, responses[i].QuizQuestionID, string(rj),
			responses[i].IsCorrect, responses[i].PointsEarned, responses[i].MaxPoints)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	// modernc sqlite surfaces constraint failures as plain error strings
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func (s *SQLStore) GetSubmission(ctx context.Context, id string) (Submission, []Response, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id,quiz_content_id,user_id,enrollment_id,score,max_score,percentage_score,is_passed,
		        completed_at,time_spent_seconds,attempt_number,created_by,created_at
		 FROM quiz_submissions WHERE id=$1`, id)
	var sub Submission
	if err := row.Scan(&sub.ID, &sub.QuizContentID, &sub.UserID, &sub.EnrollmentID,
		&sub.Score, &sub.MaxScore, &sub.PercentageScore, &sub.IsPassed,
		&sub.CompletedAt, &sub.TimeSpentSeconds, &sub.AttemptNumber, &sub.CreatedBy, &sub.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Submission{}, nil, fmt.Errorf("submission %s: %w", id, ErrNotFound)
		}
		return Submission{}, nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id,submission_id,quiz_question_id,user_response_json,is_correct,points_earned,max_points
		 FROM quiz_question_responses WHERE submission_id=$1`, id)
	if err != nil {
		return Submission{}, nil, err
	}
	defer rows.Close()
	responses, err := scanResponses(rows)
	if err != nil {
		return Submission{}, nil, err
	}
	return sub, responses, nil
}

func (s *SQLStore) ListSubmissions(ctx context.Context, opts ListOpts) ([]Submission, error) {
	where := []string{}
	args := []interface{}{}
	add := func(col, val string) {
		if val == "" {
			return
		}
		args = append(args, val)
		where = append(where, fmt.Sprintf("%s=$%d", col, len(args)))
	}
	add("quiz_content_id", opts.QuizContentID)
	add("user_id", opts.UserID)
	add("enrollment_id", opts.EnrollmentID)

	q := `SELECT id,quiz_content_id,user_id,enrollment_id,score,max_score,percentage_score,is_passed,
	             completed_at,time_spent_seconds,attempt_number,created_by,created_at
	      FROM quiz_submissions`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	args = append(args, limit)
	q += fmt.Sprintf(" ORDER BY created_at DESC, attempt_number DESC LIMIT $%d", len(args))
	args = append(args, opts.Offset)
	q += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Submission
	for rows.Next() {
		var sub Submission
		if err := rows.Scan(&sub.ID, &sub.QuizContentID, &sub.UserID, &sub.EnrollmentID,
			&sub.Score, &sub.MaxScore, &sub.PercentageScore, &sub.IsPassed,
			&sub.CompletedAt, &sub.TimeSpentSeconds, &sub.AttemptNumber, &sub.CreatedBy, &sub.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, sub)
	}
	return out, rows.Err()
}

func (s *SQLStore) ListResponsesByQuiz(ctx context.Context, quizContentID string) ([]Response, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT r.id,r.submission_id,r.quiz_question_id,r.user_response_json,r.is_correct,r.points_earned,r.max_points
		 FROM quiz_question_responses r
		 JOIN quiz_submissions s ON s.id = r.submission_id
		 WHERE s.quiz_content_id=$1`, quizContentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanResponses(rows)
}

func scanResponses(rows *sql.Rows) ([]Response, error) {
	var out []Response
	for rows.Next() {
		var resp Response
		var rjson string
		if err := rows.Scan(&resp.ID, &resp.SubmissionID, &resp.QuizQuestionID, &rjson,
			&resp.IsCorrect, &resp.PointsEarned, &resp.MaxPoints); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(rjson), &resp.UserResponse); err != nil {
			resp.UserResponse = nil
		}
		out = append(out, resp)
	}
	return out, rows.Err()
}
