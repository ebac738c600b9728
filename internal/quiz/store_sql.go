package quiz

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) PutQuizContent(ctx context.Context, c QuizContent) error {
	qj, err := json.Marshal(c.Questions)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO quiz_contents (id,title,passing_score,questions_json,created_at)
		VALUES ($1,$2,$3,$4,$5)
		ON CONFLICT (id) DO UPDATE SET title=EXCLUDED.title, passing_score=EXCLUDED.passing_score, questions_json=EXCLUDED.questions_json`,
		c.ID, c.Title, c.PassingScore, string(qj), time.Now().Unix())
	return err
}

func (s *SQLStore) GetQuizContent(ctx context.Context, id string) (QuizContent, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id,title,passing_score,questions_json,created_at FROM quiz_contents WHERE id=$1`, id)
	var c QuizContent
	var qjson string
	if err := row.Scan(&c.ID, &c.Title, &c.PassingScore, &qjson, &c.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return QuizContent{}, fmt.Errorf("quiz content %s: %w", id, ErrNotFound)
		}
		return QuizContent{}, err
	}
	if err := json.Unmarshal([]byte(qjson), &c.Questions); err != nil {
		return QuizContent{}, err
	}
	return c, nil
}
