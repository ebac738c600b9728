package submission

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kevin997/CSL-Certification-Rest-API-sub005/internal/grading"
	"github.com/kevin997/CSL-Certification-Rest-API-sub005/internal/quiz"
)

// QuizStore is the slice of the quiz content store the aggregator needs.
type QuizStore interface {
	GetQuizContent(ctx context.Context, id string) (quiz.QuizContent, error)
}

// Service grades submitted attempts. Every response claim is recomputed
// server-side and silently overridden on mismatch, so a buggy or malicious
// client can never store an inflated grade.
type Service struct {
	store   Store
	quizzes QuizStore
}

func NewService(store Store, quizzes QuizStore) *Service {
	return &Service{store: store, quizzes: quizzes}
}

// ResponseClaim is one per-question answer as submitted, carrying the
// client's own grading of it.
type ResponseClaim struct {
	QuizQuestionID string      `json:"quiz_question_id"`
	UserResponse   interface{} `json:"user_response"`
	IsCorrect      bool        `json:"is_correct"`
	PointsEarned   float64     `json:"points_earned"`
	MaxPoints      float64     `json:"max_points,omitempty"`
}

type SubmitRequest struct {
	QuizContentID    string
	UserID           string
	EnrollmentID     string
	Score            float64
	MaxScore         float64
	PercentageScore  float64
	IsPassed         bool
	TimeSpentSeconds int
	CompletedAt      int64
	CreatedBy        string
	Responses        []ResponseClaim
}

type SubmitResult struct {
	Submission Submission `json:"submission"`
	Responses  []Response `json:"responses"`
	Warnings   []Warning  `json:"warnings,omitempty"`
}

func (r SubmitRequest) validate() FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(r.QuizContentID) == "" {
		errs["quiz_content_id"] = "required"
	}
	if strings.TrimSpace(r.UserID) == "" {
		errs["user_id"] = "required"
	}
	if strings.TrimSpace(r.EnrollmentID) == "" {
		errs["enrollment_id"] = "required"
	}
	if r.Score < 0 {
		errs["score"] = "must not be negative"
	}
	if r.MaxScore < 0 {
		errs["max_score"] = "must not be negative"
	}
	if r.PercentageScore < 0 || r.PercentageScore > 100 {
		errs["percentage_score"] = "must be between 0 and 100"
	}
	if r.TimeSpentSeconds < 0 {
		errs["time_spent_seconds"] = "must not be negative"
	}
	for i, resp := range r.Responses {
		if strings.TrimSpace(resp.QuizQuestionID) == "" {
			errs[fmt.Sprintf("responses.%d.quiz_question_id", i)] = "required"
		}
		if resp.PointsEarned < 0 {
			errs[fmt.Sprintf("responses.%d.points_earned", i)] = "must not be negative"
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Submit validates the request, regrades every response, reconciles the
// claimed aggregate and stores the attempt with the next attempt number.
// Not-found and input errors abort before any write; grading disagreements
// are corrected in place and reported as warnings on the successful result.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*SubmitResult, error) {
	if errs := req.validate(); errs != nil {
		return nil, errs
	}
	content, err := s.quizzes.GetQuizContent(ctx, req.QuizContentID)
	if err != nil {
		return nil, err
	}

	completedAt := req.CompletedAt
	if completedAt == 0 {
		completedAt = time.Now().Unix()
	}
	sub := Submission{
		ID:               uuid.NewString(),
		QuizContentID:    req.QuizContentID,
		UserID:           req.UserID,
		EnrollmentID:     req.EnrollmentID,
		Score:            req.Score,
		MaxScore:         req.MaxScore,
		PercentageScore:  req.PercentageScore,
		IsPassed:         req.IsPassed,
		CompletedAt:      completedAt,
		TimeSpentSeconds: req.TimeSpentSeconds,
		CreatedBy:        req.CreatedBy,
	}

	serverTotal, serverMax := 0.0, 0.0
	var warnings []Warning
	responses := make([]Response, 0, len(req.Responses))
	for _, claim := range req.Responses {
		question, ok := content.Question(claim.QuizQuestionID)
		if !ok {
			return nil, fmt.Errorf("quiz question %s: %w", claim.QuizQuestionID, quiz.ErrNotFound)
		}
		gq := question.GradingView()
		maxPoints := gq.MaxPoints()

		verdict := grading.Validate(gq, claim.UserResponse, claim.IsCorrect, claim.PointsEarned)
		serverTotal += verdict.Points
		serverMax += maxPoints

		isCorrect, points := claim.IsCorrect, claim.PointsEarned
		if !verdict.Agrees {
			warnings = append(warnings, Warning{
				QuizQuestionID:  claim.QuizQuestionID,
				ClientIsCorrect: claim.IsCorrect,
				ClientPoints:    claim.PointsEarned,
				ServerIsCorrect: verdict.IsCorrect,
				ServerPoints:    verdict.Points,
			})
			isCorrect, points = verdict.IsCorrect, verdict.Points
		}
		responses = append(responses, Response{
			ID:             uuid.NewString(),
			SubmissionID:   sub.ID,
			QuizQuestionID: claim.QuizQuestionID,
			UserResponse:   claim.UserResponse,
			IsCorrect:      isCorrect,
			PointsEarned:   points,
			MaxPoints:      maxPoints,
		})
	}

	// Any disagreement invalidates the claimed aggregate; replace it with the
	// server-computed totals. When every claim agrees the client aggregate is
	// stored verbatim.
	if len(warnings) > 0 && serverMax > 0 {
		sub.Score = serverTotal
		sub.PercentageScore = math.Round(serverTotal / serverMax * 100)
		sub.IsPassed = sub.PercentageScore >= content.PassingThreshold()
	}

	if err := s.store.CreateSubmission(ctx, &sub, responses); err != nil {
		return nil, err
	}
	return &SubmitResult{Submission: sub, Responses: responses, Warnings: warnings}, nil
}
