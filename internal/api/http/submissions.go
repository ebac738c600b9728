package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	auth "github.com/kevin997/CSL-Certification-Rest-API-sub005/internal/auth/middleware"
	"github.com/kevin997/CSL-Certification-Rest-API-sub005/internal/submission"
)

type submitRequest struct {
	UserID           string                     `json:"user_id,omitempty"`
	EnrollmentID     string                     `json:"enrollment_id"`
	Score            float64                    `json:"score"`
	MaxScore         float64                    `json:"max_score"`
	PercentageScore  float64                    `json:"percentage_score"`
	IsPassed         bool                       `json:"is_passed"`
	TimeSpentSeconds int                        `json:"time_spent_seconds"`
	CompletedAt      int64                      `json:"completed_at,omitempty"`
	Responses        []submission.ResponseClaim `json:"responses"`
}

// POST /quizzes/{quizID}/submissions
//
// Reconciliation warnings ride along on the 200 response; a disagreement is
// corrected, never rejected.
func SubmitHandler(svc *submission.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quizID := strings.TrimSpace(chi.URLParam(r, "quizID"))
		if quizID == "" {
			http.Error(w, "quizID required", http.StatusBadRequest)
			return
		}
		var req submitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		sub := auth.SubjectFromContext(r.Context())
		userID := req.UserID
		if userID == "" {
			userID = sub
		}
		res, err := svc.Submit(r.Context(), submission.SubmitRequest{
			QuizContentID:    quizID,
			UserID:           userID,
			EnrollmentID:     req.EnrollmentID,
			Score:            req.Score,
			MaxScore:         req.MaxScore,
			PercentageScore:  req.PercentageScore,
			IsPassed:         req.IsPassed,
			TimeSpentSeconds: req.TimeSpentSeconds,
			CompletedAt:      req.CompletedAt,
			CreatedBy:        sub,
			Responses:        req.Responses,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, res)
	}
}

// GET /submissions/{submissionID}
func GetSubmissionHandler(store submission.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "submissionID"))
		if id == "" {
			http.Error(w, "submissionID required", http.StatusBadRequest)
			return
		}
		sub, responses, err := store.GetSubmission(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, submission.SubmitResult{Submission: sub, Responses: responses})
	}
}

// GET /enrollments/{enrollmentID}/submissions
func ListEnrollmentSubmissionsHandler(store submission.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		enrollmentID := strings.TrimSpace(chi.URLParam(r, "enrollmentID"))
		if enrollmentID == "" {
			http.Error(w, "enrollmentID required", http.StatusBadRequest)
			return
		}
		list, err := store.ListSubmissions(r.Context(), submission.ListOpts{
			EnrollmentID: enrollmentID,
			Limit:        parseIntDefault(r.URL.Query().Get("limit"), 50),
			Offset:       parseIntDefault(r.URL.Query().Get("offset"), 0),
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

// GET /quizzes/{quizID}/submissions?user_id=...&enrollment_id=...
func ListQuizSubmissionsHandler(store submission.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quizID := strings.TrimSpace(chi.URLParam(r, "quizID"))
		if quizID == "" {
			http.Error(w, "quizID required", http.StatusBadRequest)
			return
		}
		list, err := store.ListSubmissions(r.Context(), submission.ListOpts{
			QuizContentID: quizID,
			UserID:        strings.TrimSpace(r.URL.Query().Get("user_id")),
			EnrollmentID:  strings.TrimSpace(r.URL.Query().Get("enrollment_id")),
			Limit:         parseIntDefault(r.URL.Query().Get("limit"), 50),
			Offset:        parseIntDefault(r.URL.Query().Get("offset"), 0),
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

// GET /quizzes/{quizID}/responses
func ListQuizResponsesHandler(store submission.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quizID := strings.TrimSpace(chi.URLParam(r, "quizID"))
		if quizID == "" {
			http.Error(w, "quizID required", http.StatusBadRequest)
			return
		}
		list, err := store.ListResponsesByQuiz(r.Context(), quizID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}
