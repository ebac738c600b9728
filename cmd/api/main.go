package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	api "github.com/kevin997/CSL-Certification-Rest-API-sub005/internal/api/http"
	auth "github.com/kevin997/CSL-Certification-Rest-API-sub005/internal/auth/middleware"
	"github.com/kevin997/CSL-Certification-Rest-API-sub005/internal/config"
	"github.com/kevin997/CSL-Certification-Rest-API-sub005/internal/db"
	"github.com/kevin997/CSL-Certification-Rest-API-sub005/internal/quiz"
	"github.com/kevin997/CSL-Certification-Rest-API-sub005/internal/submission"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	quizStore := quiz.NewSQLStore(dbh)
	subStore := submission.NewSQLStore(dbh)
	svc := submission.NewService(subStore, quizStore)

	authSvc := auth.NewAuthService(cfg.AuthSecret, cfg.AdminUser, cfg.AdminPassHash)

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/auth/login", auth.LoginHandler(authSvc))

	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))

		pr.Post("/quizzes", api.UpsertQuizContentHandler(quizStore))
		pr.Get("/quizzes/{quizID}", api.GetQuizContentHandler(quizStore))

		pr.Post("/quizzes/{quizID}/submissions", api.SubmitHandler(svc))
		pr.Get("/quizzes/{quizID}/submissions", api.ListQuizSubmissionsHandler(subStore))
		pr.Get("/quizzes/{quizID}/responses", api.ListQuizResponsesHandler(subStore))
		pr.Get("/submissions/{submissionID}", api.GetSubmissionHandler(subStore))
		pr.Get("/enrollments/{enrollmentID}/submissions", api.ListEnrollmentSubmissionsHandler(subStore))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (db=%s)", cfg.HTTPAddr, cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
