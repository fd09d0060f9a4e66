package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/saulo-duarte/flashdeck-lambda/internal/auth"
	"github.com/saulo-duarte/flashdeck-lambda/internal/blob"
	"github.com/saulo-duarte/flashdeck-lambda/internal/metrics"
	"github.com/saulo-duarte/flashdeck-lambda/internal/middlewares"
	"github.com/saulo-duarte/flashdeck-lambda/internal/post"
	"github.com/saulo-duarte/flashdeck-lambda/internal/quiz"
	"github.com/saulo-duarte/flashdeck-lambda/internal/quizsession"
	"github.com/saulo-duarte/flashdeck-lambda/internal/user"
)

type RouterConfig struct {
	UserHandler        *user.Handler
	PostHandler        *post.Handler
	BlobHandler        *blob.Handler
	QuizHandler        *quiz.Handler
	QuizSessionHandler *quizsession.Handler
	MetricsHandler     *metrics.Handler
	MetricsRing        *metrics.Ring
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)
	r.Use(metrics.Middleware(cfg.MetricsRing))

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", cfg.UserHandler.GoogleLogin)
		r.Post("/refresh", cfg.UserHandler.RefreshToken)
		r.Post("/logout", auth.NewHandler().Logout)
	})

	r.Mount("/posts", post.Routes(cfg.PostHandler))
	r.Mount("/quizzes", quiz.Routes(cfg.QuizHandler))
	r.Mount("/quiz-sessions", quizsession.Routes(cfg.QuizSessionHandler))
	r.Mount("/metrics", metrics.Routes(cfg.MetricsHandler))

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/blobs", blob.Routes(cfg.BlobHandler))
	})
	return r
}
