package quizsession

import (
	"github.com/saulo-duarte/flashdeck-lambda/internal/quiz"
	"gorm.io/gorm"
)

type QuizSessionContainer struct {
	Handler *Handler
	Service QuizSessionService
}

func NewQuizSessionContainer(db *gorm.DB, quizSvc quiz.QuizService) *QuizSessionContainer {
	repo := NewRepository(db)
	service := NewService(repo, quizSvc)
	handler := NewHandler(service)

	return &QuizSessionContainer{
		Handler: handler,
		Service: service,
	}
}
