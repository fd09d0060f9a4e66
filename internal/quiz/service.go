package quiz

import (
	"context"

	"github.com/saulo-duarte/flashdeck-lambda/internal/config"
)

type QuizService interface {
	GetQuizQuestions(ctx context.Context, quizName string) ([]ParsedQuestion, int, error)
}

type quizService struct {
	source Source
}

func NewService(source Source) QuizService {
	return &quizService{source: source}
}

func (s *quizService) GetQuizQuestions(ctx context.Context, quizName string) ([]ParsedQuestion, int, error) {
	log := config.WithContext(ctx)
	log.Info("Carregando perguntas do quiz...", "quiz", quizName)

	raw, err := s.source.ReadQuiz(quizName)
	if err != nil {
		log.WithError(err).Warnf("Erro ao ler o arquivo do quiz %q", quizName)
		return nil, 0, err
	}

	questions, skipped := Parse(raw)
	if skipped > 0 {
		log.Warnf("Quiz %q: %d cards descartados durante o parse", quizName, skipped)
	}

	log.Infof("Quiz %q carregado com %d perguntas", quizName, len(questions))
	return questions, skipped, nil
}
