package quizsession

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/saulo-duarte/flashdeck-lambda/internal/config"
	"github.com/saulo-duarte/flashdeck-lambda/internal/quiz"
)

var ErrSessionNotFound = errors.New("quiz session not found")

type QuizSessionService interface {
	InitializeQuizSession(ctx context.Context, quizName string) (*InitializeSessionResponse, error)
	GetQuizSession(ctx context.Context, sessionID string) *QuizSession
	SaveAnswer(ctx context.Context, sessionID string, questionIndex int, selectedOption string, isCorrect bool) *UserAnswer
	ToggleFlag(ctx context.Context, sessionID string, questionIndex int, isFlagged bool) *FlaggedItem
	CompleteQuizSession(ctx context.Context, sessionID string) (*SessionSummary, error)
}

type quizSessionService struct {
	repo    SessionRepository
	quizSvc quiz.QuizService
}

func NewService(repo SessionRepository, quizSvc quiz.QuizService) QuizSessionService {
	return &quizSessionService{
		repo:    repo,
		quizSvc: quizSvc,
	}
}

// InitializeQuizSession parseia o quiz e cria a sessão. O parse é a parte
// obrigatória: falhou, a operação falha. Já a persistência é best-effort:
// se o storage estiver fora, devolvemos uma sessão offline e o quiz segue.
func (s *quizSessionService) InitializeQuizSession(ctx context.Context, quizName string) (*InitializeSessionResponse, error) {
	log := config.WithContext(ctx)
	log.Info("Inicializando sessão de quiz...", "quiz", quizName)

	questions, _, err := s.quizSvc.GetQuizQuestions(ctx, quizName)
	if err != nil {
		log.WithError(err).Warnf("Erro ao parsear o quiz %q", quizName)
		return nil, err
	}

	session := &QuizSession{
		ID:             uuid.New(),
		QuizName:       quizName,
		CurrentIndex:   0,
		TotalQuestions: len(questions),
		CorrectCount:   0,
	}

	if err := s.repo.Create(session); err != nil {
		log.WithError(err).Error("Erro ao persistir sessão, seguindo em modo offline")
		return &InitializeSessionResponse{
			Session:        SessionRef{ID: newOfflineID(), Persisted: false},
			TotalQuestions: len(questions),
		}, nil
	}

	log.Info("Sessão de quiz criada com sucesso", "session_id", session.ID.String())
	return &InitializeSessionResponse{
		Session:        SessionRef{ID: session.ID.String(), Persisted: true},
		TotalQuestions: len(questions),
	}, nil
}

// GetQuizSession devolve nil tanto para sessão inexistente quanto para
// falha de storage: durante o jogo, a leitura também é best-effort.
func (s *quizSessionService) GetQuizSession(ctx context.Context, sessionID string) *QuizSession {
	log := config.WithContext(ctx)

	if _, err := uuid.Parse(sessionID); err != nil {
		log.Debugf("Sessão %q não é persistida, ignorando lookup", sessionID)
		return nil
	}

	session, err := s.repo.GetWithChildren(sessionID)
	if err != nil {
		log.WithError(err).Error("Erro ao buscar sessão de quiz")
		return nil
	}
	return session
}

func (s *quizSessionService) SaveAnswer(ctx context.Context, sessionID string, questionIndex int, selectedOption string, isCorrect bool) *UserAnswer {
	log := config.WithContext(ctx)

	answer := &UserAnswer{
		ID:             uuid.New(),
		QuestionIndex:  questionIndex,
		SelectedOption: selectedOption,
		IsCorrect:      isCorrect,
	}

	sid, err := uuid.Parse(sessionID)
	if err != nil {
		log.Debugf("Sessão offline %q: resposta não persistida", sessionID)
		return answer
	}
	answer.SessionID = sid

	if err := s.repo.UpsertAnswer(answer); err != nil {
		log.WithError(err).Error("Erro ao salvar resposta, seguindo em modo offline")
		return answer
	}

	// TODO: responder a mesma pergunta certa duas vezes incrementa
	// correct_count duas vezes. Comportamento herdado; decidir se o
	// incremento deve considerar a resposta anterior.
	if err := s.repo.AdvanceProgress(sessionID, questionIndex+1, isCorrect); err != nil {
		log.WithError(err).Error("Erro ao atualizar progresso da sessão")
	}

	return answer
}

func (s *quizSessionService) ToggleFlag(ctx context.Context, sessionID string, questionIndex int, isFlagged bool) *FlaggedItem {
	log := config.WithContext(ctx)

	flag := &FlaggedItem{
		ID:            uuid.New(),
		QuestionIndex: questionIndex,
		IsFlagged:     isFlagged,
	}

	sid, err := uuid.Parse(sessionID)
	if err != nil {
		log.Debugf("Sessão offline %q: flag não persistida", sessionID)
		return flag
	}
	flag.SessionID = sid

	if err := s.repo.UpsertFlag(flag); err != nil {
		log.WithError(err).Error("Erro ao salvar flag, seguindo em modo offline")
	}

	return flag
}

// CompleteQuizSession é o único ponto em que a indisponibilidade do
// storage é fatal: sem a sessão não há o que resumir.
func (s *quizSessionService) CompleteQuizSession(ctx context.Context, sessionID string) (*SessionSummary, error) {
	log := config.WithContext(ctx)
	log.Info("Finalizando sessão de quiz...", "session_id", sessionID)

	if _, err := uuid.Parse(sessionID); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrSessionNotFound, sessionID)
	}

	session, err := s.repo.GetWithChildren(sessionID)
	if err != nil {
		log.WithError(err).Error("Erro ao buscar sessão para finalização")
		return nil, err
	}
	if session == nil {
		return nil, fmt.Errorf("%w: %q", ErrSessionNotFound, sessionID)
	}

	accuracy := 0
	if session.TotalQuestions > 0 {
		accuracy = int(math.Round(float64(session.CorrectCount) / float64(session.TotalQuestions) * 100))
	}

	flaggedCount := 0
	for _, f := range session.Flags {
		if f.IsFlagged {
			flaggedCount++
		}
	}

	answers := session.Answers
	if answers == nil {
		answers = []UserAnswer{}
	}

	log.Info("Sessão de quiz finalizada", "session_id", sessionID)
	return &SessionSummary{
		SessionID:      session.ID.String(),
		QuizName:       session.QuizName,
		TotalQuestions: session.TotalQuestions,
		CorrectCount:   session.CorrectCount,
		Accuracy:       accuracy,
		FlaggedCount:   flaggedCount,
		Answers:        answers,
	}, nil
}

func newOfflineID() string {
	id, err := gonanoid.New()
	if err != nil {
		return "offline-session"
	}
	return "offline-" + id
}
