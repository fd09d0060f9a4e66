package quizsession_test

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/saulo-duarte/flashdeck-lambda/internal/quiz"
	"github.com/saulo-duarte/flashdeck-lambda/internal/quizsession"
)

type fakeQuizService struct {
	questions []quiz.ParsedQuestion
	err       error
}

func (f *fakeQuizService) GetQuizQuestions(ctx context.Context, quizName string) ([]quiz.ParsedQuestion, int, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.questions, 0, nil
}

type childKey struct {
	session string
	index   int
}

type fakeRepo struct {
	sessions map[string]*quizsession.QuizSession
	answers  map[childKey]*quizsession.UserAnswer
	flags    map[childKey]*quizsession.FlaggedItem

	createErr   error
	getErr      error
	upsertErr   error
	progressErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		sessions: map[string]*quizsession.QuizSession{},
		answers:  map[childKey]*quizsession.UserAnswer{},
		flags:    map[childKey]*quizsession.FlaggedItem{},
	}
}

func (r *fakeRepo) Create(s *quizsession.QuizSession) error {
	if r.createErr != nil {
		return r.createErr
	}
	copied := *s
	r.sessions[s.ID.String()] = &copied
	return nil
}

func (r *fakeRepo) GetWithChildren(id string) (*quizsession.QuizSession, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	session, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}

	copied := *session
	for key, a := range r.answers {
		if key.session == id {
			copied.Answers = append(copied.Answers, *a)
		}
	}
	for key, f := range r.flags {
		if key.session == id {
			copied.Flags = append(copied.Flags, *f)
		}
	}
	sort.Slice(copied.Answers, func(i, j int) bool {
		return copied.Answers[i].QuestionIndex < copied.Answers[j].QuestionIndex
	})
	return &copied, nil
}

func (r *fakeRepo) UpsertAnswer(a *quizsession.UserAnswer) error {
	if r.upsertErr != nil {
		return r.upsertErr
	}
	key := childKey{a.SessionID.String(), a.QuestionIndex}
	if existing, ok := r.answers[key]; ok {
		existing.SelectedOption = a.SelectedOption
		existing.IsCorrect = a.IsCorrect
		return nil
	}
	copied := *a
	r.answers[key] = &copied
	return nil
}

func (r *fakeRepo) UpsertFlag(f *quizsession.FlaggedItem) error {
	if r.upsertErr != nil {
		return r.upsertErr
	}
	key := childKey{f.SessionID.String(), f.QuestionIndex}
	if existing, ok := r.flags[key]; ok {
		existing.IsFlagged = f.IsFlagged
		return nil
	}
	copied := *f
	r.flags[key] = &copied
	return nil
}

func (r *fakeRepo) AdvanceProgress(id string, currentIndex int, incrementCorrect bool) error {
	if r.progressErr != nil {
		return r.progressErr
	}
	session, ok := r.sessions[id]
	if !ok {
		return nil
	}
	session.CurrentIndex = currentIndex
	if incrementCorrect {
		session.CorrectCount++
	}
	return nil
}

func fakeQuestions(n int) []quiz.ParsedQuestion {
	questions := make([]quiz.ParsedQuestion, n)
	for i := range questions {
		questions[i] = quiz.ParsedQuestion{
			QuestionIndex: i,
			Question:      "statement",
			Options:       []quiz.Option{{Label: "A", Text: "one"}, {Label: "B", Text: "two"}},
			CorrectAnswer: "B",
		}
	}
	return questions
}

func TestInitializeQuizSession(t *testing.T) {
	ctx := context.Background()

	t.Run("Persisted", func(t *testing.T) {
		repo := newFakeRepo()
		service := quizsession.NewService(repo, &fakeQuizService{questions: fakeQuestions(10)})

		resp, err := service.InitializeQuizSession(ctx, "bio.csv")
		if err != nil {
			t.Fatalf("InitializeQuizSession falhou: %v", err)
		}
		if !resp.Session.Persisted {
			t.Error("Sessão deveria ter sido persistida")
		}
		if resp.TotalQuestions != 10 {
			t.Errorf("TotalQuestions incorreto: %d", resp.TotalQuestions)
		}

		stored := repo.sessions[resp.Session.ID]
		if stored == nil {
			t.Fatal("Sessão não foi gravada no repositório")
		}
		if stored.CurrentIndex != 0 || stored.CorrectCount != 0 {
			t.Errorf("Sessão nova deveria começar zerada: %+v", stored)
		}
	})

	t.Run("OfflineFallbackOnStorageFailure", func(t *testing.T) {
		repo := newFakeRepo()
		repo.createErr = errors.New("db indisponível")
		service := quizsession.NewService(repo, &fakeQuizService{questions: fakeQuestions(4)})

		resp, err := service.InitializeQuizSession(ctx, "bio.csv")
		if err != nil {
			t.Fatalf("Falha de storage não deveria propagar erro: %v", err)
		}
		if resp.Session.Persisted {
			t.Error("Sessão deveria estar marcada como não persistida")
		}
		if !strings.HasPrefix(resp.Session.ID, "offline-") {
			t.Errorf("ID offline deveria ter prefixo offline-: %q", resp.Session.ID)
		}
		if resp.TotalQuestions != 4 {
			t.Errorf("O resultado do parse deveria ser retornado mesmo offline: %d", resp.TotalQuestions)
		}
	})

	t.Run("ParseFailureIsFatal", func(t *testing.T) {
		repo := newFakeRepo()
		service := quizsession.NewService(repo, &fakeQuizService{err: quiz.ErrQuizNotFound})

		_, err := service.InitializeQuizSession(ctx, "nao-existe.csv")
		if !errors.Is(err, quiz.ErrQuizNotFound) {
			t.Errorf("Esperava ErrQuizNotFound, recebeu: %v", err)
		}
	})
}

func TestSaveAnswer(t *testing.T) {
	ctx := context.Background()

	newSession := func(t *testing.T, repo *fakeRepo, total int) (quizsession.QuizSessionService, string) {
		t.Helper()
		service := quizsession.NewService(repo, &fakeQuizService{questions: fakeQuestions(total)})
		resp, err := service.InitializeQuizSession(ctx, "bio.csv")
		if err != nil {
			t.Fatalf("InitializeQuizSession falhou: %v", err)
		}
		return service, resp.Session.ID
	}

	t.Run("AdvancesProgress", func(t *testing.T) {
		repo := newFakeRepo()
		service, id := newSession(t, repo, 10)

		answer := service.SaveAnswer(ctx, id, 0, "B", true)
		if answer == nil || answer.SelectedOption != "B" || !answer.IsCorrect {
			t.Fatalf("Resposta retornada incorreta: %+v", answer)
		}

		session := service.GetQuizSession(ctx, id)
		if session == nil {
			t.Fatal("GetQuizSession não deveria retornar nil")
		}
		if session.CurrentIndex != 1 {
			t.Errorf("CurrentIndex deveria ser 1, recebeu %d", session.CurrentIndex)
		}
		if session.CorrectCount != 1 {
			t.Errorf("CorrectCount deveria ser 1, recebeu %d", session.CorrectCount)
		}
	})

	t.Run("OverwritesOnReanswer", func(t *testing.T) {
		repo := newFakeRepo()
		service, id := newSession(t, repo, 10)

		service.SaveAnswer(ctx, id, 3, "A", false)
		service.SaveAnswer(ctx, id, 3, "C", false)

		session := service.GetQuizSession(ctx, id)
		if len(session.Answers) != 1 {
			t.Fatalf("Reenvio deveria sobrescrever, não duplicar: %d respostas", len(session.Answers))
		}
		if session.Answers[0].SelectedOption != "C" {
			t.Errorf("A segunda resposta deveria prevalecer: %q", session.Answers[0].SelectedOption)
		}
	})

	t.Run("DoubleCountsRepeatedCorrectAnswer", func(t *testing.T) {
		// Comportamento herdado e documentado: cada envio correto
		// incrementa o contador, mesmo repetindo a mesma pergunta.
		repo := newFakeRepo()
		service, id := newSession(t, repo, 10)

		service.SaveAnswer(ctx, id, 0, "B", true)
		service.SaveAnswer(ctx, id, 0, "B", true)

		session := service.GetQuizSession(ctx, id)
		if session.CorrectCount != 2 {
			t.Errorf("CorrectCount deveria dobrar no reenvio correto, recebeu %d", session.CorrectCount)
		}
		if len(session.Answers) != 1 {
			t.Errorf("Mesmo com o contador dobrado deveria haver uma única resposta, recebeu %d", len(session.Answers))
		}
	})

	t.Run("StorageFailureDegrades", func(t *testing.T) {
		repo := newFakeRepo()
		service, id := newSession(t, repo, 10)
		repo.upsertErr = errors.New("db indisponível")

		answer := service.SaveAnswer(ctx, id, 0, "B", true)
		if answer == nil || answer.SelectedOption != "B" {
			t.Errorf("Falha de storage deveria devolver a resposta local: %+v", answer)
		}
	})

	t.Run("OfflineSessionEchoesLocally", func(t *testing.T) {
		repo := newFakeRepo()
		service := quizsession.NewService(repo, &fakeQuizService{})

		answer := service.SaveAnswer(ctx, "offline-abc123", 2, "D", false)
		if answer == nil || answer.QuestionIndex != 2 || answer.SelectedOption != "D" {
			t.Errorf("Sessão offline deveria devolver eco local: %+v", answer)
		}
		if len(repo.answers) != 0 {
			t.Error("Sessão offline não deveria tocar o repositório")
		}
	})
}

func TestToggleFlagAndComplete(t *testing.T) {
	ctx := context.Background()

	t.Run("FlagThenUnflag", func(t *testing.T) {
		repo := newFakeRepo()
		service := quizsession.NewService(repo, &fakeQuizService{questions: fakeQuestions(5)})
		resp, _ := service.InitializeQuizSession(ctx, "bio.csv")
		id := resp.Session.ID

		service.ToggleFlag(ctx, id, 1, true)
		service.ToggleFlag(ctx, id, 1, false)
		service.ToggleFlag(ctx, id, 2, true)

		session := service.GetQuizSession(ctx, id)
		if session.CurrentIndex != 0 || session.CorrectCount != 0 {
			t.Error("ToggleFlag não deveria mexer em CurrentIndex nem CorrectCount")
		}

		summary, err := service.CompleteQuizSession(ctx, id)
		if err != nil {
			t.Fatalf("CompleteQuizSession falhou: %v", err)
		}
		if summary.FlaggedCount != 1 {
			t.Errorf("Pergunta desmarcada não deveria contar: FlaggedCount = %d", summary.FlaggedCount)
		}
	})

	t.Run("AccuracyComputation", func(t *testing.T) {
		repo := newFakeRepo()
		service := quizsession.NewService(repo, &fakeQuizService{questions: fakeQuestions(5)})
		resp, _ := service.InitializeQuizSession(ctx, "bio.csv")
		id := resp.Session.ID

		for i := 0; i < 4; i++ {
			service.SaveAnswer(ctx, id, i, "B", true)
		}
		service.SaveAnswer(ctx, id, 4, "A", false)

		summary, err := service.CompleteQuizSession(ctx, id)
		if err != nil {
			t.Fatalf("CompleteQuizSession falhou: %v", err)
		}
		if summary.Accuracy != 80 {
			t.Errorf("Accuracy deveria ser 80, recebeu %d", summary.Accuracy)
		}
		if len(summary.Answers) != 5 {
			t.Fatalf("Resumo deveria conter todas as respostas, recebeu %d", len(summary.Answers))
		}
		for i, a := range summary.Answers {
			if a.QuestionIndex != i {
				t.Errorf("Respostas deveriam vir ordenadas por question_index: posição %d tem índice %d", i, a.QuestionIndex)
			}
		}
	})

	t.Run("ZeroQuestionsAccuracy", func(t *testing.T) {
		repo := newFakeRepo()
		service := quizsession.NewService(repo, &fakeQuizService{})
		resp, _ := service.InitializeQuizSession(ctx, "vazio.csv")

		summary, err := service.CompleteQuizSession(ctx, resp.Session.ID)
		if err != nil {
			t.Fatalf("CompleteQuizSession falhou: %v", err)
		}
		if summary.Accuracy != 0 {
			t.Errorf("Quiz sem perguntas deveria ter accuracy 0, recebeu %d", summary.Accuracy)
		}
	})

	t.Run("CompleteMissingSessionFails", func(t *testing.T) {
		repo := newFakeRepo()
		service := quizsession.NewService(repo, &fakeQuizService{})

		_, err := service.CompleteQuizSession(ctx, uuid.NewString())
		if !errors.Is(err, quizsession.ErrSessionNotFound) {
			t.Errorf("Esperava ErrSessionNotFound, recebeu: %v", err)
		}

		_, err = service.CompleteQuizSession(ctx, "offline-abc123")
		if !errors.Is(err, quizsession.ErrSessionNotFound) {
			t.Errorf("Sessão offline não tem o que resumir, esperava ErrSessionNotFound: %v", err)
		}
	})
}
