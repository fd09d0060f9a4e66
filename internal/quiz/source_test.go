package quiz_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/saulo-duarte/flashdeck-lambda/internal/quiz"
)

func TestDirSource(t *testing.T) {
	dir := t.TempDir()
	content := "Term,Definition\n\n\n\"T\",\"Q: Sample\ns?\n\nA) one\n\n✓ Correct: A\""
	if err := os.WriteFile(filepath.Join(dir, "bio.csv"), []byte(content), 0o644); err != nil {
		t.Fatalf("Falha ao preparar o arquivo de teste: %v", err)
	}

	source := quiz.NewDirSource(dir)

	t.Run("ExistingQuiz", func(t *testing.T) {
		raw, err := source.ReadQuiz("bio.csv")
		if err != nil {
			t.Fatalf("ReadQuiz falhou: %v", err)
		}
		if raw != content {
			t.Error("Conteúdo lido difere do arquivo original")
		}
	})

	t.Run("MissingQuiz", func(t *testing.T) {
		_, err := source.ReadQuiz("nao-existe.csv")
		if !errors.Is(err, quiz.ErrQuizNotFound) {
			t.Errorf("Esperava ErrQuizNotFound, recebeu: %v", err)
		}
	})

	t.Run("PathTraversal", func(t *testing.T) {
		for _, name := range []string{"../bio.csv", "sub/bio.csv", ""} {
			_, err := source.ReadQuiz(name)
			if !errors.Is(err, quiz.ErrQuizNotFound) {
				t.Errorf("Nome %q deveria ser rejeitado como não encontrado, recebeu: %v", name, err)
			}
		}
	})
}
