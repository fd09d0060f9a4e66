package quiz

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var ErrQuizNotFound = errors.New("quiz not found")

// Source resolve o nome de um quiz para o conteúdo bruto do export.
type Source interface {
	ReadQuiz(name string) (string, error)
}

type DirSource struct {
	dir string
}

func NewDirSource(dir string) *DirSource {
	return &DirSource{dir: dir}
}

func (s *DirSource) ReadQuiz(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.Contains(name, "..") {
		return "", fmt.Errorf("%w: %q", ErrQuizNotFound, name)
	}

	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %q", ErrQuizNotFound, name)
		}
		return "", fmt.Errorf("failed to read quiz %q: %w", name, err)
	}

	return string(data), nil
}
