package quiz

import (
	"regexp"
	"strings"
)

// Formato do export: cards separados por duas linhas em branco, sendo o
// primeiro card um cabeçalho contendo "Term,Definition". Cada card começa
// com o termo entre aspas e a definição vem depois do separador `",`.
const (
	cardDelimiter = "\n\n\n"
	headerMarker  = "Term,Definition"
	correctMarker = "✓ Correct:"
)

var (
	optionLineRe    = regexp.MustCompile(`^([A-D])\)\s*(.+)$`)
	correctAnswerRe = regexp.MustCompile(`✓ Correct:\s*([A-D])`)
)

// Parse extrai as perguntas de múltipla escolha do conteúdo bruto de um
// export. Cards que não formam uma pergunta válida são descartados sem
// erro; o total de descartados é retornado para fins de diagnóstico.
func Parse(raw string) ([]ParsedQuestion, int) {
	normalized := strings.ReplaceAll(raw, "\r\n", "\n")
	cards := strings.Split(normalized, cardDelimiter)

	var questions []ParsedQuestion
	skipped := 0
	headerSeen := false

	for _, card := range cards {
		card = strings.TrimSpace(card)
		if card == "" {
			continue
		}

		if !headerSeen {
			if strings.Contains(card, headerMarker) {
				headerSeen = true
			}
			continue
		}

		question, ok := parseCard(card)
		if !ok {
			skipped++
			continue
		}

		question.QuestionIndex = len(questions)
		questions = append(questions, question)
	}

	return questions, skipped
}

func parseCard(card string) (ParsedQuestion, bool) {
	if !strings.HasPrefix(card, `"`) {
		return ParsedQuestion{}, false
	}

	sep := strings.Index(card, `",`)
	if sep < 0 {
		return ParsedQuestion{}, false
	}

	term := card[1:sep]
	definition := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(card[sep+2:]), `"`))

	// Sem o marcador de resposta correta o card é um flashcard comum,
	// não uma pergunta de quiz.
	if !strings.Contains(definition, correctMarker) {
		return ParsedQuestion{}, false
	}

	sections := strings.Split(definition, "\n\n")

	statement := parseStatement(sections[0])
	options := parseOptions(sections)

	if statement == "" || len(options) == 0 {
		return ParsedQuestion{}, false
	}

	return ParsedQuestion{
		Term:           term,
		Question:       statement,
		Options:        options,
		CorrectAnswer:  parseCorrectAnswer(definition, options),
		FullDefinition: definition,
	}, true
}

func parseStatement(section string) string {
	lines := strings.Split(section, "\n")
	if len(lines) >= 2 {
		return strings.TrimSpace(lines[1])
	}
	return strings.TrimSpace(lines[0])
}

func parseOptions(sections []string) []Option {
	if len(sections) < 2 {
		return nil
	}

	var options []Option
	seen := map[string]bool{}

	for _, line := range strings.Split(sections[1], "\n") {
		m := optionLineRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		if seen[m[1]] {
			continue
		}
		seen[m[1]] = true
		options = append(options, Option{Label: m[1], Text: strings.TrimSpace(m[2])})
	}

	return options
}

// parseCorrectAnswer procura o marcador "✓ Correct: X" na definição.
// Marcador ausente ou malformado cai no fallback documentado "A"; se a
// letra resultante não existir entre as opções, vale a primeira opção.
func parseCorrectAnswer(definition string, options []Option) string {
	answer := "A"
	if m := correctAnswerRe.FindStringSubmatch(definition); m != nil {
		answer = m[1]
	}

	for _, opt := range options {
		if opt.Label == answer {
			return answer
		}
	}
	return options[0].Label
}
