package quizsession

// SessionRef identifica uma sessão junto com o modo de persistência.
// Persisted=false indica uma sessão "offline": o storage falhou na
// criação e o progresso vive apenas no cliente.
type SessionRef struct {
	ID        string `json:"session_id"`
	Persisted bool   `json:"persisted"`
}

type InitializeSessionResponse struct {
	Session        SessionRef `json:"session"`
	TotalQuestions int        `json:"total_questions"`
}

type SaveAnswerRequest struct {
	QuestionIndex  int    `json:"question_index"`
	SelectedOption string `json:"selected_option"`
	IsCorrect      bool   `json:"is_correct"`
}

type ToggleFlagRequest struct {
	QuestionIndex int  `json:"question_index"`
	IsFlagged     bool `json:"is_flagged"`
}

type SessionSummary struct {
	SessionID      string       `json:"session_id"`
	QuizName       string       `json:"quiz_name"`
	TotalQuestions int          `json:"total_questions"`
	CorrectCount   int          `json:"correct_count"`
	Accuracy       int          `json:"accuracy"`
	FlaggedCount   int          `json:"flagged_count"`
	Answers        []UserAnswer `json:"answers"`
}
