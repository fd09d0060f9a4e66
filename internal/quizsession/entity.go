package quizsession

import (
	"time"

	"github.com/google/uuid"
)

type SessionStatus string

const (
	SessionStatusCreated    SessionStatus = "CREATED"
	SessionStatusInProgress SessionStatus = "IN_PROGRESS"
	SessionStatusComplete   SessionStatus = "COMPLETE"
)

type QuizSession struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	QuizName       string    `gorm:"type:text;not null" json:"quiz_name"`
	CurrentIndex   int       `gorm:"not null;default:0" json:"current_index"`
	TotalQuestions int       `gorm:"not null;default:0" json:"total_questions"`
	CorrectCount   int       `gorm:"not null;default:0" json:"correct_count"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Answers []UserAnswer  `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"answers,omitempty"`
	Flags   []FlaggedItem `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"flags,omitempty"`
}

// Status é derivado apenas para apresentação; a transição para COMPLETE
// é decidida pelo chamador via CompleteQuizSession, não pelo store.
func (s *QuizSession) Status() SessionStatus {
	switch {
	case s.CurrentIndex <= 0:
		return SessionStatusCreated
	case s.TotalQuestions > 0 && s.CurrentIndex >= s.TotalQuestions:
		return SessionStatusComplete
	default:
		return SessionStatusInProgress
	}
}

type UserAnswer struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SessionID      uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_user_answers_session_question" json:"session_id"`
	QuestionIndex  int       `gorm:"not null;uniqueIndex:idx_user_answers_session_question" json:"question_index"`
	SelectedOption string    `gorm:"type:text;not null" json:"selected_option"`
	IsCorrect      bool      `gorm:"not null;default:false" json:"is_correct"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type FlaggedItem struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SessionID     uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_flagged_items_session_question" json:"session_id"`
	QuestionIndex int       `gorm:"not null;uniqueIndex:idx_flagged_items_session_question" json:"question_index"`
	IsFlagged     bool      `gorm:"not null;default:false" json:"is_flagged"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
