package quizsession

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SessionRepository interface {
	Create(s *QuizSession) error
	GetWithChildren(id string) (*QuizSession, error)
	UpsertAnswer(a *UserAnswer) error
	UpsertFlag(f *FlaggedItem) error
	AdvanceProgress(id string, currentIndex int, incrementCorrect bool) error
}

type sessionRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(s *QuizSession) error {
	return r.db.Create(s).Error
}

func (r *sessionRepository) GetWithChildren(id string) (*QuizSession, error) {
	var session QuizSession
	err := r.db.
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_index ASC")
		}).
		Preload("Flags", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_index ASC")
		}).
		First(&session, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) UpsertAnswer(a *UserAnswer) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}, {Name: "question_index"}},
		DoUpdates: clause.AssignmentColumns([]string{"selected_option", "is_correct", "updated_at"}),
	}).Create(a).Error
}

func (r *sessionRepository) UpsertFlag(f *FlaggedItem) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}, {Name: "question_index"}},
		DoUpdates: clause.AssignmentColumns([]string{"is_flagged", "updated_at"}),
	}).Create(f).Error
}

func (r *sessionRepository) AdvanceProgress(id string, currentIndex int, incrementCorrect bool) error {
	updates := map[string]interface{}{
		"current_index": currentIndex,
	}
	if incrementCorrect {
		updates["correct_count"] = gorm.Expr("correct_count + 1")
	}
	return r.db.Model(&QuizSession{}).Where("id = ?", id).Updates(updates).Error
}
