package repository

import (
	"time"

	"daily_quiz_backend/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func (r *QuizRepository) Create(quiz *model.DailyQuiz) error {
	return r.DB.Create(quiz).Error
}

func (r *QuizRepository) FindByID(id uint) (*model.DailyQuiz, error) {
	var quiz model.DailyQuiz
	err := r.DB.First(&quiz, id).Error
	return &quiz, err
}

// FindByDate looks up the quiz for a calendar day. The date column stores
// the day only, so the lookup compares against the formatted value.
func (r *QuizRepository) FindByDate(date time.Time) (*model.DailyQuiz, error) {
	var quiz model.DailyQuiz
	err := r.DB.Where("quiz_date = ?", date.Format("2006-01-02")).First(&quiz).Error
	return &quiz, err
}

func (r *QuizRepository) FindRecent(limit int) ([]model.DailyQuiz, error) {
	var quizzes []model.DailyQuiz
	err := r.DB.Order("quiz_date DESC").Limit(limit).Find(&quizzes).Error
	return quizzes, err
}

func (r *QuizRepository) MarkSent(quizID uint) error {
	now := time.Now()
	return r.DB.Model(&model.DailyQuiz{}).
		Where("id = ?", quizID).
		Updates(map[string]interface{}{"is_sent": true, "sent_at": &now}).Error
}

func (r *QuizRepository) CountQuizzes() (int64, error) {
	var count int64
	err := r.DB.Model(&model.DailyQuiz{}).Count(&count).Error
	return count, err
}

// Attempts

func (r *QuizRepository) CreateAttempt(attempt *model.UserQuizAttempt) error {
	return r.DB.Create(attempt).Error
}

func (r *QuizRepository) UpdateAttempt(attempt *model.UserQuizAttempt) error {
	return r.DB.Save(attempt).Error
}

func (r *QuizRepository) FindAttempt(userID, quizID uint) (*model.UserQuizAttempt, error) {
	var attempt model.UserQuizAttempt
	err := r.DB.Where("user_id = ? AND quiz_id = ?", userID, quizID).First(&attempt).Error
	return &attempt, err
}

func (r *QuizRepository) FindUserAttempts(userID uint, limit, offset int) ([]model.UserQuizAttempt, int64, error) {
	query := r.DB.Model(&model.UserQuizAttempt{}).Where("user_id = ? AND is_completed = ?", userID, true)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var attempts []model.UserQuizAttempt
	err := query.Order("completed_at DESC").Limit(limit).Offset(offset).Find(&attempts).Error
	return attempts, total, err
}

func (r *QuizRepository) FindCompletedAttempts(userID uint) ([]model.UserQuizAttempt, error) {
	var attempts []model.UserQuizAttempt
	err := r.DB.Where("user_id = ? AND is_completed = ?", userID, true).
		Order("completed_at ASC").
		Find(&attempts).Error
	return attempts, err
}

// FindCompletedAttemptsByUsers loads completed attempts for a batch of users
// in one query. Ranking aggregation groups the rows in memory.
func (r *QuizRepository) FindCompletedAttemptsByUsers(userIDs []uint) ([]model.UserQuizAttempt, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var attempts []model.UserQuizAttempt
	err := r.DB.Where("user_id IN ? AND is_completed = ?", userIDs, true).Find(&attempts).Error
	return attempts, err
}

func (r *QuizRepository) CountCompletedSince(since time.Time) (int64, error) {
	var count int64
	err := r.DB.Model(&model.UserQuizAttempt{}).
		Where("is_completed = ? AND completed_at >= ?", true, since).
		Count(&count).Error
	return count, err
}

// DeleteStaleAttempts removes incomplete attempts on quizzes whose deadline
// has passed. A quiz closes at the midnight after its date, so any quiz
// dated before today is expired. Returns the number of rows swept.
func (r *QuizRepository) DeleteStaleAttempts(now time.Time) (int64, error) {
	result := r.DB.Where("is_completed = ?", false).
		Where("quiz_id IN (?)", r.DB.Model(&model.DailyQuiz{}).Select("id").Where("quiz_date < ?", now.Format("2006-01-02"))).
		Delete(&model.UserQuizAttempt{})
	return result.RowsAffected, result.Error
}

// Answers

func (r *QuizRepository) CreateAnswers(answers []model.UserAnswer) error {
	if len(answers) == 0 {
		return nil
	}
	return r.DB.Create(&answers).Error
}

func (r *QuizRepository) FindAnswers(attemptID uint) ([]model.UserAnswer, error) {
	var answers []model.UserAnswer
	err := r.DB.Where("attempt_id = ?", attemptID).Order("id ASC").Find(&answers).Error
	return answers, err
}
