package service

import (
	"daily_quiz_backend/internal/model"
	"daily_quiz_backend/internal/repository"
	"daily_quiz_backend/internal/util"
)

type QuestionService struct {
	QuestionRepo *repository.QuestionRepository
	CategoryRepo *repository.CategoryRepository
	UserRepo     *repository.UserRepository
}

func NewQuestionService(
	questionRepo *repository.QuestionRepository,
	categoryRepo *repository.CategoryRepository,
	userRepo *repository.UserRepository,
) *QuestionService {
	return &QuestionService{
		QuestionRepo: questionRepo,
		CategoryRepo: categoryRepo,
		UserRepo:     userRepo,
	}
}

type QuestionInput struct {
	CategoryID      uint              `json:"categoryId" binding:"required"`
	PositionID      *uint             `json:"positionId"`
	QuestionText    string            `json:"questionText" binding:"required,max=1000"`
	OptionA         string            `json:"optionA" binding:"required,max=500"`
	OptionB         string            `json:"optionB" binding:"required,max=500"`
	OptionC         string            `json:"optionC" binding:"required,max=500"`
	OptionD         string            `json:"optionD" binding:"required,max=500"`
	CorrectAnswer   model.OptionLabel `json:"correctAnswer" binding:"required"`
	Explanation     string            `json:"explanation" binding:"max=1000"`
	DifficultyLevel int               `json:"difficultyLevel" binding:"min=0,max=5"`
	IsActive        *bool             `json:"isActive"`
}

func (s *QuestionService) Create(input QuestionInput) (*model.Question, error) {
	if _, err := s.CategoryRepo.FindByID(input.CategoryID); err != nil {
		return nil, util.ErrNoCategories
	}

	question := &model.Question{
		CategoryID:      input.CategoryID,
		PositionID:      input.PositionID,
		QuestionText:    input.QuestionText,
		OptionA:         input.OptionA,
		OptionB:         input.OptionB,
		OptionC:         input.OptionC,
		OptionD:         input.OptionD,
		CorrectAnswer:   input.CorrectAnswer,
		Explanation:     input.Explanation,
		DifficultyLevel: input.DifficultyLevel,
		IsActive:        true,
	}
	if question.DifficultyLevel == 0 {
		question.DifficultyLevel = 1
	}
	if input.IsActive != nil {
		question.IsActive = *input.IsActive
	}

	if err := s.QuestionRepo.Create(question); err != nil {
		return nil, err
	}
	return s.QuestionRepo.FindByID(question.ID)
}

func (s *QuestionService) Update(id uint, input QuestionInput) (*model.Question, error) {
	question, err := s.QuestionRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	question.CategoryID = input.CategoryID
	question.PositionID = input.PositionID
	question.QuestionText = input.QuestionText
	question.OptionA = input.OptionA
	question.OptionB = input.OptionB
	question.OptionC = input.OptionC
	question.OptionD = input.OptionD
	question.CorrectAnswer = input.CorrectAnswer
	question.Explanation = input.Explanation
	if input.DifficultyLevel != 0 {
		question.DifficultyLevel = input.DifficultyLevel
	}
	if input.IsActive != nil {
		question.IsActive = *input.IsActive
	}

	if err := s.QuestionRepo.Update(question); err != nil {
		return nil, err
	}
	return s.QuestionRepo.FindByID(id)
}

func (s *QuestionService) Delete(id uint) error {
	if _, err := s.QuestionRepo.FindByID(id); err != nil {
		return err
	}
	return s.QuestionRepo.Delete(id)
}

func (s *QuestionService) Get(id uint) (*model.Question, error) {
	return s.QuestionRepo.FindByID(id)
}

func (s *QuestionService) List(filter repository.QuestionFilter) ([]model.Question, int64, error) {
	return s.QuestionRepo.List(filter)
}

// ForPosition lists practice questions visible to a position: questions
// scoped to it plus the unscoped pool.
func (s *QuestionService) ForPosition(positionID uint, filter repository.QuestionFilter) ([]model.Question, int64, error) {
	filter.PositionID = positionID
	return s.QuestionRepo.List(filter)
}

// RandomForPosition samples practice questions for a position.
func (s *QuestionService) RandomForPosition(positionID uint, count int) ([]model.Question, error) {
	return s.QuestionRepo.FindRandomForPosition(positionID, count)
}

// ForUser resolves a user's position and returns its practice questions.
func (s *QuestionService) ForUser(userID uint, filter repository.QuestionFilter) (*model.Position, []model.Question, int64, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, nil, 0, util.ErrUserNotFound
	}
	if user.Position == nil {
		return nil, nil, 0, util.ErrUserNotFound
	}

	questions, total, err := s.ForPosition(user.PositionID, filter)
	return user.Position, questions, total, err
}
