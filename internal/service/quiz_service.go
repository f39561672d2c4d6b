package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"daily_quiz_backend/internal/config"
	"daily_quiz_backend/internal/model"
	"daily_quiz_backend/internal/repository"
	"daily_quiz_backend/internal/util"
	"daily_quiz_backend/pkg/logger"
	"daily_quiz_backend/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type QuizService struct {
	QuizRepo         *repository.QuizRepository
	QuestionRepo     *repository.QuestionRepository
	CategoryRepo     *repository.CategoryRepository
	UserRepo         *repository.UserRepository
	NotificationRepo *repository.NotificationRepository
	Email            *EmailService
	Redis            *redis.Client
	Cfg              *config.Config
}

func NewQuizService(
	quizRepo *repository.QuizRepository,
	questionRepo *repository.QuestionRepository,
	categoryRepo *repository.CategoryRepository,
	userRepo *repository.UserRepository,
	notificationRepo *repository.NotificationRepository,
	email *EmailService,
	rdb *redis.Client,
	cfg *config.Config,
) *QuizService {
	return &QuizService{
		QuizRepo:         quizRepo,
		QuestionRepo:     questionRepo,
		CategoryRepo:     categoryRepo,
		UserRepo:         userRepo,
		NotificationRepo: notificationRepo,
		Email:            email,
		Redis:            rdb,
		Cfg:              cfg,
	}
}

// GenerateDailyQuiz creates the quiz for the given day if it does not exist
// yet. Safe to call from the scheduler, the lazy request path and the admin
// trigger at once: the first check short-circuits, and the unique index on
// quiz_date resolves the race between concurrent generators.
func (s *QuizService) GenerateDailyQuiz(date time.Time) (*model.DailyQuiz, error) {
	day := QuizDay(date)

	if existing, err := s.QuizRepo.FindByDate(day); err == nil {
		return existing, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	categories, err := s.CategoryRepo.FindActive()
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, util.ErrNoCategories
	}
	categoryIDs := make([]uint, 0, len(categories))
	for _, cat := range categories {
		categoryIDs = append(categoryIDs, cat.ID)
	}

	n := s.Cfg.Quiz.QuestionsPerQuiz
	questions, err := s.QuestionRepo.FindRandomActive(categoryIDs, n)
	if err != nil {
		return nil, err
	}
	if len(questions) < n {
		return nil, util.ErrInsufficientQuestions
	}

	snapshots := SnapshotQuestions(questions)
	payload, err := json.Marshal(snapshots)
	if err != nil {
		return nil, err
	}

	quiz := &model.DailyQuiz{
		QuizDate:  day,
		Questions: payload,
	}
	if err := s.QuizRepo.Create(quiz); err != nil {
		// A concurrent generator won the unique-index race; serve its quiz.
		if existing, findErr := s.QuizRepo.FindByDate(day); findErr == nil {
			return existing, nil
		}
		return nil, err
	}

	monitoring.QuizzesGenerated.Inc()
	logger.Log.Info("generated daily quiz",
		zap.String("date", day.Format(util.DateFormat)),
		zap.Int("questions", len(questions)))

	return quiz, nil
}

// TodayQuizView is the authenticated client's view of today's quiz.
type TodayQuizView struct {
	QuizID      uint             `json:"quizId"`
	QuizDate    time.Time        `json:"quizDate"`
	Deadline    time.Time        `json:"deadline"`
	Questions   []PublicQuestion `json:"questions"`
	IsCompleted bool             `json:"isCompleted"`
	Attempt     *AttemptResult   `json:"attempt,omitempty"`
}

// GetTodayQuiz returns today's quiz for a player, generating it on first
// request if the scheduler has not run yet. Completed players get their
// result instead of the question list.
func (s *QuizService) GetTodayQuiz(userID uint) (*TodayQuizView, error) {
	quiz, err := s.GenerateDailyQuiz(time.Now())
	if err != nil {
		return nil, err
	}

	snaps, err := quiz.Snapshots()
	if err != nil {
		return nil, err
	}

	view := &TodayQuizView{
		QuizID:   quiz.ID,
		QuizDate: quiz.QuizDate,
		Deadline: DeadlineFor(quiz.QuizDate),
	}

	attempt, err := s.QuizRepo.FindAttempt(userID, quiz.ID)
	if err == nil && attempt.IsCompleted {
		view.IsCompleted = true
		result, err := s.buildResult(attempt, snaps)
		if err != nil {
			return nil, err
		}
		view.Attempt = result
		return view, nil
	}

	view.Questions = StripAnswers(snaps)
	return view, nil
}

// SubmitInput is the request body for a quiz submission.
type SubmitInput struct {
	QuizID    uint              `json:"quizId" binding:"required"`
	Answers   []SubmittedAnswer `json:"answers" binding:"required"`
	TimeSpent int               `json:"timeSpent"`
}

// AttemptResult is a completed attempt with its per-question breakdown.
type AttemptResult struct {
	AttemptID   uint         `json:"attemptId"`
	QuizID      uint         `json:"quizId"`
	QuizDate    time.Time    `json:"quizDate"`
	Stats       AttemptStats `json:"stats"`
	CompletedAt *time.Time   `json:"completedAt,omitempty"`
}

// Submit grades a player's answer sheet for a quiz. A player submits at
// most once per quiz and only before the deadline; the composite unique
// index on (user_id, quiz_id) backs up the completed-attempt check.
func (s *QuizService) Submit(userID uint, input SubmitInput) (*AttemptResult, error) {
	quiz, err := s.QuizRepo.FindByID(input.QuizID)
	if err != nil {
		return nil, util.ErrQuizNotFound
	}

	if existing, err := s.QuizRepo.FindAttempt(userID, quiz.ID); err == nil && existing.IsCompleted {
		return nil, util.ErrQuizAlreadyCompleted
	}

	if !time.Now().Before(DeadlineFor(quiz.QuizDate)) {
		return nil, util.ErrDeadlinePassed
	}

	snaps, err := quiz.Snapshots()
	if err != nil {
		return nil, err
	}
	if len(input.Answers) != len(snaps) {
		return nil, util.ErrAnswerCountMismatch
	}
	for _, a := range input.Answers {
		if !a.Answer.Valid() {
			return nil, util.ErrAnswerCountMismatch
		}
	}

	stats := AggregateAttempt(input.Answers, snaps)
	if input.TimeSpent > 0 {
		stats.TimeSpent = input.TimeSpent
	}

	now := time.Now()
	attempt, err := s.QuizRepo.FindAttempt(userID, quiz.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		attempt = &model.UserQuizAttempt{UserID: userID, QuizID: quiz.ID}
		if err := s.QuizRepo.CreateAttempt(attempt); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	attempt.Score = stats.Score
	attempt.TotalPoints = stats.TotalPoints
	attempt.CorrectAnswers = stats.CorrectAnswers
	attempt.IncorrectAnswers = stats.IncorrectAnswers
	attempt.Accuracy = stats.Accuracy
	attempt.TimeSpent = stats.TimeSpent
	attempt.IsCompleted = true
	attempt.CompletedAt = &now
	if err := s.QuizRepo.UpdateAttempt(attempt); err != nil {
		return nil, err
	}

	answers := make([]model.UserAnswer, 0, len(stats.DetailedAnswers))
	for _, d := range stats.DetailedAnswers {
		answers = append(answers, model.UserAnswer{
			AttemptID:  attempt.ID,
			QuestionID: d.QuestionID,
			UserAnswer: d.UserAnswer,
			IsCorrect:  d.IsCorrect,
			TimeSpent:  d.TimeSpent,
			AnsweredAt: now,
		})
	}
	if err := s.QuizRepo.CreateAnswers(answers); err != nil {
		return nil, err
	}

	if err := s.UserRepo.AddQuizResult(userID, stats.TotalPoints); err != nil {
		logger.Log.Error("failed to update user totals after submission",
			zap.Uint("userID", userID), zap.Error(err))
	}

	s.invalidateLeaderboard()
	monitoring.AttemptsSubmitted.Inc()

	if user, err := s.UserRepo.FindByID(userID); err == nil && s.Email != nil {
		s.Email.SendQuizResult(user, stats, len(snaps))
	}

	return &AttemptResult{
		AttemptID:   attempt.ID,
		QuizID:      quiz.ID,
		QuizDate:    quiz.QuizDate,
		Stats:       stats,
		CompletedAt: &now,
	}, nil
}

// GetResult returns the player's completed attempt for a quiz, rebuilding
// the per-question breakdown from the stored answers and snapshots.
func (s *QuizService) GetResult(userID, quizID uint) (*AttemptResult, error) {
	quiz, err := s.QuizRepo.FindByID(quizID)
	if err != nil {
		return nil, util.ErrQuizNotFound
	}

	attempt, err := s.QuizRepo.FindAttempt(userID, quizID)
	if err != nil || !attempt.IsCompleted {
		return nil, util.ErrAttemptNotFound
	}

	snaps, err := quiz.Snapshots()
	if err != nil {
		return nil, err
	}

	result, err := s.buildResult(attempt, snaps)
	if err != nil {
		return nil, err
	}
	result.QuizDate = quiz.QuizDate
	return result, nil
}

func (s *QuizService) buildResult(attempt *model.UserQuizAttempt, snaps []model.QuestionSnapshot) (*AttemptResult, error) {
	rows, err := s.QuizRepo.FindAnswers(attempt.ID)
	if err != nil {
		return nil, err
	}

	byQuestion := make(map[uint]model.QuestionSnapshot, len(snaps))
	for _, snap := range snaps {
		byQuestion[snap.QuestionID] = snap
	}

	detailed := make([]DetailedAnswer, 0, len(rows))
	for _, row := range rows {
		snap := byQuestion[row.QuestionID]
		points := -1
		if row.IsCorrect {
			points = 1
		}
		detailed = append(detailed, DetailedAnswer{
			QuestionID:    row.QuestionID,
			QuestionText:  snap.QuestionText,
			UserAnswer:    row.UserAnswer,
			CorrectAnswer: snap.CorrectAnswer,
			IsCorrect:     row.IsCorrect,
			Points:        points,
			Explanation:   snap.Explanation,
			TimeSpent:     row.TimeSpent,
		})
	}

	return &AttemptResult{
		AttemptID: attempt.ID,
		QuizID:    attempt.QuizID,
		Stats: AttemptStats{
			CorrectAnswers:   attempt.CorrectAnswers,
			IncorrectAnswers: attempt.IncorrectAnswers,
			TotalPoints:      attempt.TotalPoints,
			Accuracy:         attempt.Accuracy,
			Score:            attempt.Score,
			TimeSpent:        attempt.TimeSpent,
			DetailedAnswers:  detailed,
		},
		CompletedAt: attempt.CompletedAt,
	}, nil
}

// HistoryEntry is one row of a player's quiz history.
type HistoryEntry struct {
	QuizID      uint       `json:"quizId"`
	QuizDate    time.Time  `json:"quizDate"`
	Score       int        `json:"score"`
	TotalPoints int        `json:"totalPoints"`
	Accuracy    int        `json:"accuracy"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

func (s *QuizService) History(userID uint, page, limit int) ([]HistoryEntry, int64, error) {
	attempts, total, err := s.QuizRepo.FindUserAttempts(userID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}

	entries := make([]HistoryEntry, 0, len(attempts))
	for _, a := range attempts {
		entry := HistoryEntry{
			QuizID:      a.QuizID,
			Score:       a.Score,
			TotalPoints: a.TotalPoints,
			Accuracy:    a.Accuracy,
			CompletedAt: a.CompletedAt,
		}
		if quiz, err := s.QuizRepo.FindByID(a.QuizID); err == nil {
			entry.QuizDate = quiz.QuizDate
		}
		entries = append(entries, entry)
	}
	return entries, total, nil
}

// LeaderboardEntry is one public leaderboard row.
type LeaderboardEntry struct {
	Rank           int    `json:"rank"`
	UserID         uint   `json:"userId"`
	FullName       string `json:"fullName"`
	City           string `json:"city"`
	TotalScore     int    `json:"totalScore"`
	TestsCompleted int    `json:"testsCompleted"`
}

const leaderboardCacheKey = "quiz:leaderboard"

// Leaderboard returns the top players by running total score. The result is
// cached in redis for a short TTL since every player's home screen asks for
// it.
func (s *QuizService) Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	cacheKey := fmt.Sprintf("%s:%d", leaderboardCacheKey, limit)

	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, cacheKey).Result(); err == nil {
			var entries []LeaderboardEntry
			if json.Unmarshal([]byte(cached), &entries) == nil {
				return entries, nil
			}
		}
	}

	users, err := s.UserRepo.FindPlayers(nil)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(users) > limit {
		users = users[:limit]
	}

	entries := make([]LeaderboardEntry, 0, len(users))
	for i, u := range users {
		entries = append(entries, LeaderboardEntry{
			Rank:           i + 1,
			UserID:         u.ID,
			FullName:       u.FullName(),
			City:           u.City,
			TotalScore:     u.TotalScore,
			TestsCompleted: u.TestsCompleted,
		})
	}

	if s.Redis != nil {
		if payload, err := json.Marshal(entries); err == nil {
			ttl := time.Duration(s.Cfg.Quiz.LeaderboardTTL) * time.Second
			s.Redis.Set(ctx, cacheKey, payload, ttl)
		}
	}

	return entries, nil
}

func (s *QuizService) invalidateLeaderboard() {
	if s.Redis == nil {
		return
	}
	ctx := context.Background()
	iter := s.Redis.Scan(ctx, 0, leaderboardCacheKey+":*", 100).Iterator()
	for iter.Next(ctx) {
		s.Redis.Del(ctx, iter.Val())
	}
}

// NotifyQuizAvailable pushes the daily-quiz announcement to every active
// player, then marks the quiz sent. The flag flips exactly once; a quiz
// already marked sent is skipped.
func (s *QuizService) NotifyQuizAvailable(quiz *model.DailyQuiz) error {
	if quiz.IsSent {
		return nil
	}

	snaps, err := quiz.Snapshots()
	if err != nil {
		return err
	}

	players, err := s.UserRepo.FindActivePlayers()
	if err != nil {
		return err
	}

	notifications := make([]model.Notification, 0, len(players))
	now := time.Now()
	for i := range players {
		notifications = append(notifications, model.Notification{
			UserID:  players[i].ID,
			Title:   "Щоденний квіз готовий!",
			Message: fmt.Sprintf("Сьогоднішній квіз із %d питань вже доступний. Квіз закривається опівночі.", len(snaps)),
			Type:    model.NotificationQuiz,
			SentAt:  now,
		})
		if s.Email != nil {
			s.Email.SendQuizAvailable(&players[i], len(snaps))
		}
	}
	if err := s.NotificationRepo.CreateBatch(notifications); err != nil {
		return err
	}

	if err := s.QuizRepo.MarkSent(quiz.ID); err != nil {
		return err
	}

	logger.Log.Info("dispatched daily quiz notifications",
		zap.String("date", quiz.QuizDate.Format(util.DateFormat)),
		zap.Int("players", len(players)))
	return nil
}

// SendReminders nudges active players who have not completed today's quiz.
func (s *QuizService) SendReminders() error {
	quiz, err := s.QuizRepo.FindByDate(time.Now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	deadline := DeadlineFor(quiz.QuizDate)
	hoursLeft := int(time.Until(deadline).Hours())
	if hoursLeft < 1 {
		return nil
	}

	players, err := s.UserRepo.FindActivePlayers()
	if err != nil {
		return err
	}

	var notifications []model.Notification
	now := time.Now()
	reminded := 0
	for i := range players {
		attempt, err := s.QuizRepo.FindAttempt(players[i].ID, quiz.ID)
		if err == nil && attempt.IsCompleted {
			continue
		}
		notifications = append(notifications, model.Notification{
			UserID:  players[i].ID,
			Title:   "Нагадування про квіз",
			Message: fmt.Sprintf("Ви ще не пройшли сьогоднішній квіз. До закриття залишилось близько %d годин.", hoursLeft),
			Type:    model.NotificationQuiz,
			SentAt:  now,
		})
		if s.Email != nil {
			s.Email.SendReminder(&players[i], hoursLeft)
		}
		reminded++
	}
	if err := s.NotificationRepo.CreateBatch(notifications); err != nil {
		return err
	}

	logger.Log.Info("sent quiz reminders", zap.Int("players", reminded), zap.Int("hoursLeft", hoursLeft))
	return nil
}

// CleanupExpiredAttempts sweeps incomplete attempts on expired quizzes.
// They never complete and never score; the sweep just drops the dead rows.
func (s *QuizService) CleanupExpiredAttempts() error {
	swept, err := s.QuizRepo.DeleteStaleAttempts(time.Now())
	if err != nil {
		return err
	}
	if swept > 0 {
		logger.Log.Info("cleaned up expired incomplete attempts", zap.Int64("count", swept))
	}
	return nil
}
