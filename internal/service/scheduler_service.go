package service

import (
	"time"

	"daily_quiz_backend/internal/config"
	"daily_quiz_backend/internal/util"
	"daily_quiz_backend/pkg/logger"

	"go.uber.org/zap"
)

// SchedulerService drives the daily quiz lifecycle off a minute ticker:
// generation at the configured hour, reminder pushes through the afternoon
// and evening, and the expiry sweep at midnight. Every job is idempotent,
// so a missed or doubled tick is harmless; the last-run guard just avoids
// re-running a job within the same hour of the same day.
type SchedulerService struct {
	Quiz *QuizService
	Cfg  *config.Config

	lastRun map[string]string
	stop    chan struct{}
}

func NewSchedulerService(quiz *QuizService, cfg *config.Config) *SchedulerService {
	return &SchedulerService{
		Quiz:    quiz,
		Cfg:     cfg,
		lastRun: make(map[string]string),
		stop:    make(chan struct{}),
	}
}

func (s *SchedulerService) Start() {
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()

		for {
			select {
			case now := <-ticker.C:
				s.tick(now)
			case <-s.stop:
				return
			}
		}
	}()
	logger.Log.Info("quiz scheduler started",
		zap.Int("generationHour", s.Cfg.Quiz.GenerationHour),
		zap.Ints("reminderHours", s.Cfg.Quiz.ReminderHours))
}

func (s *SchedulerService) Stop() {
	close(s.stop)
}

func (s *SchedulerService) tick(now time.Time) {
	if now.Hour() == s.Cfg.Quiz.GenerationHour && s.claim("generate", now) {
		s.runGeneration(now)
	}

	for _, hour := range s.Cfg.Quiz.ReminderHours {
		if now.Hour() == hour && s.claim("remind", now) {
			if err := s.Quiz.SendReminders(); err != nil {
				logger.Log.Error("reminder job failed", zap.Error(err))
			}
		}
	}

	if now.Hour() == s.Cfg.Quiz.CleanupHour && s.claim("cleanup", now) {
		if err := s.Quiz.CleanupExpiredAttempts(); err != nil {
			logger.Log.Error("cleanup job failed", zap.Error(err))
		}
	}
}

func (s *SchedulerService) runGeneration(now time.Time) {
	quiz, err := s.Quiz.GenerateDailyQuiz(now)
	if err != nil {
		logger.Log.Error("daily quiz generation failed", zap.Error(err))
		return
	}
	if err := s.Quiz.NotifyQuizAvailable(quiz); err != nil {
		logger.Log.Error("daily quiz notification failed",
			zap.String("date", quiz.QuizDate.Format(util.DateFormat)), zap.Error(err))
	}
}

// claim records that a job ran for this date+hour slot and reports whether
// the caller won it.
func (s *SchedulerService) claim(job string, now time.Time) bool {
	slot := now.Format("2006-01-02T15")
	if s.lastRun[job] == slot {
		return false
	}
	s.lastRun[job] = slot
	return true
}
