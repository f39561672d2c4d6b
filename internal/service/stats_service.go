package service

import (
	"math"
	"time"

	"daily_quiz_backend/internal/model"
	"daily_quiz_backend/internal/repository"
	"daily_quiz_backend/internal/util"
)

type StatsService struct {
	UserRepo     *repository.UserRepository
	QuizRepo     *repository.QuizRepository
	QuestionRepo *repository.QuestionRepository
	CategoryRepo *repository.CategoryRepository
}

func NewStatsService(
	userRepo *repository.UserRepository,
	quizRepo *repository.QuizRepository,
	questionRepo *repository.QuestionRepository,
	categoryRepo *repository.CategoryRepository,
) *StatsService {
	return &StatsService{
		UserRepo:     userRepo,
		QuizRepo:     quizRepo,
		QuestionRepo: questionRepo,
		CategoryRepo: categoryRepo,
	}
}

// DashboardStats is the admin dashboard overview.
type DashboardStats struct {
	Users struct {
		TotalUsers    int64 `json:"totalUsers"`
		ActiveUsers   int64 `json:"activeUsers"`
		NewUsers30Day int64 `json:"newUsers30Days"`
	} `json:"users"`
	Questions struct {
		TotalQuestions  int64 `json:"totalQuestions"`
		ActiveQuestions int64 `json:"activeQuestions"`
		CategoriesCount int64 `json:"categoriesCount"`
	} `json:"questions"`
	Quizzes struct {
		TotalQuizzes int64 `json:"totalQuizzes"`
	} `json:"quizzes"`
	Attempts struct {
		CompletedToday  int64 `json:"completedToday"`
		Completed30Days int64 `json:"completed30Days"`
	} `json:"attempts"`
}

func (s *StatsService) Dashboard() (*DashboardStats, error) {
	stats := &DashboardStats{}
	now := time.Now()
	monthAgo := now.AddDate(0, 0, -30)

	var err error
	if stats.Users.TotalUsers, err = s.UserRepo.CountAll(); err != nil {
		return nil, err
	}
	if stats.Users.ActiveUsers, err = s.UserRepo.CountPlayers(); err != nil {
		return nil, err
	}
	if stats.Users.NewUsers30Day, err = s.UserRepo.CountRegisteredSince(monthAgo); err != nil {
		return nil, err
	}

	if stats.Questions.TotalQuestions, err = s.QuestionRepo.CountTotal(); err != nil {
		return nil, err
	}
	if stats.Questions.ActiveQuestions, err = s.QuestionRepo.CountActive(); err != nil {
		return nil, err
	}
	if stats.Questions.CategoriesCount, err = s.CategoryRepo.Count(); err != nil {
		return nil, err
	}

	if stats.Quizzes.TotalQuizzes, err = s.QuizRepo.CountQuizzes(); err != nil {
		return nil, err
	}

	if stats.Attempts.CompletedToday, err = s.QuizRepo.CountCompletedSince(QuizDay(now)); err != nil {
		return nil, err
	}
	if stats.Attempts.Completed30Days, err = s.QuizRepo.CountCompletedSince(monthAgo); err != nil {
		return nil, err
	}

	return stats, nil
}

// UserStats is the admin view of one user's quiz record.
type UserStats struct {
	UserID            uint       `json:"userId"`
	FullName          string     `json:"fullName"`
	City              string     `json:"city"`
	Position          string     `json:"position"`
	TotalScore        int        `json:"totalScore"`
	TestsCompleted    int        `json:"testsCompleted"`
	RegistrationDate  time.Time  `json:"registrationDate"`
	CompletedAttempts int        `json:"completedAttempts"`
	AverageScore      int        `json:"averageScore"`
	CurrentStreak     int        `json:"currentStreak"`
	LastQuizDate      *time.Time `json:"lastQuizDate,omitempty"`
}

func (s *StatsService) UserStats(userID uint) (*UserStats, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}

	attempts, err := s.QuizRepo.FindCompletedAttempts(userID)
	if err != nil {
		return nil, err
	}

	stats := &UserStats{
		UserID:            user.ID,
		FullName:          user.FullName(),
		City:              user.City,
		TotalScore:        user.TotalScore,
		TestsCompleted:    user.TestsCompleted,
		RegistrationDate:  user.RegistrationDate,
		CompletedAttempts: len(attempts),
		CurrentStreak:     CurrentStreak(attempts),
	}
	if user.Position != nil {
		stats.Position = user.Position.Name
	}

	if len(attempts) > 0 {
		sum := 0
		for _, a := range attempts {
			sum += a.Score
			if a.CompletedAt != nil && (stats.LastQuizDate == nil || a.CompletedAt.After(*stats.LastQuizDate)) {
				stats.LastQuizDate = a.CompletedAt
			}
		}
		stats.AverageScore = int(math.Round(float64(sum) / float64(len(attempts))))
	}

	return stats, nil
}

// PlayerStatsPage is the admin ranking table response.
type PlayerStatsPage struct {
	Players    []PlayerRanking `json:"players"`
	Summary    RankingSummary  `json:"summary"`
	Pagination Pagination      `json:"pagination"`
}

type Pagination struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalPlayers int `json:"totalPlayers"`
	Limit        int `json:"limit"`
}

// RankPlayers builds the admin ranking table. The period filter applies to
// account creation time, not attempt time, which matches the product's
// long-standing behavior.
func (s *StatsService) RankPlayers(period string, page, limit int) (*PlayerStatsPage, error) {
	since := PeriodStart(period, time.Now())
	users, err := s.UserRepo.FindPlayers(since)
	if err != nil {
		return nil, err
	}

	attemptsByUser, err := s.attemptsByUser(users)
	if err != nil {
		return nil, err
	}

	rankings := BuildRankings(users, attemptsByUser)
	offset := (page - 1) * limit

	totalPages := 0
	if limit > 0 {
		totalPages = int(math.Ceil(float64(len(rankings)) / float64(limit)))
	}

	return &PlayerStatsPage{
		Players: PageRankings(rankings, offset, limit),
		Summary: Summarize(rankings, attemptsByUser),
		Pagination: Pagination{
			CurrentPage:  page,
			TotalPages:   totalPages,
			TotalPlayers: len(rankings),
			Limit:        limit,
		},
	}, nil
}

func (s *StatsService) attemptsByUser(users []model.User) (map[uint][]model.UserQuizAttempt, error) {
	ids := make([]uint, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}

	attempts, err := s.QuizRepo.FindCompletedAttemptsByUsers(ids)
	if err != nil {
		return nil, err
	}

	byUser := make(map[uint][]model.UserQuizAttempt, len(users))
	for _, a := range attempts {
		byUser[a.UserID] = append(byUser[a.UserID], a)
	}
	return byUser, nil
}

// ScoreBucket is one bar of the score distribution chart.
type ScoreBucket struct {
	Range string `json:"range"`
	Count int    `json:"count"`
}

// PlayerCharts is the admin chart payload: score distribution over
// completed attempts plus an overall activity summary.
type PlayerCharts struct {
	ScoreDistribution []ScoreBucket `json:"scoreDistribution"`
	Activity          struct {
		QuizCount int `json:"quizCount"`
		AvgScore  int `json:"avgScore"`
	} `json:"activity"`
}

// Charts aggregates completed attempts of the filtered player population
// into score buckets 0-59, 60-69, 70-79, 80-89, 90-100.
func (s *StatsService) Charts(period string) (*PlayerCharts, error) {
	since := PeriodStart(period, time.Now())
	users, err := s.UserRepo.FindPlayers(since)
	if err != nil {
		return nil, err
	}

	attemptsByUser, err := s.attemptsByUser(users)
	if err != nil {
		return nil, err
	}

	charts := &PlayerCharts{
		ScoreDistribution: []ScoreBucket{
			{Range: "0-59"}, {Range: "60-69"}, {Range: "70-79"}, {Range: "80-89"}, {Range: "90-100"},
		},
	}

	sum := 0
	count := 0
	for _, attempts := range attemptsByUser {
		for _, a := range attempts {
			charts.ScoreDistribution[bucketIndex(a.Score)].Count++
			sum += a.Score
			count++
		}
	}
	charts.Activity.QuizCount = count
	if count > 0 {
		charts.Activity.AvgScore = int(math.Round(float64(sum) / float64(count)))
	}

	return charts, nil
}

func bucketIndex(score int) int {
	switch {
	case score < 60:
		return 0
	case score < 70:
		return 1
	case score < 80:
		return 2
	case score < 90:
		return 3
	default:
		return 4
	}
}
