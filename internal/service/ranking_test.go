package service_test

import (
	"testing"
	"time"

	"daily_quiz_backend/internal/model"
	"daily_quiz_backend/internal/service"
)

func player(id uint, name string) model.User {
	return model.User{
		BaseModel: model.BaseModel{ID: id},
		FirstName: name,
		LastName:  "Test",
		Username:  name,
		City:      "Kyiv",
	}
}

func completedAttempt(score int, completedAt time.Time) model.UserQuizAttempt {
	return model.UserQuizAttempt{
		Score:       score,
		IsCompleted: true,
		CompletedAt: &completedAt,
	}
}

func TestBuildRankingsOrder(t *testing.T) {
	day := time.Date(2025, 4, 1, 13, 0, 0, 0, time.Local)
	users := []model.User{player(1, "anna"), player(2, "borys"), player(3, "clara"), player(4, "dmytro")}
	attempts := map[uint][]model.UserQuizAttempt{
		1: {completedAttempt(80, day), completedAttempt(60, day.AddDate(0, 0, 1))}, // total 140
		2: {completedAttempt(200, day)},                                            // total 200
		// 3 and 4 tie on total score; 3 has more quizzes completed.
		3: {completedAttempt(50, day), completedAttempt(50, day.AddDate(0, 0, 1))},
		4: {completedAttempt(100, day)},
	}

	rankings := service.BuildRankings(users, attempts)

	gotOrder := []uint{rankings[0].UserID, rankings[1].UserID, rankings[2].UserID, rankings[3].UserID}
	wantOrder := []uint{2, 1, 3, 4}
	for i := range wantOrder {
		if gotOrder[i] != wantOrder[i] {
			t.Fatalf("order = %v, want %v", gotOrder, wantOrder)
		}
	}

	if rankings[1].AverageScore != 70 {
		t.Fatalf("average score = %d, want 70", rankings[1].AverageScore)
	}
	if rankings[1].LastQuizDate == nil || !rankings[1].LastQuizDate.Equal(day.AddDate(0, 0, 1)) {
		t.Fatalf("last quiz date = %v, want %v", rankings[1].LastQuizDate, day.AddDate(0, 0, 1))
	}
}

func TestBuildRankingsUserIDTiebreak(t *testing.T) {
	day := time.Date(2025, 4, 1, 13, 0, 0, 0, time.Local)
	users := []model.User{player(9, "late"), player(2, "early")}
	attempts := map[uint][]model.UserQuizAttempt{
		9: {completedAttempt(100, day)},
		2: {completedAttempt(100, day)},
	}

	rankings := service.BuildRankings(users, attempts)

	if rankings[0].UserID != 2 || rankings[1].UserID != 9 {
		t.Fatalf("full tie must order by user ID ascending, got %d then %d", rankings[0].UserID, rankings[1].UserID)
	}
}

func TestBuildRankingsNoAttempts(t *testing.T) {
	rankings := service.BuildRankings([]model.User{player(1, "idle")}, nil)
	if len(rankings) != 1 {
		t.Fatalf("idle players must still rank, got %d rows", len(rankings))
	}
	r := rankings[0]
	if r.TotalScore != 0 || r.QuizzesCompleted != 0 || r.AverageScore != 0 || r.LastQuizDate != nil {
		t.Fatalf("idle player must rank with zeros: %+v", r)
	}
}

func TestPageRankings(t *testing.T) {
	rankings := make([]service.PlayerRanking, 5)
	for i := range rankings {
		rankings[i].UserID = uint(i + 1)
	}

	page := service.PageRankings(rankings, 2, 2)
	if len(page) != 2 {
		t.Fatalf("got %d rows, want 2", len(page))
	}
	if page[0].Rank != 3 || page[1].Rank != 4 {
		t.Fatalf("ranks = %d,%d, want 3,4", page[0].Rank, page[1].Rank)
	}
	if page[0].UserID != 3 {
		t.Fatalf("page starts at user %d, want 3", page[0].UserID)
	}

	tail := service.PageRankings(rankings, 4, 10)
	if len(tail) != 1 || tail[0].Rank != 5 {
		t.Fatalf("short tail page wrong: %+v", tail)
	}

	empty := service.PageRankings(rankings, 50, 10)
	if len(empty) != 0 {
		t.Fatalf("offset past the end must return an empty page, got %d rows", len(empty))
	}
}

func TestSummarizeAveragesPerPlayer(t *testing.T) {
	day := time.Date(2025, 4, 1, 13, 0, 0, 0, time.Local)
	users := []model.User{player(1, "heavy"), player(2, "light")}
	attempts := map[uint][]model.UserQuizAttempt{
		// Player 1 averages 40 over many quizzes, player 2 averages 100 over one.
		1: {
			completedAttempt(40, day),
			completedAttempt(40, day.AddDate(0, 0, 1)),
			completedAttempt(40, day.AddDate(0, 0, 2)),
			completedAttempt(40, day.AddDate(0, 0, 3)),
		},
		2: {completedAttempt(100, day)},
	}

	rankings := service.BuildRankings(users, attempts)
	summary := service.Summarize(rankings, attempts)

	if summary.ActivePlayers != 2 {
		t.Fatalf("active players = %d, want 2", summary.ActivePlayers)
	}
	if summary.TotalQuizzesCompleted != 5 {
		t.Fatalf("total quizzes = %d, want 5", summary.TotalQuizzesCompleted)
	}
	// Mean of per-player averages: (40 + 100) / 2 = 70. A volume-weighted
	// mean would give 52.
	if summary.AvgScoreAll != 70 {
		t.Fatalf("avgScoreAll = %d, want 70 (unweighted mean of averages)", summary.AvgScoreAll)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	summary := service.Summarize(nil, nil)
	if summary.ActivePlayers != 0 || summary.AvgScoreAll != 0 || summary.AvgStreak != 0 {
		t.Fatalf("empty population must summarize to zeros: %+v", summary)
	}
}

func TestCurrentStreak(t *testing.T) {
	base := time.Date(2025, 4, 10, 9, 0, 0, 0, time.Local)

	three := []model.UserQuizAttempt{
		completedAttempt(50, base),
		completedAttempt(50, base.AddDate(0, 0, -1)),
		completedAttempt(50, base.AddDate(0, 0, -2)),
		// Gap: the day before that is missing.
		completedAttempt(50, base.AddDate(0, 0, -4)),
	}
	if got := service.CurrentStreak(three); got != 3 {
		t.Fatalf("streak = %d, want 3 (broken by the gap)", got)
	}

	if got := service.CurrentStreak(nil); got != 0 {
		t.Fatalf("no attempts must mean streak 0, got %d", got)
	}

	incomplete := []model.UserQuizAttempt{{Score: 50}}
	if got := service.CurrentStreak(incomplete); got != 0 {
		t.Fatalf("incomplete attempts must not count, got %d", got)
	}

	// Two completions on the same day count once.
	sameDay := []model.UserQuizAttempt{
		completedAttempt(50, base),
		completedAttempt(60, base.Add(2*time.Hour)),
	}
	if got := service.CurrentStreak(sameDay); got != 1 {
		t.Fatalf("same-day completions must count one day, got %d", got)
	}
}

func TestPeriodStart(t *testing.T) {
	now := time.Date(2025, 4, 30, 12, 0, 0, 0, time.Local)

	if start := service.PeriodStart("hour", now); start == nil || !start.Equal(now.Add(-time.Hour)) {
		t.Fatalf("hour cutoff wrong: %v", start)
	}
	if start := service.PeriodStart("week", now); start == nil || !start.Equal(now.AddDate(0, 0, -7)) {
		t.Fatalf("week cutoff wrong: %v", start)
	}
	if start := service.PeriodStart("month", now); start == nil || !start.Equal(now.AddDate(0, 0, -30)) {
		t.Fatalf("month cutoff must be 30 days back: %v", start)
	}
	if start := service.PeriodStart("all", now); start != nil {
		t.Fatalf("all period must mean no cutoff, got %v", start)
	}
	if start := service.PeriodStart("bogus", now); start != nil {
		t.Fatalf("unknown period must mean no cutoff, got %v", start)
	}
}
