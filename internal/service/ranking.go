package service

import (
	"math"
	"sort"
	"time"

	"daily_quiz_backend/internal/model"
)

// PlayerRanking is one row of the admin ranking table.
type PlayerRanking struct {
	Rank             int        `json:"rank"`
	UserID           uint       `json:"userId"`
	FullName         string     `json:"fullName"`
	Username         string     `json:"username"`
	City             string     `json:"city"`
	Position         string     `json:"position"`
	TotalScore       int        `json:"totalScore"`
	QuizzesCompleted int        `json:"quizzesCompleted"`
	AverageScore     int        `json:"averageScore"`
	LastQuizDate     *time.Time `json:"lastQuizDate,omitempty"`
}

// RankingSummary aggregates the whole filtered player population, not just
// the returned page.
type RankingSummary struct {
	ActivePlayers         int `json:"activePlayers"`
	AvgScoreAll           int `json:"avgScoreAll"`
	TotalQuizzesCompleted int `json:"totalQuizzesCompleted"`
	AvgStreak             int `json:"avgStreak"`
}

// PeriodStart maps a ranking period to its cutoff instant. The cutoff is
// applied to account creation time, not attempt time; the all period (and
// anything unrecognized) means no cutoff.
func PeriodStart(period string, now time.Time) *time.Time {
	var start time.Time
	switch period {
	case "hour":
		start = now.Add(-time.Hour)
	case "week":
		start = now.AddDate(0, 0, -7)
	case "month":
		start = now.AddDate(0, 0, -30)
	default:
		return nil
	}
	return &start
}

// BuildRankings folds each player's completed attempts into a ranking row
// and orders the result by total score, then quizzes completed, then user
// ID for a stable order. Players with no attempts still rank, with zeros.
func BuildRankings(users []model.User, attemptsByUser map[uint][]model.UserQuizAttempt) []PlayerRanking {
	rankings := make([]PlayerRanking, 0, len(users))
	for _, u := range users {
		row := PlayerRanking{
			UserID:   u.ID,
			FullName: u.FullName(),
			Username: u.Username,
			City:     u.City,
		}
		if u.Position != nil {
			row.Position = u.Position.Name
		}

		attempts := attemptsByUser[u.ID]
		sum := 0
		for _, a := range attempts {
			sum += a.Score
			if a.CompletedAt != nil && (row.LastQuizDate == nil || a.CompletedAt.After(*row.LastQuizDate)) {
				row.LastQuizDate = a.CompletedAt
			}
		}
		row.QuizzesCompleted = len(attempts)
		row.TotalScore = sum
		if len(attempts) > 0 {
			row.AverageScore = int(math.Round(float64(sum) / float64(len(attempts))))
		}

		rankings = append(rankings, row)
	}

	sort.Slice(rankings, func(i, j int) bool {
		if rankings[i].TotalScore != rankings[j].TotalScore {
			return rankings[i].TotalScore > rankings[j].TotalScore
		}
		if rankings[i].QuizzesCompleted != rankings[j].QuizzesCompleted {
			return rankings[i].QuizzesCompleted > rankings[j].QuizzesCompleted
		}
		return rankings[i].UserID < rankings[j].UserID
	})

	return rankings
}

// PageRankings slices one page out of the ordered rankings and assigns
// page-relative ranks (offset + index + 1).
func PageRankings(rankings []PlayerRanking, offset, limit int) []PlayerRanking {
	if offset >= len(rankings) {
		return []PlayerRanking{}
	}
	end := offset + limit
	if end > len(rankings) {
		end = len(rankings)
	}

	page := make([]PlayerRanking, end-offset)
	copy(page, rankings[offset:end])
	for i := range page {
		page[i].Rank = offset + i + 1
	}
	return page
}

// Summarize computes population-level stats over every ranked player.
// avgScoreAll is the rounded mean of the per-player average scores, so a
// player with one quiz weighs as much as one with a hundred.
func Summarize(rankings []PlayerRanking, attemptsByUser map[uint][]model.UserQuizAttempt) RankingSummary {
	summary := RankingSummary{ActivePlayers: len(rankings)}
	if len(rankings) == 0 {
		return summary
	}

	avgSum := 0.0
	streakSum := 0
	for _, r := range rankings {
		summary.TotalQuizzesCompleted += r.QuizzesCompleted
		avgSum += float64(r.AverageScore)
		streakSum += CurrentStreak(attemptsByUser[r.UserID])
	}
	summary.AvgScoreAll = int(math.Round(avgSum / float64(len(rankings))))
	summary.AvgStreak = int(math.Round(float64(streakSum) / float64(len(rankings))))

	return summary
}

// CurrentStreak is the number of consecutive calendar days, ending at the
// player's most recent completed attempt, on which they completed a quiz.
func CurrentStreak(attempts []model.UserQuizAttempt) int {
	days := make(map[time.Time]bool)
	var latest time.Time
	for _, a := range attempts {
		if a.CompletedAt == nil {
			continue
		}
		day := QuizDay(*a.CompletedAt)
		days[day] = true
		if day.After(latest) {
			latest = day
		}
	}
	if len(days) == 0 {
		return 0
	}

	streak := 0
	for day := latest; days[day]; day = day.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}
