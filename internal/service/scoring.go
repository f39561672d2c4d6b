package service

import (
	"math"

	"daily_quiz_backend/internal/model"
)

// SubmittedAnswer is one answer as received from the client. Answers are
// paired with quiz questions by position, so the slice must be ordered the
// same way the questions were served.
type SubmittedAnswer struct {
	Answer    model.OptionLabel `json:"answer" binding:"required"`
	TimeSpent int               `json:"timeSpent"`
}

// DetailedAnswer is the per-question verdict returned after submission and
// persisted as a UserAnswer row.
type DetailedAnswer struct {
	QuestionID    uint              `json:"questionId"`
	QuestionText  string            `json:"questionText"`
	UserAnswer    model.OptionLabel `json:"userAnswer"`
	CorrectAnswer model.OptionLabel `json:"correctAnswer"`
	IsCorrect     bool              `json:"isCorrect"`
	Points        int               `json:"points"`
	Explanation   string            `json:"explanation,omitempty"`
	TimeSpent     int               `json:"timeSpent"`
}

// AttemptStats is the aggregate outcome of one quiz attempt.
type AttemptStats struct {
	CorrectAnswers   int              `json:"correctAnswers"`
	IncorrectAnswers int              `json:"incorrectAnswers"`
	TotalPoints      int              `json:"totalPoints"`
	Accuracy         int              `json:"accuracy"`
	Score            int              `json:"score"`
	TimeSpent        int              `json:"timeSpent"`
	DetailedAnswers  []DetailedAnswer `json:"detailedAnswers"`
}

// ScoreAnswer grades a single selection: a correct answer earns one point,
// an incorrect one loses one.
func ScoreAnswer(selected, correct model.OptionLabel) (bool, int) {
	if selected == correct {
		return true, 1
	}
	return false, -1
}

// AggregateAttempt grades a full answer sheet against the quiz's frozen
// questions. Answers pair with questions by index; callers must have
// verified the lengths match. Accuracy is the rounded percentage of correct
// answers (0 when there are no questions) and doubles as the attempt score,
// while total points may go negative.
func AggregateAttempt(answers []SubmittedAnswer, questions []model.QuestionSnapshot) AttemptStats {
	stats := AttemptStats{
		DetailedAnswers: make([]DetailedAnswer, 0, len(answers)),
	}

	for i, question := range questions {
		answer := answers[i]
		isCorrect, points := ScoreAnswer(answer.Answer, question.CorrectAnswer)

		if isCorrect {
			stats.CorrectAnswers++
		} else {
			stats.IncorrectAnswers++
		}
		stats.TotalPoints += points
		stats.TimeSpent += answer.TimeSpent

		stats.DetailedAnswers = append(stats.DetailedAnswers, DetailedAnswer{
			QuestionID:    question.QuestionID,
			QuestionText:  question.QuestionText,
			UserAnswer:    answer.Answer,
			CorrectAnswer: question.CorrectAnswer,
			IsCorrect:     isCorrect,
			Points:        points,
			Explanation:   question.Explanation,
			TimeSpent:     answer.TimeSpent,
		})
	}

	if n := len(questions); n > 0 {
		stats.Accuracy = int(math.Round(float64(stats.CorrectAnswers) / float64(n) * 100))
	}
	stats.Score = stats.Accuracy

	return stats
}
