package service

import (
	"time"

	"daily_quiz_backend/internal/model"
)

// QuizDay truncates a time to its calendar day in local time.
func QuizDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DeadlineFor returns the cutoff for a quiz: the local midnight that ends
// its calendar day. Submissions at or after this instant are rejected.
func DeadlineFor(quizDate time.Time) time.Time {
	return QuizDay(quizDate).AddDate(0, 0, 1)
}

// SnapshotQuestions freezes question content for storage inside a daily
// quiz. The correct answer and explanation travel with the snapshot so
// grading never consults the live question bank.
func SnapshotQuestions(questions []model.Question) []model.QuestionSnapshot {
	snaps := make([]model.QuestionSnapshot, 0, len(questions))
	for _, q := range questions {
		snap := model.QuestionSnapshot{
			QuestionID:    q.ID,
			QuestionText:  q.QuestionText,
			OptionA:       q.OptionA,
			OptionB:       q.OptionB,
			OptionC:       q.OptionC,
			OptionD:       q.OptionD,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		}
		if q.Category != nil {
			snap.CategoryName = q.Category.Name
		}
		snaps = append(snaps, snap)
	}
	return snaps
}

// PublicQuestion is a question snapshot with the answer key stripped, safe
// to serve before the attempt is completed.
type PublicQuestion struct {
	QuestionID   uint   `json:"questionId"`
	QuestionText string `json:"questionText"`
	OptionA      string `json:"optionA"`
	OptionB      string `json:"optionB"`
	OptionC      string `json:"optionC"`
	OptionD      string `json:"optionD"`
	CategoryName string `json:"categoryName,omitempty"`
}

// StripAnswers converts snapshots to their client-facing form, dropping the
// correct answer and explanation.
func StripAnswers(snaps []model.QuestionSnapshot) []PublicQuestion {
	public := make([]PublicQuestion, 0, len(snaps))
	for _, s := range snaps {
		public = append(public, PublicQuestion{
			QuestionID:   s.QuestionID,
			QuestionText: s.QuestionText,
			OptionA:      s.OptionA,
			OptionB:      s.OptionB,
			OptionC:      s.OptionC,
			OptionD:      s.OptionD,
			CategoryName: s.CategoryName,
		})
	}
	return public
}
