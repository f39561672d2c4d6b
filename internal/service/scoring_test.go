package service_test

import (
	"testing"

	"daily_quiz_backend/internal/model"
	"daily_quiz_backend/internal/service"
)

func snapshot(id uint, correct model.OptionLabel) model.QuestionSnapshot {
	return model.QuestionSnapshot{
		QuestionID:    id,
		QuestionText:  "question",
		OptionA:       "a",
		OptionB:       "b",
		OptionC:       "c",
		OptionD:       "d",
		CorrectAnswer: correct,
	}
}

func TestScoreAnswer(t *testing.T) {
	if ok, points := service.ScoreAnswer(model.OptionA, model.OptionA); !ok || points != 1 {
		t.Fatalf("correct answer: got ok=%v points=%d, want true/1", ok, points)
	}
	if ok, points := service.ScoreAnswer(model.OptionB, model.OptionA); ok || points != -1 {
		t.Fatalf("incorrect answer: got ok=%v points=%d, want false/-1", ok, points)
	}
}

func TestAggregateAttempt(t *testing.T) {
	questions := []model.QuestionSnapshot{
		snapshot(1, model.OptionA),
		snapshot(2, model.OptionB),
		snapshot(3, model.OptionC),
	}
	answers := []service.SubmittedAnswer{
		{Answer: model.OptionA, TimeSpent: 10},
		{Answer: model.OptionB, TimeSpent: 15},
		{Answer: model.OptionA, TimeSpent: 5},
	}

	stats := service.AggregateAttempt(answers, questions)

	if stats.CorrectAnswers != 2 || stats.IncorrectAnswers != 1 {
		t.Fatalf("got %d correct / %d incorrect, want 2/1", stats.CorrectAnswers, stats.IncorrectAnswers)
	}
	if stats.TotalPoints != 1 {
		t.Fatalf("total points = %d, want 1", stats.TotalPoints)
	}
	if stats.Accuracy != 67 {
		t.Fatalf("accuracy = %d, want 67 (rounded 2/3)", stats.Accuracy)
	}
	if stats.Score != stats.Accuracy {
		t.Fatalf("score = %d, want accuracy %d", stats.Score, stats.Accuracy)
	}
	if stats.TimeSpent != 30 {
		t.Fatalf("time spent = %d, want 30", stats.TimeSpent)
	}

	if len(stats.DetailedAnswers) != 3 {
		t.Fatalf("got %d detailed answers, want 3", len(stats.DetailedAnswers))
	}
	third := stats.DetailedAnswers[2]
	if third.QuestionID != 3 || third.IsCorrect || third.Points != -1 {
		t.Fatalf("third verdict wrong: %+v", third)
	}
	if third.UserAnswer != model.OptionA || third.CorrectAnswer != model.OptionC {
		t.Fatalf("third verdict keeps wrong labels: %+v", third)
	}
}

func TestAggregateAttemptAllWrong(t *testing.T) {
	questions := []model.QuestionSnapshot{
		snapshot(1, model.OptionA),
		snapshot(2, model.OptionA),
	}
	answers := []service.SubmittedAnswer{
		{Answer: model.OptionB},
		{Answer: model.OptionC},
	}

	stats := service.AggregateAttempt(answers, questions)

	if stats.TotalPoints != -2 {
		t.Fatalf("total points = %d, want -2 (points may go negative)", stats.TotalPoints)
	}
	if stats.Accuracy != 0 || stats.Score != 0 {
		t.Fatalf("accuracy/score = %d/%d, want 0/0", stats.Accuracy, stats.Score)
	}
}

func TestAggregateAttemptEmpty(t *testing.T) {
	stats := service.AggregateAttempt(nil, nil)
	if stats.Accuracy != 0 || stats.Score != 0 || stats.TotalPoints != 0 {
		t.Fatalf("empty attempt must score zero, got %+v", stats)
	}
	if stats.DetailedAnswers == nil || len(stats.DetailedAnswers) != 0 {
		t.Fatalf("empty attempt must produce an empty (non-nil) verdict list, got %#v", stats.DetailedAnswers)
	}
}

func TestAggregateAttemptRounding(t *testing.T) {
	// 5 of 7 correct = 71.43%, rounds to 71; 6 of 7 = 85.71%, rounds to 86.
	cases := []struct {
		correct int
		total   int
		want    int
	}{
		{5, 7, 71},
		{6, 7, 86},
		{1, 3, 33},
		{1, 2, 50},
		{5, 5, 100},
	}
	for _, tc := range cases {
		questions := make([]model.QuestionSnapshot, tc.total)
		answers := make([]service.SubmittedAnswer, tc.total)
		for i := 0; i < tc.total; i++ {
			questions[i] = snapshot(uint(i+1), model.OptionA)
			if i < tc.correct {
				answers[i] = service.SubmittedAnswer{Answer: model.OptionA}
			} else {
				answers[i] = service.SubmittedAnswer{Answer: model.OptionB}
			}
		}
		stats := service.AggregateAttempt(answers, questions)
		if stats.Accuracy != tc.want {
			t.Errorf("%d/%d: accuracy = %d, want %d", tc.correct, tc.total, stats.Accuracy, tc.want)
		}
	}
}
