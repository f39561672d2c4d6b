package service_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"daily_quiz_backend/internal/model"
	"daily_quiz_backend/internal/service"
)

func TestDeadlineFor(t *testing.T) {
	quizDate := time.Date(2025, 3, 10, 12, 30, 0, 0, time.Local)
	deadline := service.DeadlineFor(quizDate)

	want := time.Date(2025, 3, 11, 0, 0, 0, 0, time.Local)
	if !deadline.Equal(want) {
		t.Fatalf("deadline = %v, want next local midnight %v", deadline, want)
	}
}

func TestDeadlineForMonthBoundary(t *testing.T) {
	quizDate := time.Date(2025, 1, 31, 18, 0, 0, 0, time.Local)
	deadline := service.DeadlineFor(quizDate)

	want := time.Date(2025, 2, 1, 0, 0, 0, 0, time.Local)
	if !deadline.Equal(want) {
		t.Fatalf("deadline = %v, want %v", deadline, want)
	}
}

func TestDeadlineSameForWholeDay(t *testing.T) {
	morning := time.Date(2025, 3, 10, 0, 0, 1, 0, time.Local)
	evening := time.Date(2025, 3, 10, 23, 59, 59, 0, time.Local)

	if !service.DeadlineFor(morning).Equal(service.DeadlineFor(evening)) {
		t.Fatal("every instant of a quiz day must share one deadline")
	}
}

func TestSnapshotQuestions(t *testing.T) {
	questions := []model.Question{
		{
			BaseModel:     model.BaseModel{ID: 7},
			QuestionText:  "What temperature must hot dishes be held at?",
			OptionA:       "40C",
			OptionB:       "50C",
			OptionC:       "60C",
			OptionD:       "70C",
			CorrectAnswer: model.OptionC,
			Explanation:   "Hot holding requires 60C or above.",
			Category:      &model.Category{Name: "Food Safety"},
		},
		{
			BaseModel:     model.BaseModel{ID: 9},
			QuestionText:  "no category loaded",
			CorrectAnswer: model.OptionA,
		},
	}

	snaps := service.SnapshotQuestions(questions)

	if len(snaps) != 2 {
		t.Fatalf("got %d snapshots, want 2", len(snaps))
	}
	first := snaps[0]
	if first.QuestionID != 7 || first.CorrectAnswer != model.OptionC {
		t.Fatalf("snapshot must carry the answer key: %+v", first)
	}
	if first.CategoryName != "Food Safety" {
		t.Fatalf("snapshot category = %q, want Food Safety", first.CategoryName)
	}
	if snaps[1].CategoryName != "" {
		t.Fatalf("nil category must leave the name empty, got %q", snaps[1].CategoryName)
	}
}

func TestStripAnswers(t *testing.T) {
	snaps := []model.QuestionSnapshot{
		{
			QuestionID:    3,
			QuestionText:  "q",
			OptionA:       "a",
			OptionB:       "b",
			OptionC:       "c",
			OptionD:       "d",
			CorrectAnswer: model.OptionB,
			Explanation:   "secret",
			CategoryName:  "Operations",
		},
	}

	public := service.StripAnswers(snaps)

	if len(public) != 1 {
		t.Fatalf("got %d public questions, want 1", len(public))
	}
	p := public[0]
	if p.QuestionID != 3 || p.OptionB != "b" || p.CategoryName != "Operations" {
		t.Fatalf("public question missing content: %+v", p)
	}
	// The serialized form is what reaches the client before submission; it
	// must not leak the answer key.
	raw, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(raw), "correctAnswer") || strings.Contains(string(raw), "secret") {
		t.Fatalf("public question leaks the answer key: %s", raw)
	}
}
