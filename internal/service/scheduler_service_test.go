package service

import (
	"testing"
	"time"

	"daily_quiz_backend/internal/config"
)

func TestSchedulerClaim(t *testing.T) {
	s := NewSchedulerService(nil, &config.Config{})

	noon := time.Date(2025, 5, 1, 12, 0, 0, 0, time.Local)
	if !s.claim("generate", noon) {
		t.Fatal("first claim of a slot must win")
	}
	if s.claim("generate", noon.Add(30*time.Minute)) {
		t.Fatal("same hour of the same day must not run twice")
	}
	if !s.claim("remind", noon) {
		t.Fatal("a different job owns its own slot")
	}
	if !s.claim("generate", noon.Add(time.Hour)) {
		t.Fatal("the next hour is a fresh slot")
	}
	if !s.claim("generate", noon.AddDate(0, 0, 1)) {
		t.Fatal("the same hour next day is a fresh slot")
	}
}
