package service

import (
	"bytes"
	"fmt"
	"math"
	"time"

	"daily_quiz_backend/internal/repository"
	"daily_quiz_backend/internal/util"

	"github.com/xuri/excelize/v2"
)

// ReportService renders admin XLSX exports.
type ReportService struct {
	UserRepo *repository.UserRepository
	QuizRepo *repository.QuizRepository
}

func NewReportService(userRepo *repository.UserRepository, quizRepo *repository.QuizRepository) *ReportService {
	return &ReportService{
		UserRepo: userRepo,
		QuizRepo: quizRepo,
	}
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

// UsersReport exports every account as an XLSX workbook.
func (s *ReportService) UsersReport() (*bytes.Buffer, error) {
	users, _, err := s.UserRepo.List(repository.UserFilter{Limit: 10000})
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Users"
	f.SetSheetName(f.GetSheetName(0), sheet)

	header := []interface{}{
		"ID", "First Name", "Last Name", "City", "Position", "Phone",
		"Total Score", "Tests Completed", "Registration Date", "Last Login", "Is Active",
	}
	if err := writeRow(f, sheet, 1, header); err != nil {
		return nil, err
	}

	for i, u := range users {
		position := ""
		if u.Position != nil {
			position = u.Position.Name
		}
		row := []interface{}{
			u.ID, u.FirstName, u.LastName, u.City, position, u.Phone,
			u.TotalScore, u.TestsCompleted,
			u.RegistrationDate.Format(util.DateFormat),
			u.LastLogin.Format(util.DateFormat),
			u.IsActive,
		}
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return nil, err
		}
	}

	return f.WriteToBuffer()
}

// QuizReport exports per-quiz participation, optionally restricted to a
// date range.
func (s *ReportService) QuizReport(startDate, endDate *time.Time) (*bytes.Buffer, error) {
	quizzes, err := s.QuizRepo.FindRecent(1000)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Quiz Report"
	f.SetSheetName(f.GetSheetName(0), sheet)

	header := []interface{}{
		"Quiz Date", "Questions Count", "Total Attempts", "Completed Attempts", "Average Score",
	}
	if err := writeRow(f, sheet, 1, header); err != nil {
		return nil, err
	}

	row := 2
	for _, quiz := range quizzes {
		if startDate != nil && quiz.QuizDate.Before(*startDate) {
			continue
		}
		if endDate != nil && quiz.QuizDate.After(*endDate) {
			continue
		}

		snaps, err := quiz.Snapshots()
		if err != nil {
			return nil, fmt.Errorf("quiz %d has malformed questions: %w", quiz.ID, err)
		}

		total, completed, avgScore, err := s.quizAttemptStats(quiz.ID)
		if err != nil {
			return nil, err
		}

		values := []interface{}{
			quiz.QuizDate.Format(util.DateFormat), len(snaps), total, completed, avgScore,
		}
		if err := writeRow(f, sheet, row, values); err != nil {
			return nil, err
		}
		row++
	}

	return f.WriteToBuffer()
}

func (s *ReportService) quizAttemptStats(quizID uint) (int64, int64, int, error) {
	var attempts []struct {
		Score       int
		IsCompleted bool
	}
	err := s.QuizRepo.DB.Table("user_quiz_attempts").
		Select("score, is_completed").
		Where("quiz_id = ? AND deleted_at IS NULL", quizID).
		Scan(&attempts).Error
	if err != nil {
		return 0, 0, 0, err
	}

	var completed int64
	sum := 0
	for _, a := range attempts {
		if a.IsCompleted {
			completed++
			sum += a.Score
		}
	}

	avg := 0
	if completed > 0 {
		avg = int(math.Round(float64(sum) / float64(completed)))
	}
	return int64(len(attempts)), completed, avg, nil
}
