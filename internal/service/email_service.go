package service

import (
	"fmt"

	"daily_quiz_backend/internal/config"
	"daily_quiz_backend/internal/model"
	"daily_quiz_backend/pkg/logger"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// EmailService sends notification mail over SMTP. Delivery is always best
// effort: failures are logged and never propagate to the caller, so a dead
// mail server cannot block quiz generation or registration.
type EmailService struct {
	Cfg *config.Config
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{Cfg: cfg}
}

func (s *EmailService) send(to, subject, htmlBody string) {
	if !s.Cfg.Email.Enabled() {
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.Cfg.Email.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(s.Cfg.Email.Host, s.Cfg.Email.Port, s.Cfg.Email.User, s.Cfg.Email.Password)
	if err := d.DialAndSend(m); err != nil {
		logger.Log.Warn("failed to send email",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.Error(err))
	}
}

// recipient picks the address for a user. The platform registers accounts
// by username; usernames that are email addresses receive mail, others are
// skipped silently.
func recipient(user *model.User) string {
	for _, r := range user.Username {
		if r == '@' {
			return user.Username
		}
	}
	return ""
}

func (s *EmailService) SendWelcome(user *model.User) {
	to := recipient(user)
	if to == "" {
		return
	}
	body := fmt.Sprintf(`<h2>Ласкаво просимо, %s!</h2>
<p>Ваш акаунт створено. Щодня на вас чекає новий квіз.</p>
<p><a href="%s">Перейти до застосунку</a></p>`, user.FirstName, s.Cfg.Email.ClientURL)
	go s.send(to, "Ласкаво просимо до Quiz App!", body)
}

func (s *EmailService) SendQuizAvailable(user *model.User, questionCount int) {
	to := recipient(user)
	if to == "" {
		return
	}
	body := fmt.Sprintf(`<h2>Щоденний квіз готовий!</h2>
<p>Привіт, %s! Сьогоднішній квіз із %d питань вже доступний.</p>
<p>Квіз закривається опівночі — не зволікайте.</p>
<p><a href="%s">Пройти квіз</a></p>`, user.FirstName, questionCount, s.Cfg.Email.ClientURL)
	go s.send(to, "Щоденний квіз готовий!", body)
}

func (s *EmailService) SendReminder(user *model.User, hoursLeft int) {
	to := recipient(user)
	if to == "" {
		return
	}
	body := fmt.Sprintf(`<h2>Нагадування</h2>
<p>%s, ви ще не пройшли сьогоднішній квіз.</p>
<p>До закриття залишилось близько %d годин.</p>
<p><a href="%s">Пройти зараз</a></p>`, user.FirstName, hoursLeft, s.Cfg.Email.ClientURL)
	go s.send(to, fmt.Sprintf("Нагадування: Квіз закінчується через %d годин", hoursLeft), body)
}

func (s *EmailService) SendQuizResult(user *model.User, stats AttemptStats, totalQuestions int) {
	to := recipient(user)
	if to == "" {
		return
	}
	body := fmt.Sprintf(`<h2>Ваш результат</h2>
<p>%s, ви відповіли правильно на %d із %d питань.</p>
<p>Точність: %d%%, балів: %d.</p>`,
		user.FirstName, stats.CorrectAnswers, totalQuestions, stats.Accuracy, stats.TotalPoints)
	go s.send(to, fmt.Sprintf("Результат квізу: %d/%d", stats.CorrectAnswers, totalQuestions), body)
}
