package contact

import (
	"fmt"
	"net/smtp"
)

// Notifier sends a notification email for each submission. Sending is
// best-effort: callers log failures instead of failing the submission.
type Notifier struct {
	Host string
	Port string
	User string
	Pass string
	To   string
}

// Configured reports whether SMTP credentials are present.
func (n *Notifier) Configured() bool {
	return n.User != "" && n.Pass != ""
}

// Notify emails the submission to the configured recipient.
func (n *Notifier) Notify(sub *Submission) error {
	if !n.Configured() {
		return fmt.Errorf("SMTP credentials not configured")
	}

	to := n.To
	if to == "" {
		to = n.User
	}

	subject := fmt.Sprintf("Portfolio Contact: %s", sub.Subject)
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Subject: %s
Message:
%s

---
Sent from your portfolio contact form
`, sub.Name, sub.Email, sub.Subject, sub.Message)

	msg := []byte("To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + n.User + "\r\n" +
		"Reply-To: " + sub.Email + "\r\n" +
		"\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", n.User, n.Pass, n.Host)
	return smtp.SendMail(n.Host+":"+n.Port, auth, n.User, []string{to}, msg)
}
