// Package contact handles contact form submissions: validation, the
// submission lifecycle, and notification email.
package contact

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Submission statuses. A submission is created pending; transitions to
// read or replied happen through the admin surface only.
const (
	StatusPending = "pending"
	StatusRead    = "read"
	StatusReplied = "replied"
)

const (
	// MaxSubjectLength bounds the subject line.
	MaxSubjectLength = 200
	// MaxMessageLength bounds the message body.
	MaxMessageLength = 5000
)

var emailShape = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// FormData is what the contact form submits.
type FormData struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Validate checks the form against the submission schema.
func (f *FormData) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if !emailShape.MatchString(f.Email) {
		return fmt.Errorf("invalid email address")
	}
	subject := strings.TrimSpace(f.Subject)
	if subject == "" {
		return fmt.Errorf("subject is required")
	}
	if len(subject) > MaxSubjectLength {
		return fmt.Errorf("subject exceeds %d characters", MaxSubjectLength)
	}
	if strings.TrimSpace(f.Message) == "" {
		return fmt.Errorf("message is required")
	}
	if len(f.Message) > MaxMessageLength {
		return fmt.Errorf("message exceeds %d characters", MaxMessageLength)
	}
	return nil
}

// Submission is a stored contact form submission.
type Submission struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ValidStatus reports whether s is a known submission status.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusRead || s == StatusReplied
}
