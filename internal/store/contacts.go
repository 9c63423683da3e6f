package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shubhgupta/shubh-dev/internal/contact"
)

// CreateContact stores a validated form as a pending submission.
func (s *Store) CreateContact(form *contact.FormData) (*contact.Submission, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	sub := &contact.Submission{
		ID:        uuid.NewString(),
		Name:      form.Name,
		Email:     form.Email,
		Subject:   form.Subject,
		Message:   form.Message,
		Status:    contact.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := s.db.Exec(`
		INSERT INTO contacts (id, name, email, subject, message, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, sub.ID, sub.Name, sub.Email, sub.Subject, sub.Message, sub.Status,
		sub.CreatedAt, sub.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("inserting contact: %w", err)
	}
	return sub, nil
}

// ListContacts returns all submissions, newest first.
func (s *Store) ListContacts() ([]contact.Submission, error) {
	rows, err := s.db.Query(`
		SELECT id, name, email, subject, message, status, created_at, updated_at
		FROM contacts ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("listing contacts: %w", err)
	}
	defer rows.Close()

	var subs []contact.Submission
	for rows.Next() {
		var sub contact.Submission
		if err := rows.Scan(&sub.ID, &sub.Name, &sub.Email, &sub.Subject,
			&sub.Message, &sub.Status, &sub.CreatedAt, &sub.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning contact: %w", err)
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

// UpdateContactStatus moves a submission through its lifecycle.
func (s *Store) UpdateContactStatus(id, status string) error {
	if !contact.ValidStatus(status) {
		return fmt.Errorf("invalid status %q", status)
	}
	res, err := s.db.Exec(`
		UPDATE contacts SET status = ?, updated_at = ? WHERE id = ?
	`, status, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("updating contact %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// GetContact returns one submission by ID.
func (s *Store) GetContact(id string) (*contact.Submission, error) {
	var sub contact.Submission
	err := s.db.QueryRow(`
		SELECT id, name, email, subject, message, status, created_at, updated_at
		FROM contacts WHERE id = ?
	`, id).Scan(&sub.ID, &sub.Name, &sub.Email, &sub.Subject, &sub.Message,
		&sub.Status, &sub.CreatedAt, &sub.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching contact %s: %w", id, err)
	}
	return &sub, nil
}
