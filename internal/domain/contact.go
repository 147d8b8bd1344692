package domain

import "time"

// ContactMessage represents a submitted contact form message.
// Messages are write-only: no API in this service reads them back.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// InsertContactMessage represents a contact form submission
type InsertContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Validate checks that all contact form fields are present
func (m *InsertContactMessage) Validate() error {
	if m.Name == "" || m.Email == "" || m.Subject == "" || m.Message == "" {
		return ErrInvalidContactMessage
	}
	return nil
}
