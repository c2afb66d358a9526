package models

import (
	"strconv"
	"strings"
	"time"
)

// TimeLayout is the createdAt format persisted to disk.
const TimeLayout = "2006-01-02 15:04"

// Contact is a single agenda entry. ID and CreatedAt are assigned once at
// creation and never rewritten; name, phone and email are the editable
// fields.
type Contact struct {
	ID        int    `validate:"required,min=1"`
	Name      string `validate:"required"`
	Phone     string `validate:"required,contact_phone"`
	Email     string `validate:"required,contact_email"`
	CreatedAt string `validate:"required"`
}

// NewContact builds a contact stamped with the current time.
func NewContact(id int, name, phone, email string) Contact {
	return Contact{
		ID:        id,
		Name:      name,
		Phone:     phone,
		Email:     email,
		CreatedAt: time.Now().Format(TimeLayout),
	}
}

// Line renders the contact as one storage line, fields joined by sep in
// the same order the repository parses them back.
func (c Contact) Line(sep string) string {
	return strings.Join([]string{
		strconv.Itoa(c.ID),
		c.Name,
		c.Phone,
		c.Email,
		c.CreatedAt,
	}, sep)
}
