package content

import (
	"errors"
	"net/mail"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"termfolio/pkg/termtypes"
)

// Validation errors for contact submissions.
var (
	ErrContactName    = errors.New("name is required")
	ErrContactEmail   = errors.New("a valid email address is required")
	ErrContactMessage = errors.New("message is required")
)

// MaxMessageLength bounds the size of a contact message.
const MaxMessageLength = 5000

// ContactMessage is a stored contact submission.
type ContactMessage struct {
	ID          string
	Name        string
	Email       string
	Message     string
	SubmittedAt time.Time
}

// ValidateContact trims req and checks every field.
func ValidateContact(req termtypes.ContactRequest) (termtypes.ContactRequest, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)

	if req.Name == "" {
		return req, ErrContactName
	}
	if addr, err := mail.ParseAddress(req.Email); err != nil || addr.Address != req.Email {
		return req, ErrContactEmail
	}
	if req.Message == "" || len(req.Message) > MaxMessageLength {
		return req, ErrContactMessage
	}
	return req, nil
}

// ContactLog keeps submitted messages in memory for the life of the process.
type ContactLog struct {
	mu       sync.Mutex
	messages []ContactMessage
	now      func() time.Time
	newID    func() string
}

// NewContactLog creates an empty log.
func NewContactLog() *ContactLog {
	return &ContactLog{now: time.Now, newID: uuid.NewString}
}

// Record validates req and stores it under a new ID.
func (l *ContactLog) Record(req termtypes.ContactRequest) (ContactMessage, error) {
	req, err := ValidateContact(req)
	if err != nil {
		return ContactMessage{}, err
	}
	msg := ContactMessage{
		ID:          l.newID(),
		Name:        req.Name,
		Email:       req.Email,
		Message:     req.Message,
		SubmittedAt: l.now(),
	}
	l.mu.Lock()
	l.messages = append(l.messages, msg)
	l.mu.Unlock()
	return msg, nil
}

// Messages returns a copy of the stored messages in submission order.
func (l *ContactLog) Messages() []ContactMessage {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]ContactMessage(nil), l.messages...)
}
