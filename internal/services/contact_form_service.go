package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"termfolio/internal/commands"
	"termfolio/internal/logger"
	"termfolio/pkg/termtypes"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type formField int

const (
	fieldNone formField = iota
	fieldName
	fieldEmail
	fieldMessage
)

// Prompts and validation messages of the contact form.
const (
	PromptName         = "Your name:"
	PromptEmail        = "Email address:"
	PromptMessage      = "Message (press Enter twice to submit):"
	ErrEmptyName       = "Error: Name cannot be empty. Please try again."
	ErrInvalidEmail    = "Error: Invalid email format. Please enter a valid email address:"
	ErrEmptyMessage    = "Error: Message cannot be empty. Please enter your message:"
	defaultSubmitError = "Failed to send message. Please try again later."
)

// SubmitFunc sends a completed form. It runs off the event loop.
type SubmitFunc func(ctx context.Context) commands.Output

// FormStep is the result of one line of form input. Submit is set only once
// the message has been entered.
type FormStep struct {
	Output commands.Output
	Submit SubmitFunc
}

// ContactFormService runs the multi-step contact form: name, email, message
// and submission through the content API.
type ContactFormService struct {
	initialized  bool
	mu           sync.Mutex
	api          termtypes.ContentAPI
	contactEmail string
	field        formField
	data         termtypes.ContactRequest
}

// NewContactFormService creates a form submitting through api. contactEmail
// is offered as a fallback when submission fails.
func NewContactFormService(api termtypes.ContentAPI, contactEmail string) *ContactFormService {
	return &ContactFormService{api: api, contactEmail: contactEmail}
}

// Name returns the service name "contact_form" for registration.
func (f *ContactFormService) Name() string {
	return "contact_form"
}

// Initialize sets up the ContactFormService for operation.
func (f *ContactFormService) Initialize() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.initialized = true
	return nil
}

// Start begins a new form and returns the first prompt.
func (f *ContactFormService) Start() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.initialized {
		return "Contact form unavailable."
	}
	f.field = fieldName
	f.data = termtypes.ContactRequest{}
	logger.ServiceOperation("contact_form", "start")
	return "CONTACT FORM\nType your answers and press Enter. Press Ctrl+C to cancel.\n\n" + PromptName
}

// Active reports whether a form is waiting for input.
func (f *ContactFormService) Active() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.field != fieldNone
}

// Cancel abandons the form in progress.
func (f *ContactFormService) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.field = fieldNone
	f.data = termtypes.ContactRequest{}
}

// Handle consumes one line of input for the current field.
func (f *ContactFormService) Handle(line string) FormStep {
	f.mu.Lock()
	defer f.mu.Unlock()

	value := strings.TrimSpace(line)
	switch f.field {
	case fieldName:
		if value == "" {
			return FormStep{Output: commands.Fail(ErrEmptyName)}
		}
		f.data.Name = value
		f.field = fieldEmail
		return FormStep{Output: commands.Info(PromptEmail)}

	case fieldEmail:
		if !emailPattern.MatchString(value) {
			return FormStep{Output: commands.Fail(ErrInvalidEmail)}
		}
		f.data.Email = value
		f.field = fieldMessage
		return FormStep{Output: commands.Info(PromptMessage)}

	case fieldMessage:
		if value == "" {
			return FormStep{Output: commands.Fail(ErrEmptyMessage)}
		}
		f.data.Message = value
		req := f.data
		f.field = fieldNone
		f.data = termtypes.ContactRequest{}
		return FormStep{
			Output: commands.Info("Sending message..."),
			Submit: f.submitter(req),
		}

	default:
		return FormStep{Output: commands.Info(`Contact form completed. Type "mail" to start a new message.`)}
	}
}

func (f *ContactFormService) submitter(req termtypes.ContactRequest) SubmitFunc {
	api := f.api
	contactEmail := f.contactEmail
	return func(ctx context.Context) commands.Output {
		if api == nil {
			return commands.Fail(submitFailure(defaultSubmitError, contactEmail))
		}
		resp, err := api.SubmitContact(ctx, req)
		if err != nil {
			logger.Warn("Contact submission failed", "error", err)
			msg := defaultSubmitError
			var status *StatusError
			if errors.As(err, &status) && status.Message != "" {
				msg = status.Message
			}
			return commands.Fail(submitFailure(msg, contactEmail))
		}
		logger.Info("Contact message submitted", "id", resp.ID, "email_sent", resp.EmailSent)
		return commands.Info(successBox(req, resp.EmailSent))
	}
}

func submitFailure(msg, contactEmail string) string {
	return fmt.Sprintf("Error: %s\n\nPlease try again or contact me directly at %s", msg, contactEmail)
}

func successBox(req termtypes.ContactRequest, emailSent bool) string {
	status := "⚠ Message saved (email notifications disabled)"
	if emailSent {
		status = "✓ Email notification sent successfully"
	}

	lines := []string{
		"",
		"Thank you for reaching out, " + req.Name,
		"",
		"I'll get back to you at " + req.Email,
		"as soon as possible!",
		"",
		status,
		"",
		"Summary:",
		"• Name: " + req.Name,
		"• Email: " + req.Email,
	}
	message := []rune(req.Message)
	first, rest := message, []rune(nil)
	if len(message) > 44 {
		first, rest = message[:44], message[44:]
	}
	lines = append(lines, "• Message: "+string(first))
	if len(rest) > 0 {
		if len(rest) > 44 {
			rest = rest[:44]
		}
		lines = append(lines, "           "+string(rest))
	}
	lines = append(lines, "")
	return commands.Box("MESSAGE SENT SUCCESSFULLY", lines...)
}
