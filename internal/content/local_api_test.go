package content

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termfolio/pkg/termtypes"
)

func TestLocalAPIContent(t *testing.T) {
	api := NewLocalAPI(newTestStore(t), "portfolio.test")
	ctx := context.Background()

	client, err := api.ClientInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "visitor", client.Username)
	assert.Equal(t, "127.0.0.1", client.IPAddress)
	assert.Equal(t, "portfolio.test", client.Hostname)

	server, err := api.ServerInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "portfolio.test", server.Hostname)

	boot, err := api.BootInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "portfolio.test", boot.Hostname)

	files, err := api.DirectoryContents(ctx, "portfolio")
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha.md", "beta.md"}, files)

	_, err = api.FileContent(ctx, "blog/missing.md")
	require.Error(t, err)
	assert.Equal(t, "File not found: blog/missing.md", err.Error())

	posts, err := api.BlogSearch(ctx, "kafka")
	require.NoError(t, err)
	require.Len(t, posts, 1)

	projects, err := api.PortfolioFilter(ctx, "go")
	require.NoError(t, err)
	require.Len(t, projects, 1)

	resume, err := api.Resume(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Plain resume", resume.Text)
}

func TestLocalAPIHonoursCancelledContext(t *testing.T) {
	api := NewLocalAPI(newTestStore(t), "portfolio.test")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := api.BlogList(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = api.SubmitContact(ctx, termtypes.ContactRequest{Name: "a", Email: "a@b.co", Message: "m"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLocalAPISubmitContact(t *testing.T) {
	api := NewLocalAPI(newTestStore(t), "portfolio.test")
	fixed := time.Date(2025, time.January, 2, 15, 4, 5, 0, time.UTC)
	api.contacts.now = func() time.Time { return fixed }
	api.contacts.newID = func() string { return "id-1" }

	resp, err := api.SubmitContact(context.Background(), termtypes.ContactRequest{
		Name:    "  Ada ",
		Email:   "ada@example.com",
		Message: "Hello there",
	})
	require.NoError(t, err)
	assert.Equal(t, "id-1", resp.ID)
	assert.False(t, resp.EmailSent)

	messages := api.Contacts().Messages()
	require.Len(t, messages, 1)
	assert.Equal(t, "Ada", messages[0].Name)
	assert.Equal(t, fixed, messages[0].SubmittedAt)
}

func TestValidateContact(t *testing.T) {
	tests := []struct {
		name string
		req  termtypes.ContactRequest
		err  error
	}{
		{"valid", termtypes.ContactRequest{Name: "Ada", Email: "ada@example.com", Message: "hi"}, nil},
		{"blank name", termtypes.ContactRequest{Name: " ", Email: "ada@example.com", Message: "hi"}, ErrContactName},
		{"bad email", termtypes.ContactRequest{Name: "Ada", Email: "ada at example", Message: "hi"}, ErrContactEmail},
		{"display name email", termtypes.ContactRequest{Name: "Ada", Email: "Ada <ada@example.com>", Message: "hi"}, ErrContactEmail},
		{"blank message", termtypes.ContactRequest{Name: "Ada", Email: "ada@example.com", Message: "\n"}, ErrContactMessage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateContact(tt.req)
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
