// Package context provides session state management for termfolio.
// It holds navigation, transcript, command history, secrets, identity and
// display settings for one terminal session.
package context

import (
	"github.com/google/uuid"
)

// DefaultUsername is the user shown until client identity resolves.
const DefaultUsername = "visitor"

// TerminalContext is the session state of one terminal. It is composed of
// focused subcontexts; each one guards its own state.
type TerminalContext struct {
	sessionID string
	testMode  bool

	navigationCtx NavigationSubcontext
	transcriptCtx TranscriptSubcontext
	historyCtx    HistorySubcontext
	secretsCtx    SecretsSubcontext
	identityCtx   IdentitySubcontext
	settingsCtx   SettingsSubcontext
}

// New creates a TerminalContext positioned at the default home directory.
func New() *TerminalContext {
	ctx := &TerminalContext{
		navigationCtx: NewNavigationSubcontext(DefaultUsername),
		transcriptCtx: NewTranscriptSubcontext(),
		historyCtx:    NewHistorySubcontext(),
		secretsCtx:    NewSecretsSubcontext(),
		identityCtx:   NewIdentitySubcontext(),
		settingsCtx:   NewSettingsSubcontext(),
	}
	ctx.sessionID = ctx.generateSessionID()
	return ctx
}

// generateSessionID creates a session ID, deterministic in test mode.
func (ctx *TerminalContext) generateSessionID() string {
	if ctx.testMode {
		return "session-00000000"
	}
	return "session-" + uuid.NewString()
}

// SetTestMode switches deterministic behaviour on or off.
func (ctx *TerminalContext) SetTestMode(testMode bool) {
	ctx.testMode = testMode
	ctx.sessionID = ctx.generateSessionID()
}

// IsTestMode reports whether the context runs in test mode.
func (ctx *TerminalContext) IsTestMode() bool {
	return ctx.testMode
}

// SessionID returns the identifier of this terminal session.
func (ctx *TerminalContext) SessionID() string {
	return ctx.sessionID
}

// Navigation returns the current path state.
func (ctx *TerminalContext) Navigation() NavigationSubcontext {
	return ctx.navigationCtx
}

// Transcript returns the command/output transcript.
func (ctx *TerminalContext) Transcript() TranscriptSubcontext {
	return ctx.transcriptCtx
}

// History returns the command history log.
func (ctx *TerminalContext) History() HistorySubcontext {
	return ctx.historyCtx
}

// Secrets returns the discovered easter eggs.
func (ctx *TerminalContext) Secrets() SecretsSubcontext {
	return ctx.secretsCtx
}

// Identity returns the resolved client identity.
func (ctx *TerminalContext) Identity() IdentitySubcontext {
	return ctx.identityCtx
}

// Settings returns display settings such as turbo mode and theme.
func (ctx *TerminalContext) Settings() SettingsSubcontext {
	return ctx.settingsCtx
}

// Username returns the resolved username, or DefaultUsername.
func (ctx *TerminalContext) Username() string {
	return ctx.identityCtx.Username()
}

// ApplyIdentity records the resolved client identity and rebases navigation
// onto the new home directory in one step.
func (ctx *TerminalContext) ApplyIdentity(username, ipAddress, hostname string) {
	ctx.identityCtx.Set(username, ipAddress, hostname)
	ctx.navigationCtx.Rebase(ctx.identityCtx.Username())
}
