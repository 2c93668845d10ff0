package context

import (
	"strings"
	"sync"
)

// HomeFor returns the home directory path of username.
func HomeFor(username string) string {
	return "/home/" + username
}

// NavigationSubcontext holds the current working path. The path always
// starts with the home directory of the current user.
type NavigationSubcontext interface {
	Home() string
	CurrentPath() string
	SetCurrentPath(path string)
	ResetToHome()
	AtHome() bool
	Rebase(username string)
}

type navigationSubcontext struct {
	home string
	path string
	mu   sync.RWMutex
}

// NewNavigationSubcontext creates navigation state positioned at username's home.
func NewNavigationSubcontext(username string) NavigationSubcontext {
	home := HomeFor(username)
	return &navigationSubcontext{home: home, path: home}
}

func (n *navigationSubcontext) Home() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.home
}

func (n *navigationSubcontext) CurrentPath() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.path
}

func (n *navigationSubcontext) SetCurrentPath(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.path = path
}

func (n *navigationSubcontext) ResetToHome() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.path = n.home
}

func (n *navigationSubcontext) AtHome() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.path == n.home
}

// Rebase moves the home directory to username's home. A current path under
// the old home keeps its relative position under the new one.
func (n *navigationSubcontext) Rebase(username string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	newHome := HomeFor(username)
	if newHome == n.home {
		return
	}
	switch {
	case n.path == n.home:
		n.path = newHome
	case strings.HasPrefix(n.path, n.home+"/"):
		n.path = newHome + strings.TrimPrefix(n.path, n.home)
	}
	n.home = newHome
}
