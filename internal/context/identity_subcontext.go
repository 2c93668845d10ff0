package context

import "sync"

// IdentitySubcontext holds the client identity reported by the backend.
type IdentitySubcontext interface {
	Set(username, ipAddress, hostname string)
	Resolved() bool
	Username() string
	IPAddress() string
	Hostname() string
}

type identitySubcontext struct {
	resolved  bool
	username  string
	ipAddress string
	hostname  string
	mu        sync.RWMutex
}

// NewIdentitySubcontext creates an unresolved identity.
func NewIdentitySubcontext() IdentitySubcontext {
	return &identitySubcontext{}
}

// Set stores the identity. An empty username keeps DefaultUsername.
func (i *identitySubcontext) Set(username, ipAddress, hostname string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.resolved = true
	i.username = username
	i.ipAddress = ipAddress
	i.hostname = hostname
}

func (i *identitySubcontext) Resolved() bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.resolved
}

func (i *identitySubcontext) Username() string {
	i.mu.RLock()
	defer i.mu.RUnlock()
	if i.username == "" {
		return DefaultUsername
	}
	return i.username
}

func (i *identitySubcontext) IPAddress() string {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.ipAddress
}

func (i *identitySubcontext) Hostname() string {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.hostname
}
