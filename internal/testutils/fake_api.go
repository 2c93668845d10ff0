package testutils

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"termfolio/pkg/termtypes"
)

// ErrBackendDown is returned by FakeContentAPI when Fail is set.
var ErrBackendDown = errors.New("backend unavailable")

// FakeContentAPI is an in-memory termtypes.ContentAPI.
type FakeContentAPI struct {
	Client      termtypes.ClientInfo
	Server      termtypes.ServerInfo
	Directories map[string][]string
	Files       map[string]string
	Blog        []termtypes.BlogMetadata
	Portfolio   []termtypes.PortfolioMetadata
	ResumeData  termtypes.Resume

	// Fail makes every call return ErrBackendDown.
	Fail bool
	// Delays holds per-method latency, keyed by method name.
	Delays map[string]time.Duration

	mu       sync.Mutex
	calls    map[string]int
	contacts []termtypes.ContactRequest
}

// NewFakeContentAPI returns a fake with a small blog, portfolio and resume.
func NewFakeContentAPI() *FakeContentAPI {
	return &FakeContentAPI{
		Client: termtypes.ClientInfo{Username: "visitor", IPAddress: "203.0.113.7", Hostname: "portfolio.test", UserAgent: "test"},
		Server: termtypes.ServerInfo{
			Hostname: "backend",
			OS:       termtypes.ServerOS{Name: "linux", Arch: "amd64", AvailableProcessors: 4},
			CPU:      termtypes.ServerCPU{Cores: 4},
			Memory:   termtypes.ServerMemory{HeapMax: 2 << 30, HeapUsed: 1 << 30},
			Runtime:  termtypes.ServerRuntime{Name: "go", Version: "go1.24"},
			Uptime:   3_600_000,
		},
		Directories: map[string][]string{
			"blog":      {"hello-world.md", "go-tips.md"},
			"portfolio": {"dispatch.md", "README.txt"},
		},
		Files: map[string]string{
			"blog/hello-world.md":   "Hello, World\n\nFirst post.",
			"blog/go-tips.md":       "Go tips",
			"portfolio/dispatch.md": "Dispatch platform",
		},
		Blog: []termtypes.BlogMetadata{
			{Filename: "go-tips.md", Title: "Go Tips", Published: "2024-06-02", Tags: []string{"go"}, Excerpt: "Small things."},
			{Filename: "hello-world.md", Title: "Hello, World", Published: "2024-01-15", Tags: []string{"meta"}, Excerpt: "Why a terminal."},
		},
		Portfolio: []termtypes.PortfolioMetadata{
			{Filename: "dispatch.md", Title: "Dispatch Platform", Technologies: []string{"Go", "Kafka"}, Company: "Acme", Year: "2023", Excerpt: "Routing."},
		},
		ResumeData: termtypes.Resume{Text: "RESUME TEXT", DownloadURL: "/api/content/resume/download"},
		calls:      make(map[string]int),
	}
}

func (f *FakeContentAPI) enter(ctx context.Context, method string) error {
	f.mu.Lock()
	f.calls[method]++
	delay := f.Delays[method]
	fail := f.Fail
	f.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if fail {
		return ErrBackendDown
	}
	return nil
}

// Calls returns how many times method was called.
func (f *FakeContentAPI) Calls(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method]
}

// Contacts returns the submitted contact requests.
func (f *FakeContentAPI) Contacts() []termtypes.ContactRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]termtypes.ContactRequest, len(f.contacts))
	copy(result, f.contacts)
	return result
}

// ClientInfo implements termtypes.ContentAPI.
func (f *FakeContentAPI) ClientInfo(ctx context.Context) (*termtypes.ClientInfo, error) {
	if err := f.enter(ctx, "ClientInfo"); err != nil {
		return nil, err
	}
	info := f.Client
	return &info, nil
}

// ServerInfo implements termtypes.ContentAPI.
func (f *FakeContentAPI) ServerInfo(ctx context.Context) (*termtypes.ServerInfo, error) {
	if err := f.enter(ctx, "ServerInfo"); err != nil {
		return nil, err
	}
	info := f.Server
	return &info, nil
}

// BootInfo implements termtypes.ContentAPI.
func (f *FakeContentAPI) BootInfo(ctx context.Context) (*termtypes.BootInfo, error) {
	if err := f.enter(ctx, "BootInfo"); err != nil {
		return nil, err
	}
	return &termtypes.BootInfo{
		Hostname: f.Server.Hostname,
		OSName:   f.Server.OS.Name,
		OSArch:   f.Server.OS.Arch,
		CPUCores: f.Server.CPU.Cores,
	}, nil
}

// DirectoryContents implements termtypes.ContentAPI.
func (f *FakeContentAPI) DirectoryContents(ctx context.Context, name string) ([]string, error) {
	if err := f.enter(ctx, "DirectoryContents"); err != nil {
		return nil, err
	}
	return append([]string(nil), f.Directories[name]...), nil
}

// FileContent implements termtypes.ContentAPI.
func (f *FakeContentAPI) FileContent(ctx context.Context, path string) (string, error) {
	if err := f.enter(ctx, "FileContent"); err != nil {
		return "", err
	}
	content, ok := f.Files[path]
	if !ok {
		return "", errors.New("file not found: " + path)
	}
	return content, nil
}

// BlogList implements termtypes.ContentAPI.
func (f *FakeContentAPI) BlogList(ctx context.Context) ([]termtypes.BlogMetadata, error) {
	if err := f.enter(ctx, "BlogList"); err != nil {
		return nil, err
	}
	return append([]termtypes.BlogMetadata(nil), f.Blog...), nil
}

// BlogSearch implements termtypes.ContentAPI.
func (f *FakeContentAPI) BlogSearch(ctx context.Context, term string) ([]termtypes.BlogMetadata, error) {
	if err := f.enter(ctx, "BlogSearch"); err != nil {
		return nil, err
	}
	var result []termtypes.BlogMetadata
	for _, post := range f.Blog {
		if strings.Contains(strings.ToLower(post.Title), strings.ToLower(term)) {
			result = append(result, post)
		}
	}
	return result, nil
}

// PortfolioList implements termtypes.ContentAPI.
func (f *FakeContentAPI) PortfolioList(ctx context.Context) ([]termtypes.PortfolioMetadata, error) {
	if err := f.enter(ctx, "PortfolioList"); err != nil {
		return nil, err
	}
	return append([]termtypes.PortfolioMetadata(nil), f.Portfolio...), nil
}

// PortfolioFilter implements termtypes.ContentAPI.
func (f *FakeContentAPI) PortfolioFilter(ctx context.Context, tech string) ([]termtypes.PortfolioMetadata, error) {
	if err := f.enter(ctx, "PortfolioFilter"); err != nil {
		return nil, err
	}
	var result []termtypes.PortfolioMetadata
	for _, p := range f.Portfolio {
		for _, t := range p.Technologies {
			if strings.EqualFold(t, tech) {
				result = append(result, p)
				break
			}
		}
	}
	return result, nil
}

// Resume implements termtypes.ContentAPI.
func (f *FakeContentAPI) Resume(ctx context.Context) (*termtypes.Resume, error) {
	if err := f.enter(ctx, "Resume"); err != nil {
		return nil, err
	}
	resume := f.ResumeData
	return &resume, nil
}

// SubmitContact implements termtypes.ContentAPI.
func (f *FakeContentAPI) SubmitContact(ctx context.Context, req termtypes.ContactRequest) (*termtypes.ContactResponse, error) {
	if err := f.enter(ctx, "SubmitContact"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.contacts = append(f.contacts, req)
	f.mu.Unlock()
	return &termtypes.ContactResponse{ID: GenerateUUID(true), EmailSent: false}, nil
}
