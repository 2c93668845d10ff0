package content

import (
	"context"
	"errors"
	"fmt"

	"termfolio/internal/logger"
	"termfolio/internal/sysinfo"
	"termfolio/internal/version"
	"termfolio/pkg/termtypes"
)

// LocalAPI serves termtypes.ContentAPI from a Store in-process, for
// terminals started without a backend URL.
type LocalAPI struct {
	store    *Store
	host     *sysinfo.Collector
	contacts *ContactLog
}

var _ termtypes.ContentAPI = (*LocalAPI)(nil)

// NewLocalAPI creates an adapter over store reporting hostname.
func NewLocalAPI(store *Store, hostname string) *LocalAPI {
	return &LocalAPI{
		store:    store,
		host:     sysinfo.NewCollector(hostname),
		contacts: NewContactLog(),
	}
}

// Contacts returns the log of messages submitted through this adapter.
func (a *LocalAPI) Contacts() *ContactLog {
	return a.contacts
}

// ClientInfo reports the local visitor on the loopback address.
func (a *LocalAPI) ClientInfo(ctx context.Context) (*termtypes.ClientInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &termtypes.ClientInfo{
		Username:  "visitor",
		IPAddress: "127.0.0.1",
		Hostname:  a.host.Hostname(),
		UserAgent: version.UserAgent(),
	}, nil
}

// ServerInfo reports the local host.
func (a *LocalAPI) ServerInfo(ctx context.Context) (*termtypes.ServerInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	info := a.host.ServerInfo()
	return &info, nil
}

// BootInfo reports the local host.
func (a *LocalAPI) BootInfo(ctx context.Context) (*termtypes.BootInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	info := a.host.BootInfo()
	return &info, nil
}

// DirectoryContents lists the files of a content directory.
func (a *LocalAPI) DirectoryContents(ctx context.Context, name string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return a.store.DirectoryContents(name)
}

// FileContent returns rendered file content.
func (a *LocalAPI) FileContent(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	text, err := a.store.FileContent(path)
	if errors.Is(err, ErrNotFound) {
		return "", fmt.Errorf("File not found: %s", path)
	}
	return text, err
}

// BlogList returns every blog post, newest first.
func (a *LocalAPI) BlogList(ctx context.Context) ([]termtypes.BlogMetadata, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return a.store.BlogList()
}

// BlogSearch searches blog posts.
func (a *LocalAPI) BlogSearch(ctx context.Context, term string) ([]termtypes.BlogMetadata, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return a.store.SearchBlog(term)
}

// PortfolioList returns every portfolio project.
func (a *LocalAPI) PortfolioList(ctx context.Context) ([]termtypes.PortfolioMetadata, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return a.store.PortfolioList()
}

// PortfolioFilter filters projects by technology.
func (a *LocalAPI) PortfolioFilter(ctx context.Context, tech string) ([]termtypes.PortfolioMetadata, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return a.store.FilterPortfolio(tech)
}

// Resume returns the resume text.
func (a *LocalAPI) Resume(ctx context.Context) (*termtypes.Resume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return a.store.Resume()
}

// SubmitContact validates and records a contact message. No mail is sent.
func (a *LocalAPI) SubmitContact(ctx context.Context, req termtypes.ContactRequest) (*termtypes.ContactResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	msg, err := a.contacts.Record(req)
	if err != nil {
		return nil, err
	}
	logger.Info("Contact message recorded", "id", msg.ID, "email", msg.Email)
	return &termtypes.ContactResponse{ID: msg.ID, EmailSent: false}, nil
}
