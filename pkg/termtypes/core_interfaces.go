// Package termtypes defines core architectural interfaces for termfolio.
// This file contains the interfaces shared by the interpreter, the terminal
// front ends and the content backend.
package termtypes

import "context"

// Service defines the interface for termfolio services that provide specific functionality.
// Services are registered at startup and initialized once before the terminal runs.
type Service interface {
	Name() string
	Initialize() error
}

// ContentAPI is the backend collaborator consumed by the interpreter.
// Implementations may talk HTTP or serve content in-process; callers must
// treat every error as a recoverable collaborator failure.
type ContentAPI interface {
	ClientInfo(ctx context.Context) (*ClientInfo, error)
	ServerInfo(ctx context.Context) (*ServerInfo, error)
	BootInfo(ctx context.Context) (*BootInfo, error)
	DirectoryContents(ctx context.Context, name string) ([]string, error)
	FileContent(ctx context.Context, path string) (string, error)
	BlogList(ctx context.Context) ([]BlogMetadata, error)
	BlogSearch(ctx context.Context, term string) ([]BlogMetadata, error)
	PortfolioList(ctx context.Context) ([]PortfolioMetadata, error)
	PortfolioFilter(ctx context.Context, tech string) ([]PortfolioMetadata, error)
	Resume(ctx context.Context) (*Resume, error)
	SubmitContact(ctx context.Context, req ContactRequest) (*ContactResponse, error)
}
