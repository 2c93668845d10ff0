package builtin

import (
	"context"
	"fmt"
	"strings"

	"termfolio/internal/commands"
	"termfolio/internal/logger"
	"termfolio/pkg/termtypes"
)

func (b *builder) content() {
	api := b.env.API
	fallbackResume := b.env.StaticFiles["resume.txt"]

	b.add(commands.Spec{
		Name:        "blog",
		Description: "List or search blog posts",
		Usage:       "blog [term]",
		Group:       GroupContent,
		Manual:      "Lists blog posts, newest first. With a term, searches titles, excerpts and tags.",
		Args:        commands.ArgsFull,
		Handler: commands.Async(func(ctx context.Context, term string) (commands.Output, error) {
			if api == nil {
				return commands.Info(blogUnavailable), nil
			}
			var posts []termtypes.BlogMetadata
			var err error
			if term == "" {
				posts, err = api.BlogList(ctx)
			} else {
				posts, err = api.BlogSearch(ctx, term)
			}
			if err != nil {
				logger.Debug("Blog listing failed", "term", term, "error", err)
				return commands.Info(blogUnavailable), nil
			}
			return formatBlog(posts, term), nil
		}),
	})

	b.add(commands.Spec{
		Name:        "portfolio",
		Description: "List projects, optionally by technology",
		Usage:       "portfolio [tech]",
		Group:       GroupContent,
		Manual:      "Lists portfolio projects. With a technology, shows only projects that use it.",
		Args:        commands.ArgsFull,
		Handler: commands.Async(func(ctx context.Context, tech string) (commands.Output, error) {
			if api == nil {
				return commands.Info(portfolioUnavailable), nil
			}
			var projects []termtypes.PortfolioMetadata
			var err error
			if tech == "" {
				projects, err = api.PortfolioList(ctx)
			} else {
				projects, err = api.PortfolioFilter(ctx, tech)
			}
			if err != nil {
				logger.Debug("Portfolio listing failed", "tech", tech, "error", err)
				return commands.Info(portfolioUnavailable), nil
			}
			return formatPortfolio(projects, tech), nil
		}),
	})

	b.add(commands.Spec{
		Name:        "resume",
		Description: "Show the full resume",
		Usage:       "resume [--download]",
		Group:       GroupContent,
		Manual:      "Shows the full resume. With --download, prints the download link.",
		Args:        commands.ArgsFull,
		Handler: commands.Async(func(ctx context.Context, args string) (commands.Output, error) {
			download := strings.TrimSpace(args) == "--download"
			if api == nil {
				return resumeFallback(fallbackResume, download), nil
			}
			resume, err := api.Resume(ctx)
			if err != nil || resume == nil || resume.Error != "" {
				logger.Debug("Resume unavailable", "error", err)
				return resumeFallback(fallbackResume, download), nil
			}
			if download {
				if resume.DownloadURL == "" {
					return commands.Info("Resume download is not available."), nil
				}
				return commands.Info("Download the resume: " + resume.DownloadURL), nil
			}
			text := resume.Text
			if resume.DownloadURL != "" {
				text += "\n\nDownload: " + resume.DownloadURL
			}
			return commands.Info(text), nil
		}),
	})
}

const (
	blogUnavailable      = "Blog is unavailable right now. Try 'cd blog' and 'ls' instead."
	portfolioUnavailable = "Portfolio is unavailable right now. Try 'cd portfolio' and 'ls' instead."
)

func resumeFallback(static string, download bool) commands.Output {
	if download {
		return commands.Info("Resume download is not available.")
	}
	if static == "" {
		return commands.Info("Resume is unavailable right now.")
	}
	return commands.Info(static)
}

func formatBlog(posts []termtypes.BlogMetadata, term string) commands.Output {
	if len(posts) == 0 {
		if term == "" {
			return commands.Fail("No blog posts found")
		}
		return commands.Fail(fmt.Sprintf("No blog posts matching '%s'", term))
	}

	var sb strings.Builder
	if term == "" {
		fmt.Fprintf(&sb, "BLOG POSTS (%d)\n", len(posts))
	} else {
		fmt.Fprintf(&sb, "BLOG POSTS MATCHING '%s' (%d)\n", term, len(posts))
	}
	for _, post := range posts {
		fmt.Fprintf(&sb, "\n  *%s  %s\n", strings.TrimSuffix(post.Filename, termtypes.ExecutableExtension), post.Title)
		meta := post.Published
		if len(post.Tags) > 0 {
			if meta != "" {
				meta += " | "
			}
			meta += "tags: " + strings.Join(post.Tags, ", ")
		}
		if meta != "" {
			sb.WriteString("     " + meta + "\n")
		}
		if post.Excerpt != "" {
			sb.WriteString("     " + post.Excerpt + "\n")
		}
	}
	sb.WriteString("\nRun 'cd blog' then './<name>' to read a post.")
	return commands.Info(sb.String())
}

func formatPortfolio(projects []termtypes.PortfolioMetadata, tech string) commands.Output {
	if len(projects) == 0 {
		if tech == "" {
			return commands.Fail("No portfolio projects found")
		}
		return commands.Fail(fmt.Sprintf("No projects using '%s'", tech))
	}

	var sb strings.Builder
	if tech == "" {
		fmt.Fprintf(&sb, "PORTFOLIO (%d)\n", len(projects))
	} else {
		fmt.Fprintf(&sb, "PORTFOLIO USING '%s' (%d)\n", tech, len(projects))
	}
	for _, p := range projects {
		fmt.Fprintf(&sb, "\n  *%s  %s\n", strings.TrimSuffix(p.Filename, termtypes.ExecutableExtension), p.Title)
		var meta []string
		if p.Company != "" {
			meta = append(meta, p.Company)
		}
		if p.Year != "" {
			meta = append(meta, p.Year)
		}
		if len(p.Technologies) > 0 {
			meta = append(meta, strings.Join(p.Technologies, ", "))
		}
		if len(meta) > 0 {
			sb.WriteString("     " + strings.Join(meta, " | ") + "\n")
		}
		if p.Excerpt != "" {
			sb.WriteString("     " + p.Excerpt + "\n")
		}
	}
	sb.WriteString("\nRun 'cd portfolio' then './<name>' for details.")
	return commands.Info(sb.String())
}
