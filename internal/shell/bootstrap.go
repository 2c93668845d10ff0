package shell

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"termfolio/internal/commands"
	"termfolio/internal/commands/builtin"
	"termfolio/internal/config"
	"termfolio/internal/content"
	tcontext "termfolio/internal/context"
	"termfolio/internal/data/embedded"
	"termfolio/internal/filesystem"
	"termfolio/internal/logger"
	"termfolio/internal/output"
	"termfolio/internal/services"
	"termfolio/internal/typewriter"
	"termfolio/pkg/termtypes"
)

// ContentDirectories are loaded from the content API once identity resolves.
var ContentDirectories = []string{content.PortfolioDir, content.BlogDir}

// Options overrides collaborators chosen from the configuration.
type Options struct {
	TestMode bool
	// API replaces the configured content API.
	API termtypes.ContentAPI
	// Clipboard replaces the system clipboard.
	Clipboard commands.Clipboard
}

// Shell is a fully wired interpreter: services, environment and executor.
type Shell struct {
	Config       *config.Config
	Services     *services.Registry
	Env          *commands.Env
	Executor     *Executor
	Themes       *services.ThemeService
	Form         *services.ContactFormService
	AutoComplete *services.AutoCompleteService
	API          termtypes.ContentAPI
	Speed        typewriter.Speed
	// Output is the mode of line-oriented output written by RunLine.
	Output       output.Mode
}

// Bootstrap registers and initializes every service and builds the
// session environment for cfg.
func Bootstrap(cfg *config.Config, opts Options) (*Shell, error) {
	speed, err := typewriter.ParseSpeed(cfg.Terminal.Speed)
	if err != nil {
		return nil, err
	}

	registry := services.NewRegistry()
	flags := services.NewFlagStore(cfg.StatePath())
	if opts.TestMode {
		flags = services.NewFlagStore("")
	}
	if err := registry.RegisterService(flags); err != nil {
		return nil, err
	}

	themes := services.NewThemeService(flags)
	if err := themes.UseDefault(cfg.Terminal.Theme); err != nil {
		logger.Warn("Ignoring configured theme", "theme", cfg.Terminal.Theme, "error", err)
	}
	if err := registry.RegisterService(themes); err != nil {
		return nil, err
	}

	api := opts.API
	if api == nil {
		api, err = newContentAPI(cfg, registry)
		if err != nil {
			return nil, err
		}
	}

	form := services.NewContactFormService(api, cfg.Owner.Email)
	if err := registry.RegisterService(form); err != nil {
		return nil, err
	}

	staticFS, err := embedded.StaticFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to open static files: %w", err)
	}
	staticFiles, err := builtin.RenderStaticFiles(staticFS, cfg.Owner)
	if err != nil {
		return nil, err
	}

	session := tcontext.New()
	session.SetTestMode(opts.TestMode)

	env := &commands.Env{
		Session:     session,
		FS:          filesystem.NewDefault(),
		API:         api,
		Features:    commands.FeaturesFor(cfg.Terminal.Profile),
		Owner:       cfg.Owner,
		Hostname:    cfg.Terminal.Hostname,
		StaticFiles: staticFiles,
		Themes:      themes,
		Form:        form,
	}
	if opts.Clipboard != nil {
		env.Clipboard = opts.Clipboard
	} else if clip, err := builtin.NewSystemClipboard(); err == nil {
		env.Clipboard = clip
	} else {
		logger.Debug("System clipboard unavailable", "error", err)
	}

	executor := NewExecutor(env, form)
	autoComplete := services.NewAutoCompleteService(executor.CompletionSource)
	if err := registry.RegisterService(autoComplete); err != nil {
		return nil, err
	}

	if err := registry.InitializeAll(); err != nil {
		return nil, err
	}
	session.Settings().SetTheme(themes.CurrentTheme())

	logger.Debug("Shell bootstrapped", "profile", cfg.Terminal.Profile, "speed", string(speed), "theme", themes.CurrentTheme())
	return &Shell{
		Config:       cfg,
		Services:     registry,
		Env:          env,
		Executor:     executor,
		Themes:       themes,
		Form:         form,
		AutoComplete: autoComplete,
		API:          api,
		Speed:        speed,
	}, nil
}

// newContentAPI returns the HTTP client when an API URL is configured, and
// the in-process store otherwise.
func newContentAPI(cfg *config.Config, registry *services.Registry) (termtypes.ContentAPI, error) {
	if cfg.API.URL != "" {
		client := services.NewContentClient(cfg.API.URL, cfg.API.Timeout)
		if err := registry.RegisterService(client); err != nil {
			return nil, err
		}
		return client, nil
	}

	store, err := content.NewStore(ContentFS(cfg.Server.ContentDir))
	if err != nil {
		return nil, err
	}
	return content.NewLocalAPI(store, cfg.Terminal.Hostname), nil
}

// ContentFS returns dir as a filesystem, or the embedded sample content when
// dir is empty.
func ContentFS(dir string) fs.FS {
	if dir == "" {
		return embedded.SampleContent()
	}
	return os.DirFS(dir)
}

// Welcome returns the banner printed when a terminal starts.
func (s *Shell) Welcome() string {
	owner := s.Config.Owner
	lines := []string{
		commands.Box("", "", strings.ToUpper(owner.Name), owner.Title, ""),
		"",
		fmt.Sprintf("Welcome to %s's Terminal Portfolio", owner.Name),
		"",
		"Type 'help' to see available commands or try exploring on your own!",
		"Current location: " + s.Env.Session.Navigation().CurrentPath(),
	}
	if s.Env.Session.Settings().Turbo() {
		lines = append(lines, "⚡ TURBO MODE ENABLED ⚡")
	}
	return strings.Join(lines, "\n")
}

// Prompt returns "user@host:path$ " with the home directory shown as "~".
func (s *Shell) Prompt() string {
	return Prompt(s.Env)
}

// Prompt renders the prompt of env.
func Prompt(env *commands.Env) string {
	nav := env.Session.Navigation()
	path := nav.CurrentPath()
	if rest, ok := strings.CutPrefix(path, nav.Home()); ok {
		path = "~" + rest
	}
	host := env.Session.Identity().Hostname()
	if host == "" {
		host = env.Hostname
	}
	return fmt.Sprintf("%s@%s:%s$ ", env.Session.Username(), host, path)
}

// EffectiveSpeed returns the typing speed in effect, honouring turbo mode.
func (s *Shell) EffectiveSpeed() typewriter.Speed {
	return typewriter.Effective(s.Speed, s.Env.Session.Settings().Turbo())
}

// LoadIdentity fetches the client identity. It does not touch session state.
func (s *Shell) LoadIdentity(ctx context.Context) (*termtypes.ClientInfo, error) {
	return s.API.ClientInfo(ctx)
}

// ApplyIdentity records a fetched identity. On failure the visitor
// identity is kept.
func (s *Shell) ApplyIdentity(info *termtypes.ClientInfo, err error) {
	if err != nil || info == nil {
		logger.Debug("Client identity unavailable, staying visitor", "error", err)
		return
	}
	s.Env.Session.ApplyIdentity(info.Username, info.IPAddress, info.Hostname)
	logger.Debug("Client identity resolved", "username", info.Username, "ip", info.IPAddress)
}

// LoadDirectory fetches the listing of a content directory.
func (s *Shell) LoadDirectory(ctx context.Context, name string) ([]string, error) {
	return s.API.DirectoryContents(ctx, name)
}

// ApplyDirectory merges a fetched listing into the filesystem. A failed
// fetch leaves the directory as it is.
func (s *Shell) ApplyDirectory(name string, files []string, err error) {
	if err != nil {
		logger.Debug("Directory listing unavailable", "directory", name, "error", err)
		return
	}
	s.Executor.MergeDirectory(name, files)
}

// Startup resolves identity and then loads every content directory,
// blocking until both finish. Plain mode uses it.
func (s *Shell) Startup(ctx context.Context) {
	info, err := s.LoadIdentity(ctx)
	s.ApplyIdentity(info, err)
	for _, name := range ContentDirectories {
		files, err := s.LoadDirectory(ctx, name)
		s.ApplyDirectory(name, files, err)
	}
}
