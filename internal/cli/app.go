package cli

import (
	"fmt"
	"os"

	"github.com/amterp/nids/internal/config"
	"github.com/amterp/nids/internal/discovery"
	nidserr "github.com/amterp/nids/internal/errors"
	"github.com/amterp/nids/internal/label"
	"github.com/amterp/nids/internal/prompt"
	"github.com/amterp/nids/internal/service"
	"github.com/amterp/nids/internal/settings"
	"github.com/amterp/nids/internal/store"
)

// App holds all the dependencies for the CLI.
// Uses interfaces for testability.
type App struct {
	GlobalStore  store.GlobalStore
	NamedIDStore store.NamedIDStore
	Paths        *config.Paths
	Session      *service.Session
	Labels       *label.Formatter
	Prompter     prompt.Prompter
	ProjectRoot  string
}

// NewApp creates a new App with all dependencies wired up.
// If interactive is false, uses NoopPrompter that fails on prompts.
// The project is the nearest directory at or above the cwd holding a
// named ID file, falling back to the cwd itself.
func NewApp(interactive bool) (*App, error) {
	globalStore := store.NewGlobalStore()

	// Load global config with warnings (don't silently ignore errors)
	labelWidth := 0
	globalCfg, err := globalStore.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load global config: %v\n", err)
	} else {
		labelWidth = globalCfg.LabelWidth
	}

	projectRoot, err := discovery.DiscoverProject()
	if err != nil {
		return nil, err
	}
	if projectRoot == "" {
		// Not initialized yet; init creates the file here
		if projectRoot, err = os.Getwd(); err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
	}

	paths := config.NewPaths(projectRoot)
	namedIDStore := store.NewNamedIDStore(paths)
	session := service.NewSession(namedIDStore, settings.NewFileSource(globalStore))

	var prompter prompt.Prompter
	if interactive {
		prompter = prompt.NewHuhPrompter()
	} else {
		prompter = &prompt.NoopPrompter{}
	}

	return &App{
		GlobalStore:  globalStore,
		NamedIDStore: namedIDStore,
		Paths:        paths,
		Session:      session,
		Labels:       label.NewFormatter(session, labelWidth),
		Prompter:     prompter,
		ProjectRoot:  projectRoot,
	}, nil
}

// RequireNids ensures nids is initialized in the current project and
// opens the session.
func (a *App) RequireNids() error {
	if !a.NamedIDStore.Exists() {
		return &nidserr.NotInitializedError{Path: a.ProjectRoot}
	}
	return a.Session.Open()
}

// mustOpenApp builds the App and opens the project or exits.
func mustOpenApp(interactive bool) *App {
	app, err := NewApp(interactive)
	if err != nil {
		Fatal(err)
	}
	if err := app.RequireNids(); err != nil {
		Fatal(err)
	}
	return app
}

// Fatal prints an error and exits.
func Fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
