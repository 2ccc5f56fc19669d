package cli

import (
	"path/filepath"

	"github.com/amterp/ra"
)

func registerInit(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("init")
	cmd.SetDescription("Initialize nids in the current directory")

	ctx.InitName, _ = ra.NewString("name").
		SetShort("n").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Level name (default: directory name)").
		Register(cmd)

	ctx.InitUsed, _ = parent.RegisterCmd(cmd)
}

func runInit(name string) {
	app, err := NewApp(true)
	if err != nil {
		Fatal(err)
	}

	if name == "" {
		name = filepath.Base(app.ProjectRoot)
	}

	// Best effort: settings are optional
	if err := app.GlobalStore.EnsureExists(); err != nil {
		PrintWarning("Failed to create global config: %v", err)
	}

	if err := app.Session.Init(name); err != nil {
		Fatal(err)
	}

	PrintSuccess("Initialized nids for %s in %s", RenderBold(name), RenderMuted(app.Session.Path()))
}
