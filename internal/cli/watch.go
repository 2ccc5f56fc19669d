package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/amterp/nids/internal/events"
	"github.com/amterp/nids/internal/watcher"
	"github.com/amterp/ra"
)

func registerWatch(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("watch")
	cmd.SetDescription("Print named ID changes as the file is edited")

	ctx.WatchJson, _ = ra.NewBool("json").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Print one JSON object per change").
		Register(cmd)

	ctx.WatchUsed, _ = parent.RegisterCmd(cmd)
}

func runWatch(jsonOutput, interactive bool) {
	app := mustOpenApp(interactive)

	app.Session.Subscribe(events.NotifierFunc(func(e events.Event) {
		if jsonOutput {
			if err := printJsonLine(e); err != nil {
				PrintError("%v", err)
			}
			return
		}
		switch e.Kind {
		case events.KindCreated:
			PrintSuccess("Named %s", RenderBinding(e.Category, e.Name, e.ID))
		case events.KindRemoved:
			PrintInfo("Removed %s", RenderBinding(e.Category, e.Name, e.ID))
		}
	}))

	w, err := watcher.New(app.Paths.DataRoot())
	if err != nil {
		Fatal(err)
	}
	reload := watcher.ReloadOnChange(app.Session, func(err error) {
		PrintWarning("Reload failed: %v", err)
	})
	w.Subscribe(reload)
	if err := w.Start(); err != nil {
		Fatal(err)
	}

	if !jsonOutput {
		PrintInfo("Watching %s (Ctrl+C to stop)", RenderMuted(app.Session.Path()))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	// No reloads while shutting down.
	w.Unsubscribe(reload)
	if err := w.Stop(); err != nil {
		Fatal(err)
	}
}
