package cli

import (
	"errors"
	"fmt"

	"github.com/amterp/nids/internal/prompt"
	"github.com/amterp/ra"
)

func registerReset(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("reset")
	cmd.SetDescription("Remove every named ID")

	ctx.ResetForce, _ = ra.NewBool("force").
		SetShort("f").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Skip confirmation").
		Register(cmd)

	ctx.ResetUsed, _ = parent.RegisterCmd(cmd)
}

func runReset(force, interactive bool) {
	app := mustOpenApp(interactive)

	if app.Session.IsEmpty() {
		PrintInfo("No named IDs to remove")
		return
	}

	if !force {
		count := len(app.Session.All())
		ok, err := app.Prompter.Confirm(fmt.Sprintf("Remove all %d named IDs?", count), false)
		if errors.Is(err, prompt.ErrNonInteractive) {
			Fatal(fmt.Errorf("use --force to reset in non-interactive mode"))
		}
		if err != nil {
			Fatal(err)
		}
		if !ok {
			PrintInfo("Cancelled")
			return
		}
	}

	if err := app.Session.Reset(); err != nil {
		Fatal(err)
	}
	if err := app.Session.Save(); err != nil {
		Fatal(err)
	}
	PrintSuccess("Removed all named IDs")
}
