package cli

import (
	"errors"
	"fmt"

	nidserr "github.com/amterp/nids/internal/errors"
	"github.com/amterp/nids/internal/prompt"
	"github.com/amterp/nids/internal/util"
	"github.com/amterp/ra"
)

func registerAdd(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("add")
	cmd.SetDescription("Name an ID (prompts for anything missing)")

	ctx.AddCategory, _ = ra.NewString("category").
		SetUsage("One of: group, collision, counter, timer, effect, color, dynamic").
		Register(cmd)

	ctx.AddName, _ = ra.NewString("name").
		SetOptional(true).
		SetUsage("Name to bind").
		Register(cmd)

	ctx.AddID, _ = ra.NewString("id").
		SetOptional(true).
		SetUsage("ID to bind").
		Register(cmd)

	ctx.AddUsed, _ = parent.RegisterCmd(cmd)
}

func runAdd(categoryArg, name, idArg string, interactive bool) {
	category := parseCategoryArg(categoryArg)
	app := mustOpenApp(interactive)
	maxID := app.Session.MaxID()

	var id int16
	var err error
	switch {
	case name == "" && idArg == "":
		name, id, err = app.Prompter.NamedID(fmt.Sprintf("New %s name", category.Normalize().Title()), maxID)
	case idArg == "":
		var raw string
		raw, err = app.Prompter.Input(fmt.Sprintf("ID for %q", name), "", prompt.IDValidator(maxID))
		if err == nil {
			id, err = prompt.ParseID(raw, maxID)
		}
	default:
		if name == "" {
			name, err = app.Prompter.Input(fmt.Sprintf("Name for ID %s", idArg), "", prompt.ValidateName)
		}
		if err == nil {
			id, err = prompt.ParseID(idArg, maxID)
		}
	}
	if errors.Is(err, prompt.ErrNonInteractive) {
		Fatal(fmt.Errorf("name and id are required in non-interactive mode"))
	}
	if err != nil {
		Fatal(err)
	}
	name = util.NormalizeName(name)

	// Report the binding Assign is about to take over, if any
	previous, err := app.Session.ResolveName(category, id)
	if err != nil && !nidserr.IsNotFound(err) {
		Fatal(err)
	}
	oldID, err := app.Session.ResolveID(category, name)
	if err != nil && !nidserr.IsNotFound(err) {
		Fatal(err)
	}

	if err := app.Session.Assign(category, name, id); err != nil {
		Fatal(err)
	}
	if err := app.Session.Save(); err != nil {
		Fatal(err)
	}

	if previous != "" && previous != name {
		PrintInfo("%s no longer names %s", RenderBold(previous), RenderID(id))
	}
	if oldID != 0 && oldID != id {
		PrintInfo("%s moved from %s", RenderBold(name), RenderID(oldID))
	}
	PrintSuccess("Named %s", RenderBinding(category.Normalize(), name, id))
}
