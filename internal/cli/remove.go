package cli

import (
	"github.com/amterp/ra"
)

func registerRemove(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("remove")
	cmd.SetDescription("Remove a named ID by name or ID")

	ctx.RemoveCategory, _ = ra.NewString("category").
		SetUsage("One of: group, collision, counter, timer, effect, color, dynamic").
		Register(cmd)

	ctx.RemoveTarget, _ = ra.NewString("target").
		SetUsage("Name or numeric ID").
		Register(cmd)

	ctx.RemoveByName, _ = ra.NewBool("name").
		SetShort("n").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Treat the target as a name even if it is a number").
		Register(cmd)

	ctx.RemoveUsed, _ = parent.RegisterCmd(cmd)
}

func runRemove(categoryArg, targetArg string, forceName, interactive bool) {
	category := parseCategoryArg(categoryArg).Normalize()
	app := mustOpenApp(interactive)

	tgt := parseTarget(targetArg, forceName)
	name, id := tgt.Name, tgt.ID

	var err error
	if tgt.IsID {
		if name, err = app.Session.ResolveName(category, id); err != nil {
			Fatal(err)
		}
		err = app.Session.RemoveByID(category, id)
	} else {
		if id, err = app.Session.ResolveID(category, name); err != nil {
			Fatal(err)
		}
		err = app.Session.RemoveByName(category, name)
	}
	if err != nil {
		Fatal(err)
	}

	if err := app.Session.Save(); err != nil {
		Fatal(err)
	}
	PrintSuccess("Removed %s", RenderBinding(category, name, id))
}
