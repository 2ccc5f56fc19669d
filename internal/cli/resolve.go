package cli

import (
	"fmt"

	"github.com/amterp/nids/internal/model"
	"github.com/amterp/ra"
)

func registerResolve(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("resolve")
	cmd.SetDescription("Look up the ID for a name, or the name for an ID")

	ctx.ResolveCategory, _ = ra.NewString("category").
		SetUsage("One of: group, collision, counter, timer, effect, color, dynamic").
		Register(cmd)

	ctx.ResolveTarget, _ = ra.NewString("target").
		SetUsage("Name or numeric ID").
		Register(cmd)

	ctx.ResolveByName, _ = ra.NewBool("name").
		SetShort("n").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Treat the target as a name even if it is a number").
		Register(cmd)

	ctx.ResolveJson, _ = ra.NewBool("json").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Output as JSON").
		Register(cmd)

	ctx.ResolveUsed, _ = parent.RegisterCmd(cmd)
}

func runResolve(categoryArg, targetArg string, forceName, jsonOutput, interactive bool) {
	category := parseCategoryArg(categoryArg).Normalize()
	app := mustOpenApp(interactive)

	tgt := parseTarget(targetArg, forceName)
	binding := model.NamedID{Category: category, Name: tgt.Name, ID: tgt.ID}

	var err error
	if tgt.IsID {
		binding.Name, err = app.Session.ResolveName(category, tgt.ID)
	} else {
		binding.ID, err = app.Session.ResolveID(category, tgt.Name)
	}
	if err != nil {
		Fatal(err)
	}

	if jsonOutput {
		if err := printJson(NamedIDOutput{NamedID: binding}); err != nil {
			Fatal(err)
		}
		return
	}

	// Bare value so the output can be used in scripts
	if tgt.IsID {
		fmt.Println(binding.Name)
	} else {
		fmt.Println(binding.ID)
	}
}
