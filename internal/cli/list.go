package cli

import (
	"fmt"

	"github.com/amterp/nids/internal/model"
	"github.com/amterp/ra"
)

func registerList(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("list")
	cmd.SetDescription("List named IDs")

	ctx.ListCategory, _ = ra.NewString("category").
		SetOptional(true).
		SetUsage("Only list this category").
		Register(cmd)

	ctx.ListJson, _ = ra.NewBool("json").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Output as JSON").
		Register(cmd)

	ctx.ListUsed, _ = parent.RegisterCmd(cmd)
}

func runList(categoryArg string, jsonOutput, interactive bool) {
	var only *model.Category
	if categoryArg != "" {
		c := parseCategoryArg(categoryArg).Normalize()
		only = &c
	}

	app := mustOpenApp(interactive)

	var entries []model.NamedID
	if only != nil {
		entries = app.Session.Entries(*only)
	} else {
		entries = app.Session.All()
	}

	if jsonOutput {
		if err := printJson(NewListOutput(entries)); err != nil {
			Fatal(err)
		}
		return
	}

	if len(entries) == 0 {
		PrintInfo("No named IDs")
		return
	}

	for i, group := range groupByCategory(entries) {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("%s %s\n", RenderBold(group[0].Category.Title()), RenderMuted(fmt.Sprintf("(%d)", len(group))))
		for _, e := range group {
			fmt.Printf("  %s  %s\n", StyleID.Render(fmt.Sprintf("%6d", e.ID)), e.Name)
		}
	}
}

// groupByCategory splits entries, already ordered by category, into runs
// that share a category.
func groupByCategory(entries []model.NamedID) [][]model.NamedID {
	var groups [][]model.NamedID
	for i, e := range entries {
		if i == 0 || e.Category != entries[i-1].Category {
			groups = append(groups, nil)
		}
		groups[len(groups)-1] = append(groups[len(groups)-1], e)
	}
	return groups
}
