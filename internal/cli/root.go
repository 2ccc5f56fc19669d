package cli

import (
	"os"

	"github.com/amterp/ra"
)

// CommandContext holds parsed values and used flags for all commands.
type CommandContext struct {
	// Global flags
	NonInteractive *bool

	// init command
	InitUsed *bool
	InitName *string

	// add command
	AddUsed     *bool
	AddCategory *string
	AddName     *string
	AddID       *string

	// remove command
	RemoveUsed     *bool
	RemoveCategory *string
	RemoveTarget   *string
	RemoveByName   *bool

	// resolve command
	ResolveUsed     *bool
	ResolveCategory *string
	ResolveTarget   *string
	ResolveByName   *bool
	ResolveJson     *bool

	// list command
	ListUsed     *bool
	ListCategory *string
	ListJson     *bool

	// label command
	LabelUsed     *bool
	LabelCategory *string
	LabelID       *int
	LabelWith     *int
	LabelJson     *bool

	// export command
	ExportUsed *bool
	ExportJson *bool

	// import command
	ImportUsed   *bool
	ImportData   *string
	ImportAtomic *bool

	// reset command
	ResetUsed  *bool
	ResetForce *bool

	// watch command
	WatchUsed *bool
	WatchJson *bool
}

// Run is the main entry point for the CLI.
func Run() {
	ctx := &CommandContext{}

	cmd := ra.NewCmd("nids")
	cmd.SetDescription("Name the numeric IDs of a level")

	// Global flag for non-interactive mode
	ctx.NonInteractive, _ = ra.NewBool("non-interactive").
		SetShort("I").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Fail instead of prompting for missing input").
		Register(cmd, ra.WithGlobal(true))

	// Register all subcommands
	registerInit(cmd, ctx)
	registerAdd(cmd, ctx)
	registerRemove(cmd, ctx)
	registerResolve(cmd, ctx)
	registerList(cmd, ctx)
	registerLabel(cmd, ctx)
	registerExport(cmd, ctx)
	registerImport(cmd, ctx)
	registerReset(cmd, ctx)
	registerWatch(cmd, ctx)

	// Parse command line
	cmd.ParseOrExit(os.Args[1:])

	// Execute the appropriate command
	executeCommand(ctx)
}

func executeCommand(ctx *CommandContext) {
	interactive := !*ctx.NonInteractive

	switch {
	case *ctx.InitUsed:
		runInit(*ctx.InitName)

	case *ctx.AddUsed:
		runAdd(*ctx.AddCategory, *ctx.AddName, *ctx.AddID, interactive)

	case *ctx.RemoveUsed:
		runRemove(*ctx.RemoveCategory, *ctx.RemoveTarget, *ctx.RemoveByName, interactive)

	case *ctx.ResolveUsed:
		runResolve(*ctx.ResolveCategory, *ctx.ResolveTarget, *ctx.ResolveByName, *ctx.ResolveJson, interactive)

	case *ctx.ListUsed:
		runList(*ctx.ListCategory, *ctx.ListJson, interactive)

	case *ctx.LabelUsed:
		runLabel(*ctx.LabelCategory, *ctx.LabelID, *ctx.LabelWith, *ctx.LabelJson, interactive)

	case *ctx.ExportUsed:
		runExport(*ctx.ExportJson, interactive)

	case *ctx.ImportUsed:
		runImport(*ctx.ImportData, *ctx.ImportAtomic, interactive)

	case *ctx.ResetUsed:
		runReset(*ctx.ResetForce, interactive)

	case *ctx.WatchUsed:
		runWatch(*ctx.WatchJson, interactive)
	}
}
