package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	nidserr "github.com/amterp/nids/internal/errors"
	"github.com/amterp/ra"
)

func registerExport(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("export")
	cmd.SetDescription("Print the export string of every named ID")

	ctx.ExportJson, _ = ra.NewBool("json").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Output as JSON").
		Register(cmd)

	ctx.ExportUsed, _ = parent.RegisterCmd(cmd)
}

func runExport(jsonOutput, interactive bool) {
	app := mustOpenApp(interactive)

	data := app.Session.Export()
	if jsonOutput {
		out := ExportOutput{
			Data:       data,
			IsEmpty:    app.Session.IsEmpty(),
			ProjectID:  app.Session.ProjectID(),
			MaxAllowed: app.Session.MaxID(),
		}
		if err := printJson(out); err != nil {
			Fatal(err)
		}
		return
	}
	fmt.Println(data)
}

func registerImport(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("import")
	cmd.SetDescription("Replace named IDs from an export string ('-' reads stdin)")

	ctx.ImportData, _ = ra.NewString("data").
		SetUsage("Export string, or - for stdin").
		Register(cmd)

	ctx.ImportAtomic, _ = ra.NewBool("atomic").
		SetShort("a").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Keep everything unchanged if any category fails to parse").
		Register(cmd)

	ctx.ImportUsed, _ = parent.RegisterCmd(cmd)
}

func runImport(data string, atomic, interactive bool) {
	if data == "-" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			Fatal(fmt.Errorf("failed to read stdin: %w", err))
		}
		data = strings.TrimRight(string(raw), "\r\n")
	}

	app := mustOpenApp(interactive)

	importErr := app.Session.Import(data, atomic)
	if importErr != nil {
		var ie *nidserr.ImportError
		if atomic || !errors.As(importErr, &ie) || ie.Category == "" {
			// Nothing was applied
			Fatal(importErr)
		}
		PrintWarning("Stopped at %s; earlier categories were imported", ie.Category)
	}

	if err := app.Session.Save(); err != nil {
		Fatal(err)
	}
	if importErr != nil {
		Fatal(importErr)
	}
	PrintSuccess("Imported %d named IDs", len(app.Session.All()))
}
