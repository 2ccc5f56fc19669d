package cli

import (
	"fmt"

	"github.com/amterp/nids/internal/label"
	"github.com/amterp/ra"
)

func registerLabel(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("label")
	cmd.SetDescription("Show the editor label for an ID")

	ctx.LabelCategory, _ = ra.NewString("category").
		SetUsage("One of: group, collision, counter, timer, effect, color, dynamic").
		Register(cmd)

	ctx.LabelID, _ = ra.NewInt("id").
		SetUsage("ID the object targets").
		Register(cmd)

	ctx.LabelWith, _ = ra.NewInt("with").
		SetShort("w").
		SetOptional(true).
		SetFlagOnly(true).
		SetDefault(0).
		SetUsage("Second ID, for objects that target two").
		Register(cmd)

	ctx.LabelJson, _ = ra.NewBool("json").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Output as JSON").
		Register(cmd)

	ctx.LabelUsed, _ = parent.RegisterCmd(cmd)
}

func runLabel(categoryArg string, id, with int, jsonOutput, interactive bool) {
	category := parseCategoryArg(categoryArg).Normalize()
	first, err := toID(id)
	if err != nil {
		Fatal(err)
	}
	second, err := toID(with)
	if err != nil {
		Fatal(err)
	}

	app := mustOpenApp(interactive)

	ids := []int16{first}
	var l label.Label
	if second != 0 {
		ids = append(ids, second)
		l = app.Labels.Pair(
			label.Ref{Category: category, ID: first},
			label.Ref{Category: category, ID: second},
		)
	} else {
		l = app.Labels.For(category, first)
	}

	if jsonOutput {
		if err := printJson(LabelOutput{Category: category, IDs: ids, Label: l, Width: app.Labels.Width()}); err != nil {
			Fatal(err)
		}
		return
	}

	name := l.Name
	if name == "" {
		name = RenderMuted("(unnamed)")
	}
	fmt.Println(LabelValue("name", name, 7))
	if l.Number != "" {
		fmt.Println(LabelValue("number", StyleID.Render(l.Number), 7))
	}
}

// toID narrows a command line integer to the 16-bit ID range.
func toID(n int) (int16, error) {
	if n < -32768 || n > 32767 {
		return 0, fmt.Errorf("id %d is out of range", n)
	}
	return int16(n), nil
}
