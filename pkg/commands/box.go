package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/studyboard/pkg/commands/options"
	"tableflip.dev/studyboard/pkg/runner/box"
)

type boxVerb struct {
	use     string
	aliases []string
	short   string
	example string
	action  box.Action
	// extra is the number of positional arguments after the id.
	extra int
}

func addBox(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "box",
		Short: "Change the boxes of a subject.",
		Example: `
studyboard box add 3f2a
studyboard box toggle 3f2a 4
studyboard box set 3f2a 0 false
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	for _, v := range []boxVerb{{
		use:     "add [id]",
		aliases: []string{"push"},
		short:   "Append an unchecked box.",
		example: "studyboard box add 3f2a",
		action:  box.Add,
	}, {
		use:     "rm [id]",
		aliases: []string{"pop", "remove"},
		short:   "Drop the last box.",
		example: "studyboard box rm 3f2a",
		action:  box.Remove,
	}, {
		use:     "toggle <id> <index>",
		short:   "Check or uncheck one box. Boxes are numbered from 0.",
		example: "studyboard box toggle 3f2a 4",
		action:  box.Toggle,
		extra:   1,
	}, {
		use:     "set <id> <index> <true|false>",
		short:   "Set one box to checked or unchecked.",
		example: "studyboard box set 3f2a 4 true",
		action:  box.Set,
		extra:   2,
	}, {
		use:     "clear [id]",
		short:   "Uncheck every box of a subject.",
		example: "studyboard box clear 3f2a",
		action:  box.Clear,
	}} {
		addBoxVerb(cmd, v)
	}

	topLevel.AddCommand(cmd)
}

func addBoxVerb(parent *cobra.Command, v boxVerb) {
	ido := &options.IDOptions{}
	oo := &options.OutputOptions{}

	positional := cobra.MaximumNArgs(1)
	if v.extra > 0 {
		positional = cobra.ExactArgs(1 + v.extra)
	}

	cmd := &cobra.Command{
		Use:               v.use,
		Aliases:           v.aliases,
		Short:             v.short,
		Example:           "\n" + v.example + "\n",
		Args:              positional,
		ValidArgsFunction: subjectCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			b := box.Box{
				Action: v.action,
				ShowID: ido.ShowID,
				Format: oo.Format(),
				Out:    cmd.OutOrStdout(),
			}
			if v.extra > 0 {
				var err error
				if b.Index, err = strconv.Atoi(args[1]); err != nil {
					return oo.HandleError(fmt.Errorf("box index %q is not a number", args[1]))
				}
			}
			if v.extra > 1 {
				var err error
				if b.Value, err = strconv.ParseBool(args[2]); err != nil {
					return oo.HandleError(fmt.Errorf("box value %q must be true or false", args[2]))
				}
			}

			s, err := openSession(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			if b.ID, err = s.subjectID(args, 0, "Which subject?"); err != nil {
				return oo.HandleError(err)
			}
			b.Store = s.board
			return oo.HandleError(b.Do(cmd.Context()))
		},
	}

	options.AddShowIDArgs(cmd, ido)
	options.AddOutputArg(cmd, oo)

	parent.AddCommand(cmd)
}
