package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/marina/internal/domain"
	"github.com/aalvaropc/marina/internal/ui/errorux"
	"github.com/aalvaropc/marina/internal/ui/prompt"
)

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	workspace string
	file      string
	debug     bool
}

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "marina:", describeError(err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "marina [BoatData.csv]",
		Short: "Marina boat inventory and billing",
		Long: "Marina keeps a sorted inventory of berthed boats, applies payments\n" +
			"and monthly fees, and stores everything in one delimited file.\n\n" +
			"Without a subcommand it runs the interactive menu.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fileArg := ""
			if len(args) == 1 {
				fileArg = args[0]
			}

			s, err := openSession(cmd.Context(), g, fileArg)
			if err != nil {
				return err
			}
			defer s.close()

			menu := prompt.New(s.store, s.codec, s.file, cmd.OutOrStdout(), prompt.WithLogger(s.log))
			return menu.Run(cmd.Context(), cmd.InOrStdin())
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&g.workspace, "workspace", "w", "", "Workspace root (optional; autodetected from marina.yaml if omitted)")
	pf.StringVarP(&g.file, "file", "f", "", "Inventory file (overrides marina.data_file)")
	pf.BoolVar(&g.debug, "debug", false, "enable verbose logging to .marina/logs/marina.log")

	cmd.AddCommand(
		listCmd(g),
		addCmd(g),
		removeCmd(g),
		payCmd(g),
		monthCmd(g),
		browseCmd(g),
		initCmd(),
		versionCmd(),
	)
	return cmd
}

// describeError prefers the user-facing message and falls back to the raw
// error for usage and argument problems.
func describeError(err error) string {
	msg := errorux.Message(err)
	switch {
	case msg == errorux.MsgUnexpected:
		return err.Error()
	case domain.IsKind(err, domain.KindInvalidConfig):
		return msg + ": " + err.Error()
	}
	return msg
}
