package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/marina/internal/domain"
	"github.com/aalvaropc/marina/internal/ui/tui"
	"github.com/aalvaropc/marina/internal/usecase"
)

func browseCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the inventory in a read-only terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(cmd.Context(), g, "")
			if err != nil {
				return err
			}
			defer s.close()

			var rows []domain.Row
			for r := range usecase.NewListInventory(s.store).Execute() {
				rows = append(rows, r)
			}

			return tui.Run(tui.Deps{
				Rows:   rows,
				Source: s.file.Path(),
				Logger: s.log,
			})
		},
	}
}
