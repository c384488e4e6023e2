package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/aalvaropc/marina/internal/domain"
	"github.com/aalvaropc/marina/internal/infra/csvrecord"
	"github.com/aalvaropc/marina/internal/infra/workspacefinder"
	"github.com/aalvaropc/marina/internal/usecase"
)

var footerStyle = lipgloss.NewStyle().Faint(true)

func listCmd(g *globalFlags) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "list",
		Short: "Print the inventory in name order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(cmd.Context(), g, "")
			if err != nil {
				return err
			}
			defer s.close()

			f := format
			if !cmd.Flags().Changed("format") {
				f = s.cfg.Display.ListFormat
			}

			var rows []domain.Row
			for r := range usecase.NewListInventory(s.store).Execute() {
				rows = append(rows, r)
			}
			return printRows(cmd.OutOrStdout(), rows, f)
		},
	}

	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|csv|json (default from marina.list_format)")
	return c
}

type rowJSON struct {
	Name       string `json:"name"`
	Length     int    `json:"length"`
	Type       string `json:"type"`
	Location   string `json:"location"`
	AmountOwed string `json:"amount_owed"`
}

func printRows(w io.Writer, rows []domain.Row, format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "pretty", "":
		total := decimal.Zero
		for _, r := range rows {
			fmt.Fprintln(w, csvrecord.FormatRow(r))
			total = total.Add(r.AmountOwed)
		}
		fmt.Fprintln(w, footerStyle.Render(fmt.Sprintf("%d boats, $%s owed", len(rows), total.StringFixed(2))))
		return nil

	case "csv":
		for _, r := range rows {
			fmt.Fprintf(w, "%s,%d,%s,%s,%s\n", r.Name, r.Length, r.Type, r.Field, r.AmountOwed.StringFixed(2))
		}
		return nil

	case "json":
		out := make([]rowJSON, 0, len(rows))
		for _, r := range rows {
			out = append(out, rowJSON{
				Name:       r.Name,
				Length:     r.Length,
				Type:       r.Type.String(),
				Location:   r.Field,
				AmountOwed: r.AmountOwed.StringFixed(2),
			})
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)

	default:
		return fmt.Errorf("unsupported format %q (expected %s)", format, strings.Join(workspacefinder.ListFormats, "|"))
	}
}

func addCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "add <record>",
		Short:   "Add a boat from a name,length,type,field,amount record",
		Example: `  marina add "Sea Breeze,22,slip,14,0.00"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), g, "")
			if err != nil {
				return err
			}
			defer s.close()

			b, err := usecase.NewAddBoat(s.store, s.codec).Execute(args[0])
			if err != nil {
				s.log.Warn("boat.add.failed", "kind", string(domain.KindOf(err)), "err", err)
				return err
			}
			s.log.Info("boat.added", "name", b.Name, "type", b.Type().String())

			if err := s.save(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", b.Name)
			return nil
		},
	}
}

func removeCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a boat by name (case-insensitive)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), g, "")
			if err != nil {
				return err
			}
			defer s.close()

			b, err := usecase.NewRemoveBoat(s.store).Execute(args[0])
			if err != nil {
				return err
			}
			s.log.Info("boat.removed", "name", b.Name)

			if err := s.save(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", b.Name)
			return nil
		},
	}
}

func payCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "pay <name> <amount>",
		Short: "Apply a payment to a boat's balance",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(strings.TrimSpace(args[1]))
			if err != nil {
				return fmt.Errorf("invalid amount %q", args[1])
			}

			s, err := openSession(cmd.Context(), g, "")
			if err != nil {
				return err
			}
			defer s.close()

			b, err := usecase.NewApplyPayment(s.store).Execute(args[0], amount)
			if err != nil {
				s.log.Info("payment.rejected", "name", args[0], "amount", amount.String(), "err", err)
				return err
			}
			s.log.Info("payment.applied", "name", b.Name, "amount", amount.String(), "owed", b.AmountOwed.String())

			if err := s.save(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s now owes $%s\n", b.Name, b.AmountOwed.StringFixed(2))
			return nil
		},
	}
}

func monthCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "month",
		Short: "Add one month of berthing fees to every boat",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(cmd.Context(), g, "")
			if err != nil {
				return err
			}
			defer s.close()

			total := usecase.NewAccrueMonthlyFees(s.store).Execute()
			s.log.Info("fees.accrued", "total", total.StringFixed(2), "boats", s.store.Len())

			if err := s.save(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Billed $%s across %d boats\n", total.StringFixed(2), s.store.Len())
			return nil
		},
	}
}
