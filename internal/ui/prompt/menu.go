// Package prompt runs the line-oriented inventory menu over a reader and a
// writer.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode"

	"github.com/aalvaropc/marina/internal/domain"
	"github.com/aalvaropc/marina/internal/infra/csvrecord"
	"github.com/aalvaropc/marina/internal/infra/flatfile"
	"github.com/aalvaropc/marina/internal/inventory"
	"github.com/aalvaropc/marina/internal/ports"
	"github.com/aalvaropc/marina/internal/ui/errorux"
	"github.com/aalvaropc/marina/internal/usecase"
)

const (
	Banner = "Welcome to the Boat Management System\n" +
		"-------------------------------------\n\n"

	MenuPrompt   = "(I)nventory, (A)dd, (R)emove, (P)ayment, (M)onth, e(X)it : "
	RecordPrompt = "Please enter the boat data in CSV format                 : "
	NamePrompt   = "Please enter the boat name                               : "
	AmountPrompt = "Please enter the amount to be paid                       : "

	exitHeader = "\nExiting the Boat Management System\n" +
		"Here's what the saved .csv file could look like:\n"
)

// Menu reads one command per line and applies it to the store.
type Menu struct {
	out io.Writer
	log *slog.Logger

	list   *usecase.ListInventory
	add    *usecase.AddBoat
	remove *usecase.RemoveBoat
	find   *usecase.FindBoat
	pay    *usecase.ApplyPayment
	accrue *usecase.AccrueMonthlyFees
	save   *usecase.SaveInventory
}

type Option func(*Menu)

func WithLogger(l *slog.Logger) Option {
	return func(m *Menu) {
		if l != nil {
			m.log = l
		}
	}
}

func New(store *inventory.Store, codec ports.RecordCodec, file ports.InventoryFile, out io.Writer, opts ...Option) *Menu {
	m := &Menu{
		out:    out,
		log:    slog.New(slog.NewJSONHandler(io.Discard, nil)),
		list:   usecase.NewListInventory(store),
		add:    usecase.NewAddBoat(store, codec),
		remove: usecase.NewRemoveBoat(store),
		find:   usecase.NewFindBoat(store),
		pay:    usecase.NewApplyPayment(store),
		accrue: usecase.NewAccrueMonthlyFees(store),
		save:   usecase.NewSaveInventory(store, codec, file),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run prints the banner and serves commands until X or end of input. X
// saves the inventory and echoes the saved lines; end of input returns
// without saving. Input lines are cut to flatfile.MaxLineBytes. The returned
// error is the save failure, if any, after its message has been printed.
func (m *Menu) Run(ctx context.Context, in io.Reader) error {
	sc := flatfile.NewLineReader(in)
	m.printf("%s", Banner)

	for {
		m.printf("%s", MenuPrompt)
		line, ok := readLine(sc)
		if !ok {
			m.log.Info("menu.eof")
			return sc.Err()
		}

		opt := option(line)
		switch opt {
		case 'I':
			m.inventory()
		case 'A':
			m.addBoat(sc)
		case 'R':
			m.removeBoat(sc)
		case 'P':
			m.payment(sc)
		case 'M':
			m.month()
		case 'X':
			return m.exit(ctx)
		case 0:
		default:
			m.printf("Invalid option %c\n", opt)
		}
		m.printf("\n")
	}
}

func (m *Menu) inventory() {
	for r := range m.list.Execute() {
		m.printf("%s\n", csvrecord.FormatRow(r))
	}
}

func (m *Menu) addBoat(sc *flatfile.LineReader) {
	m.printf("%s", RecordPrompt)
	line, ok := readLine(sc)
	if !ok {
		return
	}

	b, err := m.add.Execute(line)
	if err != nil {
		m.log.Warn("boat.add.failed", "kind", string(domain.KindOf(err)), "err", err)
		m.printf("%s\n", errorux.Message(err))
		return
	}
	m.log.Info("boat.added", "name", b.Name, "type", b.Type().String())
}

func (m *Menu) removeBoat(sc *flatfile.LineReader) {
	m.printf("%s", NamePrompt)
	name, ok := readLine(sc)
	if !ok {
		return
	}

	b, err := m.remove.Execute(name)
	if err != nil {
		m.printf("%s\n", errorux.Message(err))
		return
	}
	m.log.Info("boat.removed", "name", b.Name)
}

func (m *Menu) payment(sc *flatfile.LineReader) {
	m.printf("%s", NamePrompt)
	name, ok := readLine(sc)
	if !ok {
		return
	}

	// The amount is only asked for a boat that exists.
	b, err := m.find.Execute(name)
	if err != nil {
		m.printf("%s\n", errorux.Message(err))
		return
	}

	m.printf("%s", AmountPrompt)
	raw, ok := readLine(sc)
	if !ok {
		return
	}
	amount := csvrecord.ParseAmount(raw)

	b, err = m.pay.Execute(b.Name, amount)
	if err != nil {
		var pe *domain.PaymentError
		if errors.As(err, &pe) {
			m.log.Info("payment.rejected", "name", pe.Name, "amount", amount.String(), "owed", pe.Owed.String())
		}
		m.printf("%s\n", errorux.Message(err))
		return
	}
	m.log.Info("payment.applied", "name", b.Name, "amount", amount.String(), "owed", b.AmountOwed.String())
}

func (m *Menu) month() {
	total := m.accrue.Execute()
	m.log.Info("fees.accrued", "total", total.StringFixed(2))
}

func (m *Menu) exit(ctx context.Context) error {
	lines, err := m.save.Execute(ctx)
	if err != nil {
		m.log.Error("inventory.save.failed", "err", err)
		m.printf("%s\n", errorux.Message(err))
		return err
	}
	m.log.Info("inventory.saved", "boats", len(lines))

	m.printf("%s", exitHeader)
	for _, l := range lines {
		m.printf("%s\n", l)
	}
	return nil
}

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}

func readLine(sc *flatfile.LineReader) (string, bool) {
	if !sc.Scan() {
		return "", false
	}
	return strings.TrimSuffix(sc.Text(), "\r"), true
}

// option is the first non-space character of line, upper-cased, or 0.
func option(line string) rune {
	for _, r := range line {
		if !unicode.IsSpace(r) {
			return unicode.ToUpper(r)
		}
	}
	return 0
}
