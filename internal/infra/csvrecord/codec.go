// Package csvrecord maps between the five-field delimited inventory record
// and domain.Boat:
//
//	name,length,type,type-specific-field,amountOwed
package csvrecord

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/marina/internal/domain"
	"github.com/aalvaropc/marina/internal/ports"
)

const (
	// Delimiter separates record fields.
	Delimiter = ','

	fieldCount = 5
)

// Codec is the delimited-record implementation of ports.RecordCodec.
type Codec struct {
	// OnUnknownType, when set, is called with the raw type label of a record
	// whose type was not recognized and fell back to slip.
	OnUnknownType func(label string)
}

func NewCodec() Codec { return Codec{} }

var _ ports.RecordCodec = Codec{}

func (c Codec) Parse(line string) (domain.Boat, error) { return parse(line, c.OnUnknownType) }
func (Codec) Format(b domain.Boat) string              { return Format(b) }

// Parse reads one record. Empty fields are skipped, so consecutive
// delimiters collapse; fields past the fifth are ignored. A record with
// fewer than five fields fails with domain.ErrParse. Numbers are parsed
// leniently and unknown types become slips.
func Parse(line string) (domain.Boat, error) {
	return parse(line, nil)
}

func parse(line string, onUnknownType func(string)) (domain.Boat, error) {
	fields := tokenize(line)
	if len(fields) < fieldCount {
		return domain.Boat{}, &domain.OpError{
			Op:   "csvrecord.parse",
			Kind: domain.KindParse,
			Err:  fmt.Errorf("expected %d fields, got %d: %w", fieldCount, len(fields), domain.ErrParse),
		}
	}

	name := strings.TrimSpace(truncate(fields[0], domain.MaxNameLength))
	typ, ok := domain.LookupBoatType(fields[2])
	if !ok && onUnknownType != nil {
		onUnknownType(strings.TrimSpace(fields[2]))
	}
	specific := strings.TrimSpace(fields[3])

	return domain.Boat{
		Name:       name,
		Length:     Atoi(fields[1]),
		Location:   ParseLocation(typ, specific),
		AmountOwed: ParseAmount(fields[4]),
	}, nil
}

// ParseLocation interprets the type-specific field for typ.
func ParseLocation(typ domain.BoatType, field string) domain.Location {
	switch typ {
	case domain.BoatLand:
		if field == "" {
			return domain.Bay(0)
		}
		return domain.Bay(field[0])
	case domain.BoatTrailer:
		return domain.TrailerTag(truncate(field, domain.MaxTrailerTagLength))
	case domain.BoatStorage:
		return domain.StorageNumber(Atoi(field))
	default:
		return domain.SlipNumber(Atoi(field))
	}
}

// Format renders b as a record with the amount fixed at two decimals.
func Format(b domain.Boat) string {
	r := b.Row()
	return fmt.Sprintf("%s,%d,%s,%s,%s", r.Name, r.Length, r.Type, r.Field, r.AmountOwed.StringFixed(2))
}

// FormatRow renders the fixed-width inventory listing line for r.
func FormatRow(r domain.Row) string {
	var loc string
	switch r.Type {
	case domain.BoatLand:
		loc = "   land      " + r.Field
	case domain.BoatTrailer:
		loc = " trailor " + r.Field
	case domain.BoatStorage:
		loc = fmt.Sprintf(" storage   # %2s", r.Field)
	default:
		loc = fmt.Sprintf("   slip   # %2s", r.Field)
	}

	return fmt.Sprintf("%-20s %2d' %s   Owes $%8s", r.Name, r.Length, loc, r.AmountOwed.StringFixed(2))
}

func tokenize(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool { return r == Delimiter })
}

// truncate shortens s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
