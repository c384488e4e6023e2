package domain

import (
	"strconv"

	"github.com/shopspring/decimal"
)

const (
	// MaxNameLength is the longest boat name kept; longer names are truncated.
	MaxNameLength = 127

	// MaxTrailerTagLength is the longest trailer license tag kept.
	MaxTrailerTagLength = 255

	// DefaultCapacity is the inventory size used when none is configured.
	DefaultCapacity = 120
)

// Location is the berth-specific payload of a Boat. The set of
// implementations is closed: SlipNumber, Bay, TrailerTag and StorageNumber.
type Location interface {
	// Type is the berth type this payload belongs to.
	Type() BoatType
	// Field renders the payload as the type-specific record field.
	Field() string

	isLocation()
}

// SlipNumber is the slip a boat is moored at (expected 1-85, not enforced).
type SlipNumber int

// Bay is the land bay letter (expected A-Z, not enforced).
type Bay byte

// TrailerTag is the license tag of the trailer a boat is stored on.
type TrailerTag string

// StorageNumber is the storage space a boat occupies (expected 1-50, not enforced).
type StorageNumber int

func (SlipNumber) Type() BoatType    { return BoatSlip }
func (Bay) Type() BoatType           { return BoatLand }
func (TrailerTag) Type() BoatType    { return BoatTrailer }
func (StorageNumber) Type() BoatType { return BoatStorage }

func (n SlipNumber) Field() string    { return strconv.Itoa(int(n)) }
func (n StorageNumber) Field() string { return strconv.Itoa(int(n)) }
func (t TrailerTag) Field() string    { return string(t) }

func (b Bay) Field() string {
	if b == 0 {
		return ""
	}
	return string([]byte{byte(b)})
}

func (SlipNumber) isLocation()    {}
func (Bay) isLocation()           {}
func (TrailerTag) isLocation()    {}
func (StorageNumber) isLocation() {}

// Boat is one inventory record: a berthed vessel and its billing state.
type Boat struct {
	Name   string
	Length int // feet

	// Location determines the berth type; see Type.
	Location Location

	AmountOwed decimal.Decimal
}

// Type returns the berth type carried by the boat's location. A boat without
// a location is treated as a slip boat.
func (b Boat) Type() BoatType {
	if b.Location == nil {
		return BoatSlip
	}
	return b.Location.Type()
}

// MonthlyFee is the amount one month of berthing adds to the balance.
func (b Boat) MonthlyFee() decimal.Decimal {
	return MonthlyRate(b.Type()).Mul(decimal.NewFromInt(int64(b.Length)))
}

// Row is a read-only display view of a Boat.
type Row struct {
	Name       string
	Length     int
	Type       BoatType
	Field      string
	AmountOwed decimal.Decimal
}

// Row returns the display view of b.
func (b Boat) Row() Row {
	r := Row{
		Name:       b.Name,
		Length:     b.Length,
		Type:       b.Type(),
		AmountOwed: b.AmountOwed,
	}
	if b.Location != nil {
		r.Field = b.Location.Field()
	}
	return r
}
