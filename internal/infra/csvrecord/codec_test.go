package csvrecord

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/marina/internal/domain"
)

var decimalEqual = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func amount(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestParse_AllTypes(t *testing.T) {
	cases := []struct {
		line string
		want domain.Boat
	}{
		{
			"Betty,30,slip,2,100.00",
			domain.Boat{Name: "Betty", Length: 30, Location: domain.SlipNumber(2), AmountOwed: amount("100")},
		},
		{
			"Alpha,20,land,B,50.00",
			domain.Boat{Name: "Alpha", Length: 20, Location: domain.Bay('B'), AmountOwed: amount("50")},
		},
		{
			"Big Brother,26,trailor, BNX 452 ,1200.50",
			domain.Boat{Name: "Big Brother", Length: 26, Location: domain.TrailerTag("BNX 452"), AmountOwed: amount("1200.5")},
		},
		{
			"  Moby ,15,STORAGE,41,0",
			domain.Boat{Name: "Moby", Length: 15, Location: domain.StorageNumber(41), AmountOwed: decimal.Zero},
		},
	}
	for _, c := range cases {
		got, err := Parse(c.line)
		require.NoError(t, err, c.line)
		if diff := cmp.Diff(c.want, got, decimalEqual); diff != "" {
			t.Errorf("Parse(%q) mismatch (-want +got):\n%s", c.line, diff)
		}
	}
}

func TestParse_TooFewFields(t *testing.T) {
	for _, line := range []string{"", "Betty", "Betty,30,slip,2", "Betty,,30,slip,2", ",,,,"} {
		_, err := Parse(line)
		assert.ErrorIs(t, err, domain.ErrParse, "line %q", line)
		assert.True(t, domain.IsKind(err, domain.KindParse))
	}
}

func TestParse_CollapsesEmptyFieldsAndIgnoresExtras(t *testing.T) {
	got, err := Parse("Betty,,30,,slip,2,100.00,extra")
	require.NoError(t, err)
	assert.Equal(t, "Betty", got.Name)
	assert.Equal(t, 30, got.Length)
	assert.Equal(t, domain.SlipNumber(2), got.Location)
}

func TestParse_LenientNumbers(t *testing.T) {
	got, err := Parse("Dinghy,abc,slip,x9,lots")
	require.NoError(t, err)
	assert.Equal(t, 0, got.Length)
	assert.Equal(t, domain.SlipNumber(0), got.Location)
	assert.True(t, got.AmountOwed.IsZero())

	got, err = Parse("Dinghy, 12ft,storage, 7b, 33.456xyz")
	require.NoError(t, err)
	assert.Equal(t, 12, got.Length)
	assert.Equal(t, domain.StorageNumber(7), got.Location)
	assert.True(t, amount("33.456").Equal(got.AmountOwed))
}

func TestParse_UnknownTypeFallsBackToSlip(t *testing.T) {
	got, err := Parse("Ferry,40,houseboat,12,10")
	require.NoError(t, err)
	assert.Equal(t, domain.BoatSlip, got.Type())
	assert.Equal(t, domain.SlipNumber(12), got.Location)
}

func TestParse_Truncation(t *testing.T) {
	longName := strings.Repeat("n", 200)
	longTag := strings.Repeat("t", 300)

	got, err := Parse(longName + ",10,trailor," + longTag + ",1")
	require.NoError(t, err)
	assert.Len(t, got.Name, domain.MaxNameLength)
	assert.Len(t, string(got.Location.(domain.TrailerTag)), domain.MaxTrailerTagLength)
}

func TestFormat(t *testing.T) {
	cases := []struct {
		boat domain.Boat
		want string
	}{
		{domain.Boat{Name: "Betty", Length: 30, Location: domain.SlipNumber(2), AmountOwed: amount("60")}, "Betty,30,slip,2,60.00"},
		{domain.Boat{Name: "Alpha", Length: 20, Location: domain.Bay('B'), AmountOwed: amount("330")}, "Alpha,20,land,B,330.00"},
		{domain.Boat{Name: "Tow", Length: 8, Location: domain.TrailerTag("CA 12"), AmountOwed: amount("-4.5")}, "Tow,8,trailor,CA 12,-4.50"},
		{domain.Boat{Name: "Box", Length: 11, Location: domain.StorageNumber(3), AmountOwed: amount("0.125")}, "Box,11,storage,3,0.13"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Format(c.boat))
	}
}

func TestRoundTrip(t *testing.T) {
	boats := []domain.Boat{
		{Name: "Betty", Length: 30, Location: domain.SlipNumber(2), AmountOwed: amount("100")},
		{Name: "Alpha", Length: 20, Location: domain.Bay('Z'), AmountOwed: amount("50.25")},
		{Name: "Big Brother", Length: 26, Location: domain.TrailerTag("BNX 452"), AmountOwed: amount("0")},
		{Name: "Moby", Length: 99, Location: domain.StorageNumber(50), AmountOwed: amount("-12.01")},
	}
	for _, b := range boats {
		line := Format(b)
		got, err := Parse(line)
		require.NoError(t, err, line)
		if diff := cmp.Diff(b, got, decimalEqual); diff != "" {
			t.Errorf("round trip of %q mismatch (-want +got):\n%s", line, diff)
		}
		assert.Equal(t, line, Format(got))
	}
}

func TestFormat_EmptyLocationDoesNotReload(t *testing.T) {
	boats := map[string]domain.Boat{
		"Dry,20,land,,50.00":   {Name: "Dry", Length: 20, Location: domain.Bay(0), AmountOwed: amount("50")},
		"Tow,8,trailor,,10.00": {Name: "Tow", Length: 8, Location: domain.TrailerTag(""), AmountOwed: amount("10")},
	}
	for want, b := range boats {
		line := Format(b)
		require.Equal(t, want, line)

		_, err := Parse(line)
		assert.ErrorIs(t, err, domain.ErrParse, "empty field collapses, %q has four fields", line)
	}

	b, err := Parse("Dry,20,land, ,50")
	require.NoError(t, err)
	assert.Equal(t, domain.Bay(0), b.Location)
	assert.Equal(t, "Dry,20,land,,50.00", Format(b))
}

func TestFormatRow(t *testing.T) {
	cases := []struct {
		boat domain.Boat
		want string
	}{
		{
			domain.Boat{Name: "Betty", Length: 30, Location: domain.SlipNumber(2), AmountOwed: amount("100")},
			"Betty                30'    slip   #  2   Owes $  100.00",
		},
		{
			domain.Boat{Name: "Alpha", Length: 20, Location: domain.Bay('B'), AmountOwed: amount("50")},
			"Alpha                20'    land      B   Owes $   50.00",
		},
		{
			domain.Boat{Name: "Tow", Length: 8, Location: domain.TrailerTag("CA12"), AmountOwed: amount("1234.5")},
			"Tow                   8'  trailor CA12   Owes $ 1234.50",
		},
		{
			domain.Boat{Name: "Box", Length: 11, Location: domain.StorageNumber(41), AmountOwed: amount("0")},
			"Box                  11'  storage   # 41   Owes $    0.00",
		},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatRow(c.boat.Row()))
	}
}

func TestCodecSatisfiesPort(t *testing.T) {
	c := NewCodec()
	b, err := c.Parse("Betty,30,slip,2,100.00")
	require.NoError(t, err)
	assert.Equal(t, "Betty,30,slip,2,100.00", c.Format(b))
}

func TestCodec_ReportsUnknownType(t *testing.T) {
	var labels []string
	c := Codec{OnUnknownType: func(label string) { labels = append(labels, label) }}

	_, err := c.Parse("Ferry,40, Houseboat ,12,10")
	require.NoError(t, err)
	_, err = c.Parse("Betty,30,SLIP,2,100.00")
	require.NoError(t, err)

	assert.Equal(t, []string{"Houseboat"}, labels)
}
