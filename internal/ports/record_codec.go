package ports

import "github.com/aalvaropc/marina/internal/domain"

// RecordCodec converts between a text record and a Boat.
type RecordCodec interface {
	Parse(line string) (domain.Boat, error)
	Format(b domain.Boat) string
}
