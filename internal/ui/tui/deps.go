package tui

import (
	"log/slog"

	"github.com/aalvaropc/marina/internal/domain"
)

type Deps struct {
	// Rows is the inventory snapshot to browse, in display order.
	Rows []domain.Row
	// Source names where the rows came from, shown in the header.
	Source string

	Logger *slog.Logger
}
