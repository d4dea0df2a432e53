// Package queries contains read operations for retrieving system state.
// Queries bypass the aggregates and read optimized models with raw SQL. Every
// query is scoped to the calling principal: rows owned by anyone else are
// invisible and single reads of them fail with errs.ErrObjectNotFound.
package queries

import (
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultPageLimit = 50
	MaxPageLimit     = 100
)

// Page selects a window of a collection. Page numbers start at 1.
type Page struct {
	number int
	limit  int
}

// NewPage validates page and limit; zero values fall back to page 1 and DefaultPageLimit.
func NewPage(number, limit int) (Page, error) {
	if number == 0 {
		number = 1
	}
	if limit == 0 {
		limit = DefaultPageLimit
	}
	if number < 1 {
		return Page{}, errs.NewValueIsOutOfRangeError("page", number, 1, "unbounded")
	}
	if limit < 1 || limit > MaxPageLimit {
		return Page{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxPageLimit)
	}
	return Page{number: number, limit: limit}, nil
}

func (p Page) Number() int { return p.number }
func (p Page) Limit() int  { return p.limit }
func (p Page) Offset() int { return (p.number - 1) * p.limit }

// TotalPages is the number of pages needed for total rows.
func (p Page) TotalPages(total int) int {
	if total == 0 || p.limit == 0 {
		return 0
	}
	return (total + p.limit - 1) / p.limit
}

func toKernelUUID(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toKernelUUIDPtr(id uuid.NullUUID) (*kernel.UUID, error) {
	if !id.Valid {
		return nil, nil
	}
	k, err := toKernelUUID(id.UUID)
	if err != nil {
		return nil, err
	}
	return &k, nil
}
