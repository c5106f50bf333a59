package engine

import "context"

type Engine interface {
	// Run plays turns until the turn limit and returns the turn by turn report
	Run(ctx context.Context) (*Report, error)
}
