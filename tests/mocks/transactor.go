package mocks

import "context"

// Transactor runs fn directly and records how each transaction ended.
type Transactor struct {
	Commits   int
	Rollbacks int
}

func (t *Transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		t.Rollbacks++
		return err
	}
	t.Commits++
	return nil
}
