package catalog

import "context"

// Outcome is the result of an optimistic operation.
type Outcome int

const (
	// OutcomeSkipped means the target did not exist and nothing was attempted.
	OutcomeSkipped Outcome = iota
	// OutcomeCommitted means the remote write succeeded.
	OutcomeCommitted
	// OutcomeRolledBack means the remote write failed and the local change was undone.
	OutcomeRolledBack
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCommitted:
		return "committed"
	case OutcomeRolledBack:
		return "rolled_back"
	default:
		return "skipped"
	}
}

// OptimisticOp describes a value change that is shown locally before the remote write confirms it.
type OptimisticOp[T any] struct {
	Current T
	Next    T
	// Apply writes a value to the local state.
	Apply func(value T)
	// Write performs the remote write and returns the canonical value stored remotely.
	Write func(ctx context.Context, value T) (T, error)
	// Rollback undoes Apply. When nil, Apply(Current) is used.
	Rollback func(current, next T)
	// Reconcile receives the canonical value after a successful write. Optional.
	Reconcile func(canonical T)
}

// ApplyOptimistic applies op.Next locally, runs the remote write and either
// reconciles or rolls back.
func ApplyOptimistic[T any](ctx context.Context, op OptimisticOp[T]) (Outcome, error) {
	op.Apply(op.Next)

	canonical, err := op.Write(ctx, op.Next)
	if err != nil {
		if op.Rollback != nil {
			op.Rollback(op.Current, op.Next)
		} else {
			op.Apply(op.Current)
		}

		return OutcomeRolledBack, err
	}

	if op.Reconcile != nil {
		op.Reconcile(canonical)
	}

	return OutcomeCommitted, nil
}
