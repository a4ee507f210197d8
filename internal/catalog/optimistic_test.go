package catalog

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyOptimistic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		writeErr    error
		rollback    bool
		wantOutcome Outcome
		wantValue   int
		wantHistory []int
	}{
		{
			name:        "committed and reconciled",
			wantOutcome: OutcomeCommitted,
			wantValue:   21,
			wantHistory: []int{2, 21},
		},
		{
			name:        "rolled back through apply",
			writeErr:    errors.New("remote down"),
			wantOutcome: OutcomeRolledBack,
			wantValue:   1,
			wantHistory: []int{2, 1},
		},
		{
			name:        "rolled back through custom rollback",
			writeErr:    errors.New("remote down"),
			rollback:    true,
			wantOutcome: OutcomeRolledBack,
			wantValue:   -1,
			wantHistory: []int{2, -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			value := 1
			var history []int
			set := func(v int) {
				value = v
				history = append(history, v)
			}

			op := OptimisticOp[int]{
				Current: value,
				Next:    2,
				Apply:   set,
				Write: func(_ context.Context, next int) (int, error) {
					assert.Equal(t, 2, value, "the local value is applied before the remote write")

					return next * 10, tt.writeErr
				},
				Reconcile: func(canonical int) { set(canonical + 1) },
			}
			if tt.rollback {
				op.Rollback = func(current, next int) { set(current - next) }
			}

			outcome, err := ApplyOptimistic(context.Background(), op)
			if tt.writeErr != nil {
				require.ErrorIs(t, err, tt.writeErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantOutcome, outcome)
			assert.Equal(t, tt.wantValue, value)
			assert.Equal(t, tt.wantHistory, history)
		})
	}
}

func TestOutcome_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "committed", OutcomeCommitted.String())
	assert.Equal(t, "rolled_back", OutcomeRolledBack.String())
	assert.Equal(t, "skipped", OutcomeSkipped.String())
}
