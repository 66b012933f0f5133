package solver

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/matzehuels/bestfirst/pkg/errors"
	"github.com/matzehuels/bestfirst/pkg/search"
)

// CheckInterval is the number of search steps between context checks.
const CheckInterval = 256

// Drive steps run to completion, checking ctx every CheckInterval steps.
//
// When ctx ends first the run is abandoned: the returned result has status
// Running, and the error is a TIMEOUT error for an expired deadline or
// wraps context.Canceled otherwise.
func Drive[S comparable](ctx context.Context, run *search.Run[S]) (search.Result[S], error) {
	for i := 0; ; i++ {
		if i%CheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return run.Result(), abandoned(err, run.Expanded())
			}
		}
		if run.Step() != search.Running {
			return run.Result(), nil
		}
	}
}

func abandoned(err error, expanded int) error {
	if stderrors.Is(err, context.DeadlineExceeded) {
		return errors.Wrap(errors.ErrCodeTimeout, err, "search abandoned after %d expansions", expanded)
	}
	return fmt.Errorf("search canceled after %d expansions: %w", expanded, err)
}
