package retry

import "context"

// Retry runs an operation until it succeeds, the attempts are used up,
// or the operation asks to stop.
//
// The ActiveCampaign client only retries the read actions
// (address_list, list_list); the *_add, *_sync and *_create actions
// are never repeated because a lost response may still have created
// the resource.
//
// Usage Example:
//
//	r := retry.NewExponentialRetry(
//	    retry.WithInitialDuration(100*time.Millisecond),
//	    retry.WithLogger(myLogger),
//	)
//
//	err := r.Do(ctx, 3, "list_list", func(attempt int) (error, retry.ExitStrategy) {
//	    err := call()
//	    if isTransient(err) {
//	        return err, retry.Continue
//	    }
//	    return err, retry.StopNow
//	})
//
// NOTE: if attempts is 0, the fn is never called.
type Retry interface {
	Do(ctx context.Context, attempts int, fnName string, fn RetriableFn) error
}

type RetriableFn func(attempt int) (error, ExitStrategy)

type ExitStrategy bool

var StopNow ExitStrategy = true
var Continue ExitStrategy = false
