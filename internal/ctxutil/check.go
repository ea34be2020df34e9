// Package ctxutil provides context utility functions.
package ctxutil

import "context"

// Canceled returns the context error once ctx is done and nil before that.
// Commands call it at entry so a canceled run does no work.
func Canceled(ctx context.Context) error {
	return ctx.Err()
}
