package logging

import (
	"context"
	"slices"
)

type detailsKey struct{}

// ContextWith returns a context whose log entries carry the given details,
// after the ones the parent context already carries.
func ContextWith(ctx context.Context, ds ...Detail) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if len(ds) == 0 {
		return ctx
	}
	inherited := detailsOf(ctx)
	return context.WithValue(ctx, detailsKey{}, append(slices.Clip(inherited), ds...))
}

func detailsOf(ctx context.Context) []Detail {
	if ctx == nil {
		return nil
	}
	ds, _ := ctx.Value(detailsKey{}).([]Detail)
	return ds
}
