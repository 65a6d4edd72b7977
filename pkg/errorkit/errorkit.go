// Package errorkit holds small helpers for declaring and combining errors.
package errorkit

import "errors"

// Finish is meant to be used from a deferred context.
//
//	defer errorkit.Finish(&returnError, file.Close)
func Finish(returnErr *error, blk func() error) {
	*returnErr = Merge(*returnErr, blk())
}

// Merge combines the non nil error values into a single error value.
// Without any non nil error it returns nil,
// and a single non nil error is returned as is.
func Merge(errs ...error) error {
	var nonNil []error
	for _, err := range errs {
		if err != nil {
			nonNil = append(nonNil, err)
		}
	}
	switch len(nonNil) {
	case 0:
		return nil
	case 1:
		return nonNil[0]
	default:
		return errors.Join(nonNil...)
	}
}
