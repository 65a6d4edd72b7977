// Package must turns a (value, error) pair into a value, panicking on the error.
//
// It is meant for places where an error can only come from a programming mistake,
// such as building a list from constant arguments:
//
//	digits := must.Must(listkit.Range(0, 10))
package must

// Must returns v, or panics with err when it is not nil.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
