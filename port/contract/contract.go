package contract

import (
	"testing"

	"go.llib.dev/testcase"
)

// Make creates a fresh testing subject for a single test case.
//
// When a subject needs more than the value under test,
// for example the expected outcome it is checked against,
// wrap them together into a "XXXSubject" struct and return that from Make.
type Make[Subject any] = func(tb testing.TB) Subject

// Contract is the behavioral specification of a role interface.
//
// Any implementation of the interface is expected to pass it,
// so consumers can rely on the behavior instead of a specific implementation.
type Contract interface {
	testcase.Suite
	// Test asserts the behavioral requirements against the implementation.
	Test(*testing.T)
	// Benchmark measures the aspects of the implementation that matter for its consumers.
	Benchmark(*testing.B)
}
