// Package testutil provides shared test utilities for the match engine.
package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// AssertEqual compares got and want using cmp.Diff and reports differences.
// The msgAndArgs are optional and provide additional context if the assertion fails.
func AssertEqual(t *testing.T, got, want interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("%smismatch (-want +got):\n%s", prefix(msgAndArgs...), diff)
	}
}

// AssertNoError fails the test immediately if err is not nil.
func AssertNoError(t *testing.T, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err != nil {
		t.Fatalf("%sunexpected error: %v", prefix(msgAndArgs...), err)
	}
}

// AssertErrorIs fails if err does not match target under errors.Is.
func AssertErrorIs(t *testing.T, err, target error, msgAndArgs ...interface{}) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Errorf("%serror = %v; want %v", prefix(msgAndArgs...), err, target)
	}
}

// AssertTrue fails if condition is false.
func AssertTrue(t *testing.T, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if !condition {
		t.Errorf("%sexpected true but got false", prefix(msgAndArgs...))
	}
}

// AssertFalse fails if condition is true.
func AssertFalse(t *testing.T, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if condition {
		t.Errorf("%sexpected false but got true", prefix(msgAndArgs...))
	}
}

// prefix renders the optional message arguments as "msg: ", or "" when
// none were given.
func prefix(msgAndArgs ...interface{}) string {
	msg := formatMessage(msgAndArgs...)
	if msg == "" {
		return ""
	}
	return msg + ": "
}

// formatMessage formats optional message arguments into a string.
func formatMessage(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if s, ok := msgAndArgs[0].(string); ok {
		if len(msgAndArgs) == 1 {
			return s
		}
		return fmt.Sprintf(s, msgAndArgs[1:]...)
	}
	return fmt.Sprintf("%v", msgAndArgs[0])
}
