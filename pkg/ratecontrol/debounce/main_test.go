package debounce

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain enables goroutine leak detection for all tests in this package.
// Timer goroutines must have finished by the time the tests return.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
