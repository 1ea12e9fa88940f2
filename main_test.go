package fftwgo

import (
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// The process-wide pool lives for the life of the process.
		goleak.IgnoreAnyFunction("github.com/hupe1980/fftwgo/pool.(*WorkerPool).worker"),
	)
}
