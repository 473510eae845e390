package advanced

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestHandlePanicRecover(t *testing.T) {
	testFn := func(shouldThrow bool, shouldPanic bool) (err error) {
		defer func() {
			recoveredErr := HandlePanicRecover(recover())
			if recoveredErr != nil {
				err = recoveredErr
			}
		}()

		if shouldThrow {
			fatalf("kaboom!")
		}

		if shouldPanic {
			panic("true panic")
		}

		return nil
	}

	t.Run("with throw", func(t *testing.T) {
		err := testFn(true, false)
		assert.EqualError(t, err, "kaboom!")
	})

	t.Run("with real panic", func(t *testing.T) {
		assert.Panics(t, func() {
			testFn(false, true)
		})
	})

	t.Run("no error", func(t *testing.T) {
		err := testFn(false, false)
		assert.NoError(t, err)
	})
}

func TestMustBeFinite(t *testing.T) {
	assert.NotPanics(t, func() {
		MustBeFinite([]Point{{0, 0}, {1e300, -1e300}})
	})
	for _, bad := range []Point{{math.NaN(), 0}, {0, math.Inf(1)}, {math.Inf(-1), 0}} {
		assert.Panics(t, func() {
			MustBeFinite([]Point{{0, 0}, bad})
		})
	}
}

func TestIsCounted(t *testing.T) {
	assert.True(t, isCounted(errors.Wrap(ErrParallelCrossing, "context")))
	assert.True(t, isCounted(errors.Wrap(ErrPlaneAlignedRegion, "context")))
	assert.True(t, isCounted(ErrParameterOutOfRange))
	assert.False(t, isCounted(errors.Wrap(ErrDegenerateEdge, "context")))
	assert.False(t, isCounted(errors.Wrapf(ErrEmptyRegion, "%d vertices", 2)))
}
