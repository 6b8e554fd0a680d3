package conv_test

import (
	"testing"

	"github.com/james-bowman/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qpsolve/conv"
)

// observeConv installs an observing logger for the duration of the test
// and returns the captured log sink.
func observeConv(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	zcore, logs := observer.New(zapcore.DebugLevel)
	conv.SetLogger(zap.New(zcore))
	conv.ResetAdvisories()
	t.Cleanup(func() {
		conv.SetLogger(nil)
		conv.ResetAdvisories()
	})

	return logs
}

// TestEnsureCSC_Passthrough verifies CSC in, same CSC out, no advisory.
func TestEnsureCSC_Passthrough(t *testing.T) {
	logs := observeConv(t)
	csc := sparse.NewCSC(2, 2, []int{0, 1, 2}, []int{0, 1}, []float64{1, 2})

	out := conv.EnsureCSC(csc, "G")
	assert.Same(t, csc, out, "CSC passes through untouched")
	assert.Zero(t, logs.Len(), "no conversion, no advisory")

	assert.Nil(t, conv.EnsureCSC(nil, "G"), "nil flows through")
}

// TestEnsureCSC_FromCSRIsSilent verifies sparse-to-sparse re-compression
// keeps values and emits no advisory.
func TestEnsureCSC_FromCSRIsSilent(t *testing.T) {
	logs := observeConv(t)
	csr := sparse.NewCSR(2, 3, []int{0, 2, 3}, []int{0, 2, 1}, []float64{1, 3, 2})

	out := conv.EnsureCSC(csr, "A")
	require.NotNil(t, out)
	assert.Equal(t, 1.0, out.At(0, 0))
	assert.Equal(t, 3.0, out.At(0, 2))
	assert.Equal(t, 2.0, out.At(1, 1))
	assert.Zero(t, logs.Len(), "CSR→CSC is silent")
}

// TestEnsureCSC_FromDense verifies the element-exact compression of a
// dense input, with exact zeros dropped from storage.
func TestEnsureCSC_FromDense(t *testing.T) {
	observeConv(t)
	d := mat.NewDense(3, 2, []float64{1, 0, 0, -2, 0.5, 0})

	out := conv.EnsureCSC(d, "P")
	require.NotNil(t, out)
	r, c := out.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			assert.Equal(t, d.At(i, j), out.At(i, j), "values survive bit-for-bit")
		}
	}
	assert.Equal(t, 3, out.NNZ(), "exact zeros are not stored")
}

// TestEnsureCSR_Mirror verifies the row-compressed mirror of EnsureCSC.
func TestEnsureCSR_Mirror(t *testing.T) {
	logs := observeConv(t)
	csr := sparse.NewCSR(2, 2, []int{0, 1, 2}, []int{0, 1}, []float64{1, 2})

	assert.Same(t, csr, conv.EnsureCSR(csr, "G"))
	assert.Nil(t, conv.EnsureCSR(nil, "G"))
	assert.Zero(t, logs.Len())

	d := mat.NewDense(2, 2, []float64{0, 7, 8, 0})
	out := conv.EnsureCSR(d, "G")
	require.NotNil(t, out)
	assert.Equal(t, 7.0, out.At(0, 1))
	assert.Equal(t, 8.0, out.At(1, 0))
}

// TestEnsureDense verifies passthrough, nil handling and sparse
// materialization, plus the debug-only trace level.
func TestEnsureDense(t *testing.T) {
	logs := observeConv(t)
	d := mat.NewDense(2, 2, []float64{1, 2, 3, 4})

	assert.Same(t, d, conv.EnsureDense(d, "P"))
	assert.Nil(t, conv.EnsureDense(nil, "P"))
	assert.Zero(t, logs.Len())

	csc := sparse.NewCSC(2, 2, []int{0, 1, 2}, []int{0, 1}, []float64{5, 6})
	out := conv.EnsureDense(csc, "P")
	require.NotNil(t, out)
	assert.Equal(t, 5.0, out.At(0, 0))
	assert.Equal(t, 6.0, out.At(1, 1))

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, zapcore.DebugLevel, logs.All()[0].Level, "densification is debug, not a warning")
}

// TestAdvisory_OncePerCallSiteAndOperand exercises the dedup unit: the
// same call site warns once per operand label, while a different call
// site with the same label warns again.
func TestAdvisory_OncePerCallSiteAndOperand(t *testing.T) {
	logs := observeConv(t)
	d := mat.NewDense(1, 1, []float64{1})

	for i := 0; i < 5; i++ {
		conv.EnsureCSC(d, "P") // one call site, looped
	}
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.WarnLevel).Len(), "loop over one call site warns once")

	conv.EnsureCSC(d, "G") // same line style, distinct label and site
	assert.Equal(t, 2, logs.FilterLevelExact(zapcore.WarnLevel).Len())

	conv.EnsureCSC(d, "P") // distinct call site, label seen before
	assert.Equal(t, 3, logs.FilterLevelExact(zapcore.WarnLevel).Len(), "a new call site gets its own advisory")

	warn := logs.FilterLevelExact(zapcore.WarnLevel).All()[0]
	assert.Equal(t, "P", warn.ContextMap()["operand"], "advisory names the operand")
}

// TestAdvisory_ResetRestoresWarning verifies the test hook actually
// clears the dedup table.
func TestAdvisory_ResetRestoresWarning(t *testing.T) {
	logs := observeConv(t)
	d := mat.NewDense(1, 1, []float64{1})

	conv.EnsureCSC(d, "P")
	conv.ResetAdvisories()
	conv.EnsureCSC(d, "P")
	assert.Equal(t, 2, logs.FilterLevelExact(zapcore.WarnLevel).Len())
}
