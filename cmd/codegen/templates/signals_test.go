package templates

import (
	"go/format"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelpers(t *testing.T) {
	assert.Equal(t, "A0, A1, A2", argTypes(3))
	assert.Equal(t, "a0 A0, a1 A1", params(2))
	assert.Equal(t, "", leading(args(0)))
	assert.Equal(t, ", a0", leading(args(1)))
	assert.Equal(t, "[T, A0, R any]", tparams("T", 1, "R"))
	assert.Equal(t, "", tparams("", 0))
	assert.Equal(t, "[A0, A1, R, T]", targs(2, "R", "T"))
	assert.Equal(t, "func()", funcType(0, ""))
	assert.Equal(t, "func(A0, A1) R", funcType(2, "R"))
}

func TestSignalsGen(t *testing.T) {
	src, err := format.Source([]byte(SignalsGen("signals", 2)))
	require.NoError(t, err)

	out := string(src)
	assert.Contains(t, out, "package signals\n")
	assert.Contains(t, out, "type Void0 struct {")
	assert.Contains(t, out, "type Signal2[A0, A1, R any] struct {")
	assert.Contains(t, out, "func (s *Void1[A0]) EmitCollect(c Collector[Void], a0 A0) {")
	assert.Contains(t, out, "func Slot2[T, A0, A1, R any](obj T, method func(T, A0, A1) R) func(A0, A1) R {")
	assert.NotContains(t, out, "Signal3")
}

func TestCheckedInOutputIsCurrent(t *testing.T) {
	want, err := os.ReadFile("../../../signals/signals_gen.go")
	require.NoError(t, err)

	got, err := format.Source([]byte(SignalsGen("signals", 4)))
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))
}

func TestCompiledTemplateKeepsLineDirectives(t *testing.T) {
	src, err := os.ReadFile("signals.qtpl.go")
	require.NoError(t, err)

	directives := 0
	for _, line := range strings.Split(string(src), "\n") {
		if strings.HasPrefix(line, "//line cmd/codegen/templates/signals.qtpl:") {
			directives++
		}
	}
	assert.Greater(t, directives, 100)
}
