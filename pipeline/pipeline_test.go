/*
File : mylang/pipeline/pipeline_test.go
*/
package pipeline

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amaji/mylang/interpreter"
)

func TestRun_CleanProgramProducesNoErrors(t *testing.T) {
	var out bytes.Buffer
	result := Run(`print 1 + 1;`, interpreter.New(&out))
	assert.False(t, result.Failed())
	assert.Equal(t, "2\n", out.String())
}

func TestRun_TranslationErrorsAbortBeforeEvaluation(t *testing.T) {
	var out bytes.Buffer
	result := Run(`print ;`, interpreter.New(&out))
	assert.True(t, result.Failed())
	assert.True(t, result.Translation.HasErrors())
	assert.Nil(t, result.Runtime, "evaluation never runs once a static stage has failed")
	assert.Equal(t, "", out.String())
}

func TestRun_RuntimeErrorSurfacedWhenTranslationIsClean(t *testing.T) {
	var out bytes.Buffer
	result := Run(`print undeclared;`, interpreter.New(&out))
	assert.True(t, result.Failed())
	assert.False(t, result.Translation.HasErrors())
	assert.NotNil(t, result.Runtime)
	assert.Contains(t, result.Runtime.Error(), "Undefined variable 'undeclared'.")
}

func TestRun_ReusedInterpreterPersistsBindingsAcrossCalls(t *testing.T) {
	var out bytes.Buffer
	interp := interpreter.New(&out)

	first := Run(`let total = 10;`, interp)
	assert.False(t, first.Failed())

	second := Run(`total = total + 5; print total;`, interp)
	assert.False(t, second.Failed())
	assert.Equal(t, "15\n", out.String())
}

func TestRun_EachCallGetsItsOwnFreshTranslationBatch(t *testing.T) {
	var out bytes.Buffer
	interp := interpreter.New(&out)

	bad := Run(`print ;`, interp)
	assert.True(t, bad.Failed())

	good := Run(`print 42;`, interp)
	assert.False(t, good.Failed(), "a prior call's translation errors must not leak into the next Run")
	assert.Equal(t, "42\n", out.String())
}
