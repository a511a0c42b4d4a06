/*
File : mylang/resolver/resolver_test.go
*/
package resolver

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/amaji/mylang/lexer"
	"github.com/amaji/mylang/parser"
)

// recordingInterp is a bare fake satisfying the Interpreter interface,
// recording every (exprID, depth) pair it is given.
type recordingInterp struct {
	depths map[int]int
}

func newRecordingInterp() *recordingInterp {
	return &recordingInterp{depths: make(map[int]int)}
}

func (r *recordingInterp) Resolve(exprID int, depth int) {
	r.depths[exprID] = depth
}

func TestResolve_GlobalReferenceIsLeftUnannotated(t *testing.T) {
	tokens, _ := lexer.New(`let a = 1; print a;`).Scan()
	statements, parseErrs := parser.New(tokens).Parse()
	assert.False(t, parseErrs.HasErrors())

	interp := newRecordingInterp()
	errs := New(interp).Resolve(statements)
	assert.False(t, errs.HasErrors())
	assert.Empty(t, interp.depths, "a top-level variable reference has no enclosing local scope, so it is never annotated")
}

func TestResolve_BlockLocalReferenceGetsDepthZero(t *testing.T) {
	tokens, _ := lexer.New(`{ let a = 1; print a; }`).Scan()
	statements, parseErrs := parser.New(tokens).Parse()
	assert.False(t, parseErrs.HasErrors())

	interp := newRecordingInterp()
	errs := New(interp).Resolve(statements)
	assert.False(t, errs.HasErrors())
	assert.Len(t, interp.depths, 1)
	for _, depth := range interp.depths {
		assert.Equal(t, 0, depth)
	}
}

func TestResolve_SelfInitializerIsAnError(t *testing.T) {
	tokens, _ := lexer.New(`{ let a = a; }`).Scan()
	statements, _ := parser.New(tokens).Parse()

	interp := newRecordingInterp()
	errs := New(interp).Resolve(statements)
	assert.True(t, errs.HasErrors())
	assert.Contains(t, errs.Issues[0].Message, "own initializer")
}

func TestResolve_DuplicateDeclarationInSameScopeIsAnError(t *testing.T) {
	tokens, _ := lexer.New(`{ let a = 1; let a = 2; }`).Scan()
	statements, _ := parser.New(tokens).Parse()

	interp := newRecordingInterp()
	errs := New(interp).Resolve(statements)
	assert.True(t, errs.HasErrors())
	assert.Contains(t, errs.Issues[0].Message, "Already a variable")
}

func TestResolve_TopLevelReturnIsAnError(t *testing.T) {
	tokens, _ := lexer.New(`return 1;`).Scan()
	statements, _ := parser.New(tokens).Parse()

	interp := newRecordingInterp()
	errs := New(interp).Resolve(statements)
	assert.True(t, errs.HasErrors())
	assert.Contains(t, errs.Issues[0].Message, "top-level code")
}

// depthValues extracts the recorded depths in ascending order; exprIDs
// are a process-wide monotonic counter, so a test can't assert on
// them directly, only on the multiset of depths they resolved to.
func depthValues(depths map[int]int) []int {
	values := make([]int, 0, len(depths))
	for _, d := range depths {
		values = append(values, d)
	}
	sort.Ints(values)
	return values
}

func TestResolve_NestedFunctionSeesDepthPerEnclosingScope(t *testing.T) {
	tokens, _ := lexer.New(`
		fn outer(a) {
			fn inner(b) {
				print a;
				print b;
			}
		}
	`).Scan()
	statements, parseErrs := parser.New(tokens).Parse()
	assert.False(t, parseErrs.HasErrors())

	interp := newRecordingInterp()
	errs := New(interp).Resolve(statements)
	assert.False(t, errs.HasErrors())

	want := []int{0, 1}
	got := depthValues(interp.depths)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("resolved depths mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_ReturnInsideFunctionIsFine(t *testing.T) {
	tokens, _ := lexer.New(`fn f() { return 1; }`).Scan()
	statements, _ := parser.New(tokens).Parse()

	interp := newRecordingInterp()
	errs := New(interp).Resolve(statements)
	assert.False(t, errs.HasErrors())
}
