package engine

import (
	"strings"
	"sync"
	"testing"
)

func TestEvaluateEmptyString(t *testing.T) {
	eng := NewEngine()

	m, evalErrs, err := eng.Evaluate("")
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("unexpected eval errors: %v", evalErrs)
	}
	if m != nil {
		t.Error("empty script produced a mesh")
	}
}

func TestEvaluateWhitespaceOnly(t *testing.T) {
	eng := NewEngine()

	m, evalErrs, err := eng.Evaluate("   \n\t  \n  ")
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("unexpected eval errors: %v", evalErrs)
	}
	if m != nil {
		t.Error("whitespace script produced a mesh")
	}
}

func TestEvaluatePlainLisp(t *testing.T) {
	// Ordinary zygomys code evaluates without touching the terrain.
	eng := NewEngine()
	m, evalErrs, err := eng.Evaluate("(def x 10)\n(+ x 2)")
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("unexpected eval errors: %v", evalErrs)
	}
	if m != nil {
		t.Error("plain Lisp produced a mesh")
	}
}

func TestEvaluateSculptScript(t *testing.T) {
	eng := NewEngine()
	source := `
(terrain :scale 1)
(place (sphere :at (vec3 0.5 0.5 0.5) :radius 0.3) :max-depth 4)
(mesh :max-depth 4)
`
	m, evalErrs, err := eng.Evaluate(source)
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("unexpected eval errors: %v", evalErrs)
	}
	if m == nil || m.IsEmpty() {
		t.Fatal("sculpt script produced no mesh")
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("invalid mesh: %v", err)
	}
}

func TestEvaluateScriptWithoutMeshCall(t *testing.T) {
	eng := NewEngine()
	m, evalErrs, err := eng.Evaluate(`(place (sphere :radius 0.3) :max-depth 2)`)
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("unexpected eval errors: %v", evalErrs)
	}
	if m != nil {
		t.Error("script without a mesh call returned a mesh")
	}
}

func TestEvaluateMapStrategy(t *testing.T) {
	eng := NewEngine()
	source := `
(terrain :scale 1 :strategy :map)
(place (sphere :at (vec3 0.5 0.5 0.5) :radius 0.3) :max-depth 3)
(mesh :max-depth 3)
`
	m, evalErrs, err := eng.Evaluate(source)
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("unexpected eval errors: %v", evalErrs)
	}
	if m == nil || m.IsEmpty() {
		t.Fatal("map strategy produced no mesh")
	}
}

func TestEvaluateIndexAndNormals(t *testing.T) {
	eng := NewEngine()
	source := `
(place (sphere :at (vec3 0.5 0.5 0.5) :radius 0.3) :max-depth 3)
(mesh :max-depth 3 :index true :normals :vertex)
`
	m, evalErrs, err := eng.Evaluate(source)
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("unexpected eval errors: %v", evalErrs)
	}
	if m == nil {
		t.Fatal("no mesh")
	}
	if m.Indices == nil {
		t.Error("mesh not indexed")
	}
	if m.VertexNormals == nil {
		t.Error("mesh has no vertex normals")
	}
}

func TestEvaluatePlaceThenRemove(t *testing.T) {
	eng := NewEngine()
	source := `
(def ball (sphere :at (vec3 0.5 0.5 0.5) :radius 0.3))
(place ball :max-depth 3)
(remove ball :max-depth 3)
(mesh :max-depth 3)
`
	m, evalErrs, err := eng.Evaluate(source)
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("unexpected eval errors: %v", evalErrs)
	}
	if m == nil {
		t.Fatal("no mesh")
	}
	if !m.IsEmpty() {
		t.Errorf("place-then-remove left %d triangles", m.TriangleCount())
	}
}

func TestEvaluateSyntaxError(t *testing.T) {
	eng := NewEngine()
	_, evalErrs, err := eng.Evaluate("(place (sphere")
	if err != nil {
		t.Fatalf("syntax error should be an eval error, got fatal: %v", err)
	}
	if len(evalErrs) == 0 {
		t.Fatal("expected eval errors for unbalanced parens")
	}
}

func TestEvaluateBadArgumentError(t *testing.T) {
	eng := NewEngine()
	_, evalErrs, err := eng.Evaluate(`(place (sphere :radius "huge"))`)
	if err != nil {
		t.Fatalf("argument error should be an eval error, got fatal: %v", err)
	}
	if len(evalErrs) == 0 {
		t.Fatal("expected eval errors for a string radius")
	}
	if !strings.Contains(evalErrs[0].Message, "radius") {
		t.Errorf("error does not name the argument: %v", evalErrs[0])
	}
}

func TestEvaluateUnknownStrategyError(t *testing.T) {
	eng := NewEngine()
	_, evalErrs, err := eng.Evaluate(`(terrain :strategy :linear)`)
	if err != nil {
		t.Fatalf("got fatal error: %v", err)
	}
	if len(evalErrs) == 0 {
		t.Fatal("expected eval errors for an unknown strategy")
	}
}

func TestEvaluateIsolatedBetweenRuns(t *testing.T) {
	eng := NewEngine()

	if _, evalErrs, err := eng.Evaluate("(def x 42)"); err != nil || len(evalErrs) > 0 {
		t.Fatalf("setup eval failed: %v %v", evalErrs, err)
	}
	// A fresh sandbox per evaluation: x must be gone.
	_, evalErrs, err := eng.Evaluate("(+ x 1)")
	if err != nil {
		t.Fatalf("got fatal error: %v", err)
	}
	if len(evalErrs) == 0 {
		t.Error("expected an error referencing an undefined symbol")
	}
}

func TestEvaluateConcurrent(t *testing.T) {
	eng := NewEngine()
	source := `
(place (sphere :at (vec3 0.5 0.5 0.5) :radius 0.3) :max-depth 2)
(mesh :max-depth 2)
`
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Results may be superseded by newer generations; the only
			// requirement is no panic and no corrupted state.
			eng.Evaluate(source)
		}()
	}
	wg.Wait()
}

func TestEvalErrorFormat(t *testing.T) {
	withLine := EvalError{Line: 3, Message: "boom"}
	if withLine.Error() != "line 3: boom" {
		t.Errorf("Error() = %q", withLine.Error())
	}
	bare := EvalError{Message: "boom"}
	if bare.Error() != "boom" {
		t.Errorf("Error() = %q", bare.Error())
	}
}
