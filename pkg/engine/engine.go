// Package engine provides the Lisp sculpt-script engine. It wraps
// zygomys in a sandboxed environment: a script builds tools, applies
// them to a density field, and extracts a mesh, which Evaluate returns
// to the caller.
package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/voxground/voxground/pkg/mesh"
)

// EvalError represents a non-fatal error encountered during
// evaluation, such as a parse error or a runtime error in user code.
type EvalError struct {
	Line    int
	Message string
}

func (e EvalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// Engine wraps the zygomys interpreter for sculpt scripts. It is safe
// for concurrent use; each call to Evaluate creates a fresh sandboxed
// environment for determinism.
type Engine struct {
	mu         sync.Mutex
	generation uint64
}

// NewEngine creates a new Engine instance.
func NewEngine() *Engine {
	return &Engine{}
}

// Evaluate runs a sculpt script and returns the mesh it produced (nil
// when the script never calls mesh).
//
// Return semantics:
//   - On success: mesh (possibly nil) + nil errors + nil error
//   - On parse/eval failure: nil + eval errors + nil error
//   - On fatal failure (timeout, panic): nil + nil + error
func (e *Engine) Evaluate(source string) (*mesh.Mesh, []EvalError, error) {
	e.mu.Lock()
	e.generation++
	gen := e.generation
	e.mu.Unlock()

	ch := make(chan evalResult, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- evalResult{err: fmt.Errorf("panic during evaluation: %v", r)}
			}
		}()

		m, evalErrs, err := e.evaluate(source)
		ch <- evalResult{mesh: m, errors: evalErrs, err: err}
	}()

	return waitWithTimeout(ch, gen, &e.mu, &e.generation)
}

// evaluate performs the actual zygomys evaluation in a fresh sandbox.
func (e *Engine) evaluate(source string) (*mesh.Mesh, []EvalError, error) {
	// An empty script is a valid program that produces no mesh.
	if strings.TrimSpace(source) == "" {
		return nil, nil, nil
	}

	// Sandbox mode prevents user code from reaching the filesystem or
	// syscalls; the sculpt builtins are the only effectful surface.
	env := zygo.NewZlispSandbox()
	defer env.Stop()

	session := newSession()
	registerBuiltins(env, session)

	if err := env.LoadString(preprocessSource(source)); err != nil {
		return nil, parseZygomysError(err), nil
	}
	if _, err := env.Run(); err != nil {
		return nil, parseZygomysError(err), nil
	}

	return session.mesh, nil, nil
}

// linePattern matches zygomys error messages that include
// "Error on line N: ...".
var linePattern = regexp.MustCompile(`(?i)(?:error )?on line (\d+):\s*(.*)`)

// linePatternShort matches simpler "line N: ..." patterns.
var linePatternShort = regexp.MustCompile(`(?i)^line (\d+):\s*(.*)`)

// parseZygomysError converts a zygomys error into an EvalError,
// extracting line information where the message carries it.
func parseZygomysError(err error) []EvalError {
	msg := err.Error()

	if m := linePattern.FindStringSubmatch(msg); m != nil {
		line, _ := strconv.Atoi(m[1])
		return []EvalError{{Line: line, Message: strings.TrimSpace(m[2])}}
	}
	if m := linePatternShort.FindStringSubmatch(msg); m != nil {
		line, _ := strconv.Atoi(m[1])
		return []EvalError{{Line: line, Message: strings.TrimSpace(m[2])}}
	}
	return []EvalError{{Message: strings.TrimSpace(msg)}}
}
