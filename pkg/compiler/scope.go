package compiler

import "glox/pkg/scanner"

// maxLocals is the hard limit on live locals: slot operands are a
// single byte.
const maxLocals = 256

// uninitializedDepth marks a local that is declared but whose
// initializer has not finished compiling, closing the self-reference
// window between `var a =` and the `;`.
const uninitializedDepth = -1

// local is a declared local variable. Its position in the locals array
// IS its runtime stack slot; no separate mapping exists.
type local struct {
	name  scanner.Token
	depth int
}

type resolution int

const (
	localNotFound resolution = iota
	localUninitialized
	localFound
)

// scopeTracker maps lexical scopes onto runtime stack slots at compile
// time. Depth moves only at block boundaries.
type scopeTracker struct {
	locals [maxLocals]local
	count  int
	depth  int
}

func (s *scopeTracker) begin() {
	s.depth++
}

func (s *scopeTracker) end() {
	s.depth--
}

// discard drops locals left above the current depth, calling fn once
// per dropped local so the caller can emit the matching pop.
func (s *scopeTracker) discard(fn func()) {
	for s.count > 0 && s.locals[s.count-1].depth > s.depth {
		fn()
		s.count--
	}
}

// add declares a new local in the uninitialized state. It reports
// false when no slots remain.
func (s *scopeTracker) add(tok scanner.Token) bool {
	if s.count == maxLocals {
		return false
	}

	s.locals[s.count] = local{name: tok, depth: uninitializedDepth}
	s.count++
	return true
}

// markInitialized closes the declare/initialize window of the most
// recently added local.
func (s *scopeTracker) markInitialized() {
	s.locals[s.count-1].depth = s.depth
}

// declaredInScope reports whether name already exists in the current
// scope. Outer scopes are not consulted: shadowing is legal.
func (s *scopeTracker) declaredInScope(name string) bool {
	for i := s.count - 1; i >= 0; i-- {
		l := s.locals[i]
		if l.depth != uninitializedDepth && l.depth < s.depth {
			break
		}
		if l.name.Lexeme == name {
			return true
		}
	}
	return false
}

// resolve searches locals innermost-to-outermost for name. The three
// states are consumed exhaustively by the caller: not found means the
// name resolves as a global.
func (s *scopeTracker) resolve(name string) (int, resolution) {
	for i := s.count - 1; i >= 0; i-- {
		if s.locals[i].name.Lexeme == name {
			if s.locals[i].depth == uninitializedDepth {
				return 0, localUninitialized
			}
			return i, localFound
		}
	}
	return 0, localNotFound
}
