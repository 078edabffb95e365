// Package history keeps a linear undo/redo history of whole-buffer snapshots.
package history

// Stack holds two sequences of text snapshots, most recent last.
// The zero value is an empty history ready to use.
type Stack struct {
	undo []string
	redo []string
}

// New returns an empty Stack.
func New() *Stack { return &Stack{} }

// Record pushes the text as it was before an edit and drops any redo entries.
func (s *Stack) Record(previous string) {
	s.undo = append(s.undo, previous)
	s.redo = nil
}

// Undo pops the most recent snapshot and parks current on the redo side.
// It reports false when there is nothing to undo.
func (s *Stack) Undo(current string) (string, bool) {
	n := len(s.undo)
	if n == 0 {
		return "", false
	}
	prev := s.undo[n-1]
	s.undo = s.undo[:n-1]
	s.redo = append(s.redo, current)
	return prev, true
}

// Redo is the inverse of Undo.
func (s *Stack) Redo(current string) (string, bool) {
	n := len(s.redo)
	if n == 0 {
		return "", false
	}
	next := s.redo[n-1]
	s.redo = s.redo[:n-1]
	s.undo = append(s.undo, current)
	return next, true
}

// Reset clears both sequences.
func (s *Stack) Reset() {
	s.undo = nil
	s.redo = nil
}

func (s *Stack) CanUndo() bool { return len(s.undo) > 0 }
func (s *Stack) CanRedo() bool { return len(s.redo) > 0 }

// Len returns the number of undo and redo entries.
func (s *Stack) Len() (undo, redo int) { return len(s.undo), len(s.redo) }
