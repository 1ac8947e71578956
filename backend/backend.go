package backend

import "errors"

// Domain errors for backend selection.
var (
	// ErrUnselected indicates that no backend has been selected yet.
	ErrUnselected = errors.New("backend: no backend selected")

	// ErrUnsupported indicates an unrecognized backend name.
	ErrUnsupported = errors.New("backend: unsupported backend")
)

// Vector is an opaque one-dimensional array owned by a backend. Values
// from different backends must not be mixed; the operations in [Ops]
// panic on foreign vectors.
type Vector interface {
	Len() int
}

// Ops is the capability contract every substrate implements. It covers
// exactly the operations the problem catalog needs: construction,
// elementwise arithmetic, transcendentals, concatenation and splitting,
// a matrix-vector primitive, and reductions.
//
// Binary operations broadcast a length-1 operand against the other
// operand, and otherwise require equal lengths.
type Ops interface {
	// Name reports the backend identifier ("dense" or "dual").
	Name() string

	// Construction.
	FromSlice(vals []float64) Vector
	Zeros(n int) Vector
	Ones(n int) Vector
	Linspace(lo, hi float64, n int) Vector

	// Indexing and shape.
	At(v Vector, i int) Vector      // length-1 copy of element i
	Slice(v Vector, i, j int) Vector
	Concat(vs ...Vector) Vector
	Split2(v Vector) (Vector, Vector) // two halves; v must have even length

	// Elementwise arithmetic.
	Add(a, b Vector) Vector
	Sub(a, b Vector) Vector
	Mul(a, b Vector) Vector
	Div(a, b Vector) Vector
	Scale(c float64, v Vector) Vector
	Shift(c float64, v Vector) Vector
	Neg(v Vector) Vector
	Pow(v Vector, p float64) Vector

	// Transcendentals.
	Sin(v Vector) Vector
	Cos(v Vector) Vector
	Exp(v Vector) Vector
	Sqrt(v Vector) Vector
	Tanh(v Vector) Vector

	// Structure.
	Roll(v Vector, shift int) Vector // result[i] = v[(i-shift) mod n]
	MatVec(a [][]float64, v Vector) Vector

	// Reductions (length-1 results).
	Sum(v Vector) Vector
	Mean(v Vector) Vector
	Norm(v Vector) Vector // Euclidean norm

	// ToSlice copies the vector's values out of the backend. For the
	// dual backend the derivative parts are discarded.
	ToSlice(v Vector) []float64
}

// broadcast resolves the common length of a binary operation and index
// functions for each operand. It panics on incompatible lengths, which
// signals a malformed vector field rather than a recoverable condition.
func broadcastLen(na, nb int) int {
	switch {
	case na == nb:
		return na
	case na == 1:
		return nb
	case nb == 1:
		return na
	}
	panic("backend: length mismatch in elementwise operation")
}

func bcastIdx(n int) func(int) int {
	if n == 1 {
		return func(int) int { return 0 }
	}
	return func(i int) int { return i }
}
