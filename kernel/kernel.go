package kernel

// Group is the additive capability set of a numeric kernel.
// Implementations must be pure: every operation returns a new value and
// never mutates its receiver.
type Group[N any] interface {
	// Add returns the sum of the receiver and n.
	Add(n N) N
	// Sub returns the receiver minus n.
	Sub(n N) N
	// Neg returns the receiver with its sign flipped.
	Neg() N
}

// Field is the multiplicative capability set of a numeric kernel.
// Division by zero is not guarded at this layer; it yields whatever the
// underlying representation does (infinity or NaN for floating point,
// a runtime panic for integer-backed kernels).
type Field[N any] interface {
	// Mul returns the product of the receiver and n.
	Mul(n N) N
	// Div returns the receiver divided by n.
	Div(n N) N
}

// Number is the full kernel contract a quantity's magnitude type must
// satisfy. FromFloat exists so that generic code can materialise
// conversion factors and scale factors from untyped decimal literals
// without knowing the concrete kernel.
type Number[N any] interface {
	Group[N]
	Field[N]
	// FromFloat converts a float64 literal into a kernel value.
	// The receiver is only used for dispatch; its value is ignored.
	FromFloat(v float64) N
}
