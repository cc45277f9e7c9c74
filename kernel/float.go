package kernel

// Float64 is the IEEE 754 double-precision kernel.
type Float64 float64

// Add returns a + b.
func (a Float64) Add(b Float64) Float64 { return a + b }

// Sub returns a - b.
func (a Float64) Sub(b Float64) Float64 { return a - b }

// Neg returns -a.
func (a Float64) Neg() Float64 { return -a }

// Mul returns a * b.
func (a Float64) Mul(b Float64) Float64 { return a * b }

// Div returns a / b. Dividing by zero yields ±Inf or NaN per IEEE 754.
func (a Float64) Div(b Float64) Float64 { return a / b }

// FromFloat converts a float64 literal into a Float64.
func (Float64) FromFloat(v float64) Float64 { return Float64(v) }

// Float32 is the IEEE 754 single-precision kernel.
type Float32 float32

// Add returns a + b.
func (a Float32) Add(b Float32) Float32 { return a + b }

// Sub returns a - b.
func (a Float32) Sub(b Float32) Float32 { return a - b }

// Neg returns -a.
func (a Float32) Neg() Float32 { return -a }

// Mul returns a * b.
func (a Float32) Mul(b Float32) Float32 { return a * b }

// Div returns a / b. Dividing by zero yields ±Inf or NaN per IEEE 754.
func (a Float32) Div(b Float32) Float32 { return a / b }

// FromFloat converts a float64 literal into a Float32.
// Values outside float32 range round to ±Inf.
func (Float32) FromFloat(v float64) Float32 { return Float32(v) }
