package numeric

// Kind names one member of the closed set of numeric types the
// calculator supports. Each Evaluator is bound to exactly one Kind for
// its whole lifetime.
type Kind string

const (
	Int16   Kind = "int16"
	Int32   Kind = "int32"
	Int64   Kind = "int64"
	Uint16  Kind = "uint16"
	Uint32  Kind = "uint32"
	Uint64  Kind = "uint64"
	Float32 Kind = "float32"
	Float64 Kind = "float64"
	Decimal Kind = "decimal"
)

func (k Kind) String() string {
	return string(k)
}

// Kinds returns the supported kinds in a stable order.
func Kinds() []Kind {
	return []Kind{
		Int16, Int32, Int64,
		Uint16, Uint32, Uint64,
		Float32, Float64,
		Decimal,
	}
}
