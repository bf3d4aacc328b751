package models

// Kind identifies the variant of a JSON value.
type Kind int

const (
	NullKind Kind = iota
	BoolKind
	NumberKind
	StringKind
	ArrayKind
	ObjectKind
)

var kindNames = [...]string{"null", "boolean", "number", "string", "array", "object"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "invalid"
	}
	return kindNames[k]
}

// Value is a parsed JSON value. The concrete types are Null, Bool, Number,
// String, Array and Object.
type Value interface {
	Kind() Kind
}

// Null is the JSON null constant.
type Null struct{}

// Bool is a JSON boolean.
type Bool bool

// Number is a JSON number. Numbers are held as IEEE-754 doubles.
type Number float64

// String is a JSON string, unescaped.
type String string

// Array is an ordered sequence of values.
type Array []Value

// Object is an ordered collection of members with unique keys.
// Member order is the order in which keys first appeared in the source.
type Object []Member

// Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

func (Null) Kind() Kind   { return NullKind }
func (Bool) Kind() Kind   { return BoolKind }
func (Number) Kind() Kind { return NumberKind }
func (String) Kind() Kind { return StringKind }
func (Array) Kind() Kind  { return ArrayKind }
func (Object) Kind() Kind { return ObjectKind }

// Get returns the value stored under key, if any.
func (o Object) Get(key string) (Value, bool) {
	for _, m := range o {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// Keys returns the member keys in order.
func (o Object) Keys() []string {
	keys := make([]string, len(o))
	for i, m := range o {
		keys[i] = m.Key
	}
	return keys
}
