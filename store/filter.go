package store

// FilterOp selects how a filter value is compared against a record field.
type FilterOp int

const (
	// OpEquals matches when the field equals the value exactly.
	OpEquals FilterOp = iota
	// OpInArray matches when the value is a member of an array-typed field.
	OpInArray
)

// Filter selects records by a single field. Key refers to the field's wire
// name (its json tag), so callers use the same vocabulary the API exposes.
type Filter struct {
	Key   string
	Value string
	Op    FilterOp
}

// Eq builds an exact-match filter on a scalar field.
func Eq(key, value string) Filter {
	return Filter{Key: key, Value: value, Op: OpEquals}
}

// InArray builds a membership filter on an array-typed field.
func InArray(key, value string) Filter {
	return Filter{Key: key, Value: value, Op: OpInArray}
}
