package measure

// Value is the unit-aware measurement published to observers.
// Constructed fresh on every notification, never mutated after creation.
type Value struct {
	// Amount is the numeric value in Unit
	Amount float64

	// Unit is the display label of the unit Amount is expressed in
	Unit string

	// Primary reports whether Amount is in the primary unit of the pair
	Primary bool
}
