package hash

// LinearProbing - Linear probing sequence over a fixed size table. The home slot is the hash value modulo
// the table size and each following probe steps one slot forward, wrapping around at the end of the table.
type LinearProbing struct {
	tableSize int
}

// NewLinearProbing - Returns a pointer to a new LinearProbing instance
func NewLinearProbing(tableSize int) *LinearProbing {
	return &LinearProbing{tableSize: tableSize}
}

// GetTableSize - Returns the table size the probing sequence is covering
func (L *LinearProbing) GetTableSize() int {
	return L.tableSize
}

// HomeSlot - Reduces a hash value to the slot where probing starts
func (L *LinearProbing) HomeSlot(hashValue uint64) int {
	return int(hashValue % uint64(L.tableSize))
}

// ProbeIteration - Implements Linear Probing, iteration 0 is the home slot itself.
// Iterations 0 to table size - 1 visit every slot exactly once.
func (L *LinearProbing) ProbeIteration(homeSlot, iteration int) int {
	probe := homeSlot + iteration%L.tableSize
	if probe >= L.tableSize {
		probe -= L.tableSize
	}

	return probe
}

// Distance - Returns how many steps a slot is away from a home slot following the probe sequence
func (L *LinearProbing) Distance(homeSlot, slot int) int {
	d := slot - homeSlot
	if d < 0 {
		d += L.tableSize
	}

	return d
}
