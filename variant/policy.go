package variant

// DuplicatePolicy - Decides what an Insert does when the key is already present in the table
type DuplicatePolicy int

const (
	// Default - Lets the table pick its own default policy, Overwrite for all but OpenHashTable which uses Shadow
	Default DuplicatePolicy = iota
	// Overwrite - The value of the existing entry is replaced
	Overwrite
	// KeepExisting - The insert is silently dropped and the existing value stays untouched
	KeepExisting
	// Shadow - The new entry is stacked in front of the existing one, only supported by OpenHashTable.
	// A Find returns the most recently inserted entry and a Remove removes only that one.
	Shadow
)

// String - Returns the name of the policy
func (D DuplicatePolicy) String() string {
	switch D {
	case Default:
		return "Default"
	case Overwrite:
		return "Overwrite"
	case KeepExisting:
		return "KeepExisting"
	case Shadow:
		return "Shadow"
	}
	return "Unknown"
}

// Resolve - Returns the effective policy for a variant, replacing Default with the variant's own default.
// An error of type UnsupportedPolicy is returned if the variant can't honour the policy.
func Resolve(kind int, policy DuplicatePolicy) (effective DuplicatePolicy, err error) {
	switch policy {
	case Default:
		if kind == OpenHashTable {
			effective = Shadow
		} else {
			effective = Overwrite
		}
	case Overwrite, KeepExisting:
		effective = policy
	case Shadow:
		if kind != OpenHashTable {
			err = UnsupportedPolicy{}
			return
		}
		effective = policy
	default:
		err = UnsupportedPolicy{}
	}

	return
}
