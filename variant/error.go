package variant

// TableFull - Custom error to inform that a fixed capacity table has no slot left for a new key
type TableFull struct {
	msg string
}

// Error - Used to notify that the table is full
func (T TableFull) Error() string {
	if T.msg == "" {
		return "table full"
	}
	return T.msg
}

// UnsupportedPolicy - Custom error to inform that a duplicate policy can't be used with a variant
type UnsupportedPolicy struct {
	msg string
}

// Error - Used to notify that the duplicate policy is not supported
func (U UnsupportedPolicy) Error() string {
	if U.msg == "" {
		return "duplicate policy not supported by variant"
	}
	return U.msg
}
