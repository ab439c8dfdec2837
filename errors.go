package searchtable

// UnknownVariant - Custom error to inform that a variant identifier doesn't name any search table
type UnknownVariant struct {
	msg string
}

// Error - Used to notify that the variant is unknown
func (E UnknownVariant) Error() string {
	if E.msg == "" {
		return "unknown variant"
	}
	return E.msg
}
