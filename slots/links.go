package slots

// Links reads and writes the free-list link held in a slot's leading byte.
// Link is only called on slots that are free and below the frontier.
type Links interface {
	Link(i uint8) uint8
	SetLink(i, next uint8)
}

// Table is a side table of links, one byte per slot. Its zero value is ready
// to use and it never allocates.
type Table [MaxCapacity]uint8

// Link returns the link stored for slot i.
func (t *Table) Link(i uint8) uint8 { return t[i] }

// SetLink stores next as the link for slot i.
func (t *Table) SetLink(i, next uint8) { t[i] = next }

var _ Links = (*Table)(nil)
