package buffer

// Flags is a bitmask of buffer attributes.
type Flags uint8

// Recognized flag bits (§6).
const (
	FlagNone   Flags = 0
	FlagFile   Flags = 1 << 0
	FlagNew    Flags = 1 << 1
	FlagFifo   Flags = 1 << 2
	FlagNoUndo Flags = 1 << 3
)

// Has reports whether all bits of other are set in f.
func (f Flags) Has(other Flags) bool { return f&other == other }

// Set returns f with other's bits set.
func (f Flags) Set(other Flags) Flags { return f | other }

// Clear returns f with other's bits cleared.
func (f Flags) Clear(other Flags) Flags { return f &^ other }
