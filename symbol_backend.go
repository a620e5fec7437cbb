package translit

// symbolIterator iterates over successive prefix states for one key.
//
// Next consumes one rune. alive reports whether any key continues with the
// prefix consumed so far; value is the index of the value of a key ending
// exactly here, or -1.
type symbolIterator interface {
	Next(r rune) (value int, alive bool)
}

// IndexStats reports size and density metrics of a table's key index.
type IndexStats struct {
	Backend    string
	Keys       int
	UsedSlots  int
	TotalSlots int
	MaxStateID int
}

// FillRatio is the share of used slots in the index arrays. Backends without
// slot arrays report 0.
func (s IndexStats) FillRatio() float64 {
	if s.TotalSlots == 0 {
		return 0
	}
	return float64(s.UsedSlots) / float64(s.TotalSlots)
}

// symbolIndex is the internal backend abstraction for key storage.
type symbolIndex interface {
	Insert(key []rune, value int) error
	Freeze()
	Iterator() symbolIterator
	Stats() IndexStats
}
