package dat

// DAT is a frozen double-array trie over symbol-table keys.
//   - Nodes/states are indices into Base/Check (0 is unused; Root is typically 1).
//   - Transition: t := Base[s] + c; valid if Check[t] == s; next state is t.
//   - c is a dense alphabet ID in [1..Sigma]. c==0 means "not in alphabet".
//
// Values:
//   - If Value[s] != 0, state s terminates a key. Value[s]-1 is the index of
//     the key's replacement string in the owning table.
//
// Mapping:
//   - Runes maps BMP code points (0..65535) to dense alphabet IDs.
//     0 means "not part of the key alphabet".
type DAT struct {
	// Root state index (commonly 1).
	Root uint32

	// Sigma is the size of the dense alphabet (maximum dense ID).
	Sigma uint16

	// Base and Check are the classic double-array.
	Base  []int32 // len == N
	Check []int32 // len == N

	// Value holds value index + 1 for terminal states, 0 otherwise.
	Value []int32 // len == N

	// Runes maps BMP code points to dense IDs [0..Sigma].
	Runes PagedMapBMP
}

// NStates returns number of allocated slots/states in the arrays.
func (d *DAT) NStates() int { return len(d.Base) }

// Transition returns (nextState, ok). dense must be in [1..Sigma].
func (d *DAT) Transition(state uint32, dense uint16) (uint32, bool) {
	if dense == 0 || int(state) >= len(d.Base) || int(state) >= len(d.Check) {
		return 0, false
	}
	t := d.Base[state] + int32(dense)
	if t <= 0 || int(t) >= len(d.Check) {
		return 0, false
	}
	if d.Check[t] != int32(state) {
		return 0, false
	}
	return uint32(t), true
}

// Terminal returns the value index stored at state, if state ends a key.
func (d *DAT) Terminal(state uint32) (int, bool) {
	if int(state) >= len(d.Value) || d.Value[state] == 0 {
		return -1, false
	}
	return int(d.Value[state]) - 1, true
}

// Dense maps a rune to a dense alphabet ID.
// Returns 0 if the rune is outside the BMP or not in the alphabet.
func (d *DAT) Dense(r rune) uint16 {
	if r < 0 || r > 0xFFFF {
		return 0
	}
	return d.Runes.Dense(uint16(r))
}
