package translit

import (
	"errors"
	"fmt"
	"sort"

	"github.com/npillmayer/translit/dat"
)

var errFrozen = errors.New("symbol index is frozen")

type datBuildNode struct {
	state    uint32
	value    int32 // value index + 1, 0 for inner nodes
	children map[uint16]*datBuildNode
}

type datBackend struct {
	frozen      bool
	root        *datBuildNode
	keys        int
	runeToDense map[rune]uint16
	nextDenseID uint16
	compiled    *dat.DAT
}

func newDATBackend() *datBackend {
	return &datBackend{
		root:        &datBuildNode{children: make(map[uint16]*datBuildNode)},
		runeToDense: make(map[rune]uint16),
		compiled: &dat.DAT{
			Root: 1,
		},
	}
}

func (db *datBackend) encodeKey(key []rune) ([]uint16, error) {
	enc := make([]uint16, 0, len(key))
	for _, r := range key {
		if r < 0 || r > 0xFFFF {
			return nil, fmt.Errorf("rune %U outside the basic multilingual plane", r)
		}
		dense, ok := db.runeToDense[r]
		if !ok {
			if db.nextDenseID == ^uint16(0) {
				return nil, errors.New("key alphabet exhausted")
			}
			db.nextDenseID++
			dense = db.nextDenseID
			db.runeToDense[r] = dense
			db.compiled.Runes.Set(uint16(r), dense)
		}
		enc = append(enc, dense)
	}
	return enc, nil
}

func (db *datBackend) Insert(key []rune, value int) error {
	if db.frozen {
		return errFrozen
	}
	if len(key) == 0 {
		return errors.New("empty key")
	}
	enc, err := db.encodeKey(key)
	if err != nil {
		return err
	}
	n := db.root
	for _, c := range enc {
		child := n.children[c]
		if child == nil {
			child = &datBuildNode{children: make(map[uint16]*datBuildNode)}
			n.children[c] = child
		}
		n = child
	}
	if n.value == 0 {
		db.keys++
	}
	n.value = int32(value) + 1
	return nil
}

// Freeze lays out the build trie breadth-first into the double array.
func (db *datBackend) Freeze() {
	if db.frozen {
		return
	}
	d := db.compiled
	d.Sigma = db.nextDenseID
	d.Base = make([]int32, int(d.Root)+1)
	d.Check = make([]int32, int(d.Root)+1)
	d.Value = make([]int32, int(d.Root)+1)
	db.root.state = d.Root
	queue := []*datBuildNode{db.root}
	for q := 0; q < len(queue); q++ {
		n := queue[q]
		if len(n.children) == 0 {
			continue
		}
		labels := sortedLabels(n.children)
		base := findDATBase(d.Check, int(d.Root), labels)
		ensureDATIndex(d, base+int(labels[len(labels)-1]))
		d.Base[n.state] = int32(base)
		for _, label := range labels {
			t := base + int(label)
			child := n.children[label]
			child.state = uint32(t)
			d.Check[t] = int32(n.state)
			d.Value[t] = child.value
			queue = append(queue, child)
		}
	}
	db.root = nil
	db.runeToDense = nil
	db.frozen = true
}

func (db *datBackend) Iterator() symbolIterator {
	if db.frozen {
		return &datIterator{
			d:     db.compiled,
			state: db.compiled.Root,
		}
	}
	return &datBuildIterator{
		db:   db,
		node: db.root,
	}
}

type datBuildIterator struct {
	db   *datBackend
	node *datBuildNode
	dead bool
}

func (it *datBuildIterator) Next(r rune) (int, bool) {
	if it.dead || it.node == nil {
		return -1, false
	}
	dense, ok := it.db.runeToDense[r]
	if !ok {
		it.dead = true
		return -1, false
	}
	next := it.node.children[dense]
	if next == nil {
		it.dead = true
		return -1, false
	}
	it.node = next
	return int(next.value) - 1, true
}

type datIterator struct {
	d     *dat.DAT
	state uint32
	dead  bool
}

func (it *datIterator) Next(r rune) (int, bool) {
	if it.dead || it.d == nil {
		return -1, false
	}
	next, ok := it.d.Transition(it.state, it.d.Dense(r))
	if !ok {
		it.dead = true
		return -1, false
	}
	it.state = next
	v, _ := it.d.Terminal(next)
	return v, true
}

func sortedLabels(children map[uint16]*datBuildNode) []uint16 {
	labels := make([]uint16, 0, len(children))
	for label := range children {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		return labels[i] < labels[j]
	})
	return labels
}

// findDATBase returns the smallest base where every labelled slot is free.
// The root slot never counts as free, even though its check entry is 0.
func findDATBase(check []int32, root int, labels []uint16) int {
	for base := 1; ; base++ {
		ok := true
		for _, label := range labels {
			t := base + int(label)
			if t == root || (t < len(check) && check[t] != 0) {
				ok = false
				break
			}
		}
		if ok {
			return base
		}
	}
}

func ensureDATIndex(d *dat.DAT, idx int) {
	if idx < len(d.Base) {
		return
	}
	grow := idx + 1 - len(d.Base)
	d.Base = append(d.Base, make([]int32, grow)...)
	d.Check = append(d.Check, make([]int32, grow)...)
	d.Value = append(d.Value, make([]int32, grow)...)
}

func (db *datBackend) String() string {
	return fmt.Sprintf("DAT(states=%d,sigma=%d,frozen=%v)", db.compiled.NStates(), db.compiled.Sigma, db.frozen)
}

func (db *datBackend) Stats() IndexStats {
	stats := IndexStats{
		Backend:    "dat",
		Keys:       db.keys,
		TotalSlots: db.compiled.NStates(),
		MaxStateID: int(db.compiled.Root),
	}
	if stats.TotalSlots == 0 {
		return stats
	}
	used := 0
	maxID := int(db.compiled.Root)
	for i := range db.compiled.Check {
		if i == int(db.compiled.Root) || db.compiled.Check[i] != 0 {
			used++
			if i > maxID {
				maxID = i
			}
		}
	}
	stats.UsedSlots = used
	stats.MaxStateID = maxID
	return stats
}
