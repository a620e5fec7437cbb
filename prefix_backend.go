package translit

import (
	"errors"

	"github.com/derekparker/trie"
)

// prefixBackend stores keys in a rune-keyed prefix tree. It is slower than
// the DAT backend but has no restriction on the key alphabet.
type prefixBackend struct {
	frozen bool
	keys   int
	tree   *trie.Trie
}

func newPrefixBackend() *prefixBackend {
	return &prefixBackend{tree: trie.New()}
}

func (pb *prefixBackend) Insert(key []rune, value int) error {
	if pb.frozen {
		return errFrozen
	}
	if len(key) == 0 {
		return errors.New("empty key")
	}
	k := string(key)
	if _, found := pb.tree.Find(k); !found {
		pb.keys++
	}
	pb.tree.Add(k, value)
	return nil
}

func (pb *prefixBackend) Freeze() {
	pb.frozen = true
}

func (pb *prefixBackend) Iterator() symbolIterator {
	return &prefixIterator{tree: pb.tree, prefix: make([]rune, 0, 4)}
}

func (pb *prefixBackend) Stats() IndexStats {
	return IndexStats{Backend: "prefix", Keys: pb.keys}
}

type prefixIterator struct {
	tree   *trie.Trie
	prefix []rune
	dead   bool
}

func (it *prefixIterator) Next(r rune) (int, bool) {
	if it.dead {
		return -1, false
	}
	it.prefix = append(it.prefix, r)
	p := string(it.prefix)
	if !it.tree.HasKeysWithPrefix(p) {
		it.dead = true
		return -1, false
	}
	if node, found := it.tree.Find(p); found {
		if v, ok := node.Meta().(int); ok {
			return v, true
		}
	}
	return -1, true
}
