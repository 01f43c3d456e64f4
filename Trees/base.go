package Trees

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// HandleOverflowError is raised when a tree needs more nodes than its handle
// type S can address.
type HandleOverflowError struct {
	Nodes int
}

func (e HandleOverflowError) Error() string {
	return fmt.Sprintf("%d nodes can't be addressed by the handle type", e.Nodes)
}

// base is the node arena shared by the array backed trees. Nodes are
// addressed by handles of type S instead of pointers, so links can't dangle
// and removing a node is clearing a handle plus returning the slot.
type base[T any, S constraints.Unsigned] struct {
	root, free, sz S         // free is the beginning of the linked list that contains all the free handles; info[S]::l represents next.
	ifs            []info[S] // ifs[0] is the zero loopback and is never written.
	vs             []T       // vs[i-1] corresponds to ifs[i].
}

func makeBase[T any, S constraints.Unsigned](hint S) base[T, S] {
	return base[T, S]{ifs: make([]info[S], 1, int(hint)+1), vs: make([]T, 0, hint)}
}

func (u *base[T, S]) getV(i S) *T {
	return &u.vs[i-1]
}

// addFree handle once.
func (u *base[T, S]) addFree(a S) {
	u.ifs[a] = info[S]{l: u.free}
	u.free = a
}

// popFree handle once. Returns 0 when there's no free handle(when u.free==0).
func (u *base[T, S]) popFree() S {
	b := u.free
	u.free = u.ifs[u.free].l
	return b
}

// alloc a detached node holding v. Released handles are reused first, so
// alloc only grows the arena when the free list is empty. Growing may move
// ifs, any pointer into it taken before alloc is stale afterwards.
// Time: amortized O(1)
func (u *base[T, S]) alloc(v T) (i S) {
	if u.free != 0 {
		i = u.popFree()
		u.ifs[i] = info[S]{}
		*u.getV(i) = v
	} else {
		if n := len(u.ifs); int(S(n)) != n {
			panic(HandleOverflowError{n})
		}
		u.ifs = append(u.ifs, info[S]{})
		u.vs = append(u.vs, v)
		i = S(len(u.vs))
	}
	u.sz++
	return
}

// release the node at handle a. The node must already be unlinked.
func (u *base[T, S]) release(a S) {
	*u.getV(a) = *new(T)
	u.addFree(a)
	u.sz--
}

// Size [Tree.Size]
// Time: O(1); Space: O(1)
func (u *base[T, S]) Size() uint {
	return uint(u.sz)
}

// Clear [Tree.Clear]. Keeps the allocated arrays for reuse.
// Time: O(n)
func (u *base[T, S]) Clear() {
	clear(u.vs)
	u.ifs, u.vs = u.ifs[:1], u.vs[:0]
	u.root, u.free, u.sz = 0, 0, 0
}
