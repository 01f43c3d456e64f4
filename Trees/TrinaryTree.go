package Trees

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// TrinaryTree is an unbalanced binary search tree that keeps repeated values.
// Besides the left and right children, every node has a middle link. Copies
// of a value already in the tree are appended to the middle chain of the
// node that first received it, so the chain lists the copies oldest first.
// T is the type of values it will hold, S is the type of the handles used to
// address nodes. S must be wide enough for the largest number of nodes ever
// allocated at once; Insert panics with HandleOverflowError otherwise.
// Values are ordered with cmp.Compare, so NaN is a valid key that sorts before
// every other float.
// No balancing is done, the height D depends on the insertion order and is
// O(n) in the worst case. All methods are iterative.
type TrinaryTree[T cmp.Ordered, S constraints.Unsigned] struct {
	base[T, S]
}

// New returns an empty TrinaryTree with room for hint nodes.
func New[T cmp.Ordered, S constraints.Unsigned](hint S) *TrinaryTree[T, S] {
	return &TrinaryTree[T, S]{makeBase[T, S](hint)}
}

// Insert [Tree.Insert]. A value equal to one in the tree is added to the end
// of that value's middle chain.
// Time: O(D+k), k is the number of copies of v; Space: O(1)
func (u *TrinaryTree[T, S]) Insert(v T) {
	n := u.alloc(v)
	for cur := &u.root; ; {
		if *cur == 0 {
			*cur = n
			return
		}
		c := &u.ifs[*cur]
		switch cmp.Compare(v, *u.getV(*cur)) {
		case -1:
			cur = &c.l
		case 1:
			cur = &c.r
		default:
			cur = &c.m
		}
	}
}

// Delete [Tree.Delete]. When v has several copies, the last node of its
// middle chain is removed, so the earlier copies keep their nodes.
// Time: O(D+k); Space: O(1)
func (u *TrinaryTree[T, S]) Delete(v T) bool {
	for cur := &u.root; *cur != 0; {
		c := &u.ifs[*cur]
		switch cmp.Compare(v, *u.getV(*cur)) {
		case -1:
			cur = &c.l
		case 1:
			cur = &c.r
		default:
			if c.m == 0 {
				u.remove(cur)
				return true
			}
			cur = &c.m
		}
	}
	return false
}

// remove the node whose handle is stored at slot. slot is the parent's link
// (or the root), it's rewritten to keep the tree connected.
func (u *TrinaryTree[T, S]) remove(slot *S) {
	if c := u.ifs[*slot]; c.l == 0 && c.r == 0 {
		u.removeLeaf(slot)
	} else if c.l != 0 && c.r != 0 {
		u.removeTwo(slot)
	} else {
		u.removeSingle(slot)
	}
}

func (u *TrinaryTree[T, S]) removeLeaf(slot *S) {
	a := *slot
	*slot = 0
	u.release(a)
}

// removeSingle replaces the node with its only child, whose subtree is left untouched.
func (u *TrinaryTree[T, S]) removeSingle(slot *S) {
	a := *slot
	if c := u.ifs[a]; c.l == 0 {
		*slot = c.r
	} else {
		*slot = c.l
	}
	u.release(a)
}

// removeTwo keeps the node in place and removes another node instead.
// If the node heads a chain, the chain gets one shorter. Otherwise the node
// takes over the value and the copies of its in-order predecessor, and the
// predecessor, which has no right child, is removed.
func (u *TrinaryTree[T, S]) removeTwo(slot *S) {
	c := &u.ifs[*slot]
	if c.m != 0 {
		*u.getV(*slot) = *u.getV(c.m)
		last := &c.m
		for u.ifs[*last].m != 0 {
			last = &u.ifs[*last].m
		}
		u.remove(last)
		return
	}
	p := u.rightmost(&c.l)
	*u.getV(*slot) = *u.getV(*p)
	c.m, u.ifs[*p].m = u.ifs[*p].m, 0
	u.remove(p)
}

// rightmost returns the link holding the node with the greatest value in the
// subtree at slot. The subtree must not be empty.
// Time: O(D); Space: O(1)
func (u *TrinaryTree[T, S]) rightmost(slot *S) *S {
	for u.ifs[*slot].r != 0 {
		slot = &u.ifs[*slot].r
	}
	return slot
}

// find the handle of the first copy of v, 0 if v isn't in the tree.
func (u *TrinaryTree[T, S]) find(v T) S {
	for curI := u.root; curI != 0; {
		switch cmp.Compare(v, *u.getV(curI)) {
		case -1:
			curI = u.ifs[curI].l
		case 1:
			curI = u.ifs[curI].r
		default:
			return curI
		}
	}
	return 0
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *TrinaryTree[T, S]) Has(v T) bool {
	return u.find(v) != 0
}

// Count [Tree.Count]
// Time: O(D+k); Space: O(1)
func (u *TrinaryTree[T, S]) Count(v T) (k uint) {
	for curI := u.find(v); curI != 0; curI = u.ifs[curI].m {
		k++
	}
	return
}

// Corrupt [Tree.Corrupt]. Besides the ordering, it checks that chains only
// hold copies of their head's value, that chain nodes have no children, that
// no node is reachable twice, and that Size matches the reachable nodes.
// Time: O(n); Space: O(n)
func (u *TrinaryTree[T, S]) Corrupt() bool {
	type frame struct {
		i, lo, hi S // lo and hi are the handles of the bounding ancestors, 0 for unbounded.
	}
	seen := makeBitArray(len(u.ifs))
	visit := func(i S) bool {
		if uint(i) >= uint(len(u.ifs)) || seen.Get(int(i)) {
			return false
		}
		seen.Up(int(i))
		return true
	}
	var n S
	for st := []frame{{u.root, 0, 0}}; len(st) > 0; {
		f := st[len(st)-1]
		st = st[:len(st)-1]
		if f.i == 0 {
			continue
		}
		if !visit(f.i) {
			return true
		}
		n++
		v := *u.getV(f.i)
		if f.lo != 0 && cmp.Compare(*u.getV(f.lo), v) >= 0 || f.hi != 0 && cmp.Compare(v, *u.getV(f.hi)) >= 0 {
			return true
		}
		c := u.ifs[f.i]
		for m := c.m; m != 0; m = u.ifs[m].m {
			if !visit(m) {
				return true
			}
			n++
			if mc := u.ifs[m]; mc.l != 0 || mc.r != 0 || cmp.Compare(*u.getV(m), v) != 0 {
				return true
			}
		}
		st = append(st, frame{c.l, f.lo, f.i}, frame{c.r, f.i, f.hi})
	}
	return n != u.sz
}
