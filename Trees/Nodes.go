package Trees

import "golang.org/x/exp/constraints"

// info holds the links of one node of a TrinaryTree.
// Handle 0 is the absent node. l leads to strictly smaller values, r to
// strictly greater values and m to the next copy of the same value. A node
// reached through m never has l or r.
// Released nodes reuse l as the next entry of the free list.
type info[S constraints.Unsigned] struct {
	l, m, r S
}
