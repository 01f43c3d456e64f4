package Trees

// Tree represents an ordered container that keeps every inserted copy of a
// value. Copies of one value are never merged: Insert always adds one element
// and Delete always removes at most one.
// Delete reports whether v was found; a missing value is not an error and
// leaves the Tree unchanged.
// The Tree offers no iteration. Callers needing traversal should keep their
// own index.
// Implementations aren't safe for concurrent use, callers must serialize
// access to one instance.
type Tree[T any] interface {
	//Insert one copy of v to the Tree. It never fails.
	Insert(v T)
	//Delete one copy of v from the Tree. Returning true if a copy was removed,
	//false if v isn't in the Tree.
	Delete(v T) bool
	//Has at least one copy of v.
	Has(v T) bool
	//Count the copies of v in the Tree.
	Count(v T) uint
	//Size of the tree, counting every copy.
	Size() uint
	//Clear the tree.
	Clear()
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the ordering or the chaining of copies.
	Corrupt() bool
}
