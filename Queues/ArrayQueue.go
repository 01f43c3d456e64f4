package Queues

// ArrayQueue is a Queue backed by a circular slice that doubles when full.
type ArrayQueue[T any] struct {
	sz, head uint
	content  []T
}

// MakeArrayQueue with room for initCap items before the first resize.
func MakeArrayQueue[T any](initCap uint) *ArrayQueue[T] {
	return &ArrayQueue[T]{content: make([]T, max(initCap, 1))}
}

func (u *ArrayQueue[T]) Empty() bool {
	return u.sz == 0
}

func (u *ArrayQueue[T]) Size() uint {
	return u.sz
}

// resize moves the items to a new slice of newLen, oldest first. newLen>=sz.
func (u *ArrayQueue[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	n := uint(copy(nc, u.content[u.head:min(u.head+u.sz, uint(len(u.content)))]))
	copy(nc[n:], u.content[:u.sz-n])
	u.content, u.head = nc, 0
}

// Shrink the backing slice to the current size.
func (u *ArrayQueue[T]) Shrink() {
	u.resize(max(u.sz, 1))
}

func (u *ArrayQueue[T]) Clear() {
	clear(u.content)
	u.head, u.sz = 0, 0
}

// Push [Queue.Push]
// Time: amortized O(1)
func (u *ArrayQueue[T]) Push(item T) {
	if u.sz == uint(len(u.content)) {
		u.resize(u.sz << 1)
	}
	u.content[(u.head+u.sz)%uint(len(u.content))] = item
	u.sz++
}

// Pop [Queue.Pop]
// Time: O(1)
func (u *ArrayQueue[T]) Pop() (item T, e error) {
	if u.Empty() {
		return item, &EmptyQueueError{}
	}
	item = u.content[u.head]
	u.content[u.head] = *new(T)
	u.head = (u.head + 1) % uint(len(u.content))
	u.sz--
	return item, nil
}

// Peek [Queue.Peek]
func (u *ArrayQueue[T]) Peek() (item T, ok bool) {
	if u.Empty() {
		return
	}
	return u.content[u.head], true
}
