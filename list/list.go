package list

import (
	"fmt"

	"github.com/gonzen2310/singlylinkedlist/internal/stack"
	"github.com/gonzen2310/singlylinkedlist/internal/xerrors"
	"github.com/gonzen2310/singlylinkedlist/internal/xstring"
	"github.com/gonzen2310/singlylinkedlist/trace"
)

// NotFound is the location reported by Find when no element matches.
const NotFound = -1

var noTrace = &trace.List{}

// LinkedList is a singly linked list with constant time access to both ends.
// Locations are zero-based. The zero value is an empty list ready to use.
//
// LinkedList is not safe for concurrent use.
type LinkedList[T comparable] struct {
	head   *node[T]
	tail   *node[T]
	length int

	trace *trace.List
}

func New[T comparable](opts ...Option) *LinkedList[T] {
	o := options{
		trace: &trace.List{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return &LinkedList[T]{
		trace: o.trace,
	}
}

func (l *LinkedList[T]) tracer() *trace.List {
	if l.trace == nil {
		return noTrace
	}

	return l.trace
}

// Len returns the number of elements.
func (l *LinkedList[T]) Len() int {
	return l.length
}

func (l *LinkedList[T]) IsEmpty() bool {
	return l.length == 0
}

// First returns the element at the head.
func (l *LinkedList[T]) First() (_ T, finalErr error) {
	onDone := trace.ListOnGet(l.tracer(),
		stack.FunctionID("github.com/gonzen2310/singlylinkedlist/list.(*LinkedList).First"),
		0, l.length,
	)
	defer func() {
		onDone(finalErr)
	}()

	if l.length == 0 {
		var zero T

		return zero, xerrors.WithStackTrace(ErrEmpty)
	}

	return l.head.value, nil
}

// Last returns the element at the tail.
func (l *LinkedList[T]) Last() (_ T, finalErr error) {
	onDone := trace.ListOnGet(l.tracer(),
		stack.FunctionID("github.com/gonzen2310/singlylinkedlist/list.(*LinkedList).Last"),
		l.length-1, l.length,
	)
	defer func() {
		onDone(finalErr)
	}()

	if l.length == 0 {
		var zero T

		return zero, xerrors.WithStackTrace(ErrEmpty)
	}

	return l.tail.value, nil
}

// Get returns the element at loc.
func (l *LinkedList[T]) Get(loc int) (_ T, finalErr error) {
	onDone := trace.ListOnGet(l.tracer(),
		stack.FunctionID("github.com/gonzen2310/singlylinkedlist/list.(*LinkedList).Get"),
		loc, l.length,
	)
	defer func() {
		onDone(finalErr)
	}()

	if err := l.checkLoc("get", loc); err != nil {
		var zero T

		return zero, xerrors.WithStackTrace(err)
	}

	return l.nodeAt(loc).value, nil
}

// Append adds e after the tail.
func (l *LinkedList[T]) Append(e T) {
	onDone := trace.ListOnInsert(l.tracer(),
		stack.FunctionID("github.com/gonzen2310/singlylinkedlist/list.(*LinkedList).Append"),
		l.length, l.length,
	)
	l.append(e)
	onDone(l.length, nil)
}

// Prepend adds e before the head.
func (l *LinkedList[T]) Prepend(e T) {
	onDone := trace.ListOnInsert(l.tracer(),
		stack.FunctionID("github.com/gonzen2310/singlylinkedlist/list.(*LinkedList).Prepend"),
		0, l.length,
	)
	l.prepend(e)
	onDone(l.length, nil)
}

// Insert puts e before the element currently at loc.
// Location -1 is the same as Prepend and location Len() is the same as Append.
// Any location outside of [-1, Len()] fails with *IndexError and leaves
// the list unchanged.
func (l *LinkedList[T]) Insert(e T, loc int) (finalErr error) {
	onDone := trace.ListOnInsert(l.tracer(),
		stack.FunctionID("github.com/gonzen2310/singlylinkedlist/list.(*LinkedList).Insert"),
		loc, l.length,
	)
	defer func() {
		onDone(l.length, finalErr)
	}()

	switch {
	case loc < -1 || loc > l.length:
		return xerrors.WithStackTrace(&IndexError{
			Op:  "insert",
			Loc: loc,
			Min: -1,
			Max: l.length,
		})
	case loc <= 0:
		l.prepend(e)
	case loc == l.length:
		l.append(e)
	default:
		prev := l.nodeAt(loc - 1)
		prev.next = &node[T]{
			value: e,
			next:  prev.next,
		}
		l.length++
	}

	return nil
}

// DeleteFirst removes the head and returns its element.
func (l *LinkedList[T]) DeleteFirst() (_ T, finalErr error) {
	onDone := trace.ListOnDelete(l.tracer(),
		stack.FunctionID("github.com/gonzen2310/singlylinkedlist/list.(*LinkedList).DeleteFirst"),
		0, l.length,
	)
	defer func() {
		onDone(l.length, finalErr == nil, finalErr)
	}()

	if l.length == 0 {
		var zero T

		return zero, xerrors.WithStackTrace(ErrEmpty)
	}

	return l.removeFirst(), nil
}

// DeleteLast removes the tail and returns its element. It walks the whole
// chain to find the new tail.
func (l *LinkedList[T]) DeleteLast() (_ T, finalErr error) {
	onDone := trace.ListOnDelete(l.tracer(),
		stack.FunctionID("github.com/gonzen2310/singlylinkedlist/list.(*LinkedList).DeleteLast"),
		l.length-1, l.length,
	)
	defer func() {
		onDone(l.length, finalErr == nil, finalErr)
	}()

	switch l.length {
	case 0:
		var zero T

		return zero, xerrors.WithStackTrace(ErrEmpty)
	case 1:
		return l.removeFirst(), nil
	default:
		return l.removeAfter(l.nodeAt(l.length - 2)), nil
	}
}

// Delete removes the element at loc and returns it.
func (l *LinkedList[T]) Delete(loc int) (_ T, finalErr error) {
	onDone := trace.ListOnDelete(l.tracer(),
		stack.FunctionID("github.com/gonzen2310/singlylinkedlist/list.(*LinkedList).Delete"),
		loc, l.length,
	)
	defer func() {
		onDone(l.length, finalErr == nil, finalErr)
	}()

	if err := l.checkLoc("delete", loc); err != nil {
		var zero T

		return zero, xerrors.WithStackTrace(err)
	}
	if loc == 0 {
		return l.removeFirst(), nil
	}

	return l.removeAfter(l.nodeAt(loc - 1)), nil
}

// Find returns the lowest location holding e, or NotFound.
// NotFound is not an error: only an empty list fails.
func (l *LinkedList[T]) Find(e T) (loc int, finalErr error) {
	onDone := trace.ListOnFind(l.tracer(),
		stack.FunctionID("github.com/gonzen2310/singlylinkedlist/list.(*LinkedList).Find"),
		l.length,
	)
	defer func() {
		onDone(loc, finalErr)
	}()

	if l.length == 0 {
		return NotFound, xerrors.WithStackTrace(ErrEmpty)
	}

	return l.find(e), nil
}

// DeleteValue removes the first element equal to e. Nothing happens when e is absent.
func (l *LinkedList[T]) DeleteValue(e T) (finalErr error) {
	var removed bool
	onDone := trace.ListOnDelete(l.tracer(),
		stack.FunctionID("github.com/gonzen2310/singlylinkedlist/list.(*LinkedList).DeleteValue"),
		NotFound, l.length,
	)
	defer func() {
		onDone(l.length, removed, finalErr)
	}()

	if l.length == 0 {
		return xerrors.WithStackTrace(ErrEmpty)
	}

	switch loc := l.find(e); loc {
	case NotFound:
	case 0:
		l.removeFirst()
		removed = true
	default:
		l.removeAfter(l.nodeAt(loc - 1))
		removed = true
	}

	return nil
}

// Values returns the elements from head to tail.
func (l *LinkedList[T]) Values() []T {
	values := make([]T, 0, l.length)
	for n := l.head; n != nil; n = n.next {
		values = append(values, n.value)
	}

	return values
}

// Range calls f for each element from head to tail until f returns false.
// f must not modify the list.
func (l *LinkedList[T]) Range(f func(loc int, v T) bool) {
	loc := 0
	for n := l.head; n != nil; n = n.next {
		if !f(loc, n.value) {
			return
		}
		loc++
	}
}

// Clear drops every element.
func (l *LinkedList[T]) Clear() {
	for l.head != nil {
		n := l.head
		l.head = n.next
		n.next = nil
	}
	l.tail = nil
	l.length = 0
}

// String renders elements joined by ", ". An empty list gives "".
func (l *LinkedList[T]) String() string {
	b := xstring.Buffer()
	defer b.Free()
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			b.WriteString(", ")
		}
		fmt.Fprint(b, n.value)
	}

	return b.String()
}

func (l *LinkedList[T]) checkLoc(op string, loc int) error {
	if l.length == 0 {
		return ErrEmpty
	}
	if loc < 0 || loc >= l.length {
		return &IndexError{
			Op:  op,
			Loc: loc,
			Min: 0,
			Max: l.length - 1,
		}
	}

	return nil
}

// nodeAt expects 0 <= loc < length.
func (l *LinkedList[T]) nodeAt(loc int) *node[T] {
	n := l.head
	for i := 0; i < loc; i++ {
		n = n.next
	}

	return n
}

func (l *LinkedList[T]) find(e T) int {
	loc := 0
	for n := l.head; n != nil; n = n.next {
		if n.value == e {
			return loc
		}
		loc++
	}

	return NotFound
}

func (l *LinkedList[T]) append(e T) {
	n := &node[T]{
		value: e,
	}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.length++
}

func (l *LinkedList[T]) prepend(e T) {
	l.head = &node[T]{
		value: e,
		next:  l.head,
	}
	if l.tail == nil {
		l.tail = l.head
	}
	l.length++
}

// removeFirst expects a non-empty list.
func (l *LinkedList[T]) removeFirst() T {
	n := l.head
	l.head = n.next
	if l.head == nil {
		l.tail = nil
	}
	n.next = nil
	l.length--

	return n.value
}

// removeAfter unlinks prev.next, which must exist.
func (l *LinkedList[T]) removeAfter(prev *node[T]) T {
	n := prev.next
	prev.next = n.next
	if n == l.tail {
		l.tail = prev
	}
	n.next = nil
	l.length--

	return n.value
}
