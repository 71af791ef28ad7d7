package shell

import (
	"fmt"
	"io"

	"github.com/gonzen2310/singlylinkedlist/internal/xerrors"
	"github.com/gonzen2310/singlylinkedlist/list"
)

// Demo runs the scripted sequence of calls over l and prints the list after each phase.
// It returns the joined errors of failed steps, if any.
func Demo(out io.Writer, l *list.LinkedList[int]) error {
	var errs []error
	check := func(err error) {
		errs = append(errs, err)
	}
	dump := func() {
		fmt.Fprintln(out, l)
		fmt.Fprintf(out, "Length: %d\n\n", l.Len())
	}

	l.Append(7)
	l.Prepend(150)
	l.Append(19)
	l.Prepend(0)
	l.Prepend(69)
	l.Append(3)
	l.Prepend(96)
	l.Prepend(777)
	l.Prepend(123)
	l.Append(16)
	l.Prepend(2)
	dump()

	check(l.Insert(6969, 4))
	check(l.Insert(10, 4))
	dump()

	for _, deleteFunc := range []func() (int, error){
		l.DeleteFirst,
		l.DeleteLast,
		l.DeleteFirst,
		l.DeleteFirst,
		l.DeleteFirst,
		l.DeleteLast,
	} {
		_, err := deleteFunc()
		check(err)
	}
	dump()

	first, err := l.First()
	check(err)
	fmt.Fprintln(out, "First:", first)
	last, err := l.Last()
	check(err)
	fmt.Fprintln(out, "Last:", last)

	check(l.DeleteValue(10))
	check(l.DeleteValue(7))
	dump()

	deleted, err := l.Delete(2)
	check(err)
	fmt.Fprintln(out, deleted)
	dump()

	return xerrors.Join(errs...)
}
