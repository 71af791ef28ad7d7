package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gonzen2310/singlylinkedlist/internal/xerrors"
	"github.com/gonzen2310/singlylinkedlist/internal/xstring"
	"github.com/gonzen2310/singlylinkedlist/list"
)

const morePrompt = "Do you want to perform other operation?(y/n): "

var errInvalidNumber = errors.New("invalid number")

type operation struct {
	name string
	run  func(s *session) error
}

var operations = []operation{
	{name: "Length", run: func(s *session) error {
		s.println(s.l.Len())

		return nil
	}},
	{name: "First", run: func(s *session) error {
		return s.printValue(s.l.First())
	}},
	{name: "Last", run: func(s *session) error {
		return s.printValue(s.l.Last())
	}},
	{name: "Get Data", run: func(s *session) error {
		loc, err := s.readInt("Enter location: ")
		if err != nil {
			return err
		}

		return s.printValue(s.l.Get(loc))
	}},
	{name: "Append", run: func(s *session) error {
		e, err := s.readInt("Enter element: ")
		if err != nil {
			return err
		}
		s.l.Append(e)

		return nil
	}},
	{name: "Prepend", run: func(s *session) error {
		e, err := s.readInt("Enter element: ")
		if err != nil {
			return err
		}
		s.l.Prepend(e)

		return nil
	}},
	{name: "Insert", run: func(s *session) error {
		e, err := s.readInt("Enter element: ")
		if err != nil {
			return err
		}
		loc, err := s.readInt("Enter location: ")
		if err != nil {
			return err
		}

		return s.l.Insert(e, loc)
	}},
	{name: "Delete First", run: func(s *session) error {
		return s.printValue(s.l.DeleteFirst())
	}},
	{name: "Delete Last", run: func(s *session) error {
		return s.printValue(s.l.DeleteLast())
	}},
	{name: "Delete", run: func(s *session) error {
		loc, err := s.readInt("Enter location: ")
		if err != nil {
			return err
		}

		return s.printValue(s.l.Delete(loc))
	}},
	{name: "Find Element", run: func(s *session) error {
		e, err := s.readInt("Enter element: ")
		if err != nil {
			return err
		}
		loc, err := s.l.Find(e)
		if err != nil {
			return err
		}
		if loc == list.NotFound {
			s.println("Element not found")
		}
		s.println(loc)

		return nil
	}},
	{name: "Delete Element", run: func(s *session) error {
		e, err := s.readInt("Enter element: ")
		if err != nil {
			return err
		}

		return s.l.DeleteValue(e)
	}},
	{name: "Print list", run: func(s *session) error {
		s.println(s.l.String())

		return nil
	}},
}

func menu() string {
	b := xstring.Buffer()
	defer b.Free()
	b.WriteString("Enter an operation:\n")
	for i, op := range operations {
		fmt.Fprintf(b, "\t%d. %s\n", i+1, op.name)
	}
	b.WriteString(": ")

	return b.String()
}

type session struct {
	scanner *bufio.Scanner
	out     io.Writer
	l       *list.LinkedList[int]
}

// Interactive runs the numbered menu loop over l until the user declines to
// continue, input ends or ctx is done. List errors are printed and the loop goes on.
func Interactive(ctx context.Context, in io.Reader, out io.Writer, l *list.LinkedList[int]) error {
	var (
		s = &session{
			scanner: bufio.NewScanner(in),
			out:     out,
			l:       l,
		}
		prompt = menu()
	)
	for {
		if err := ctx.Err(); err != nil {
			return xerrors.WithStackTrace(err)
		}

		choice, err := s.readLine(prompt)
		if err != nil {
			return hideEOF(err)
		}
		n, err := strconv.Atoi(choice)
		if err != nil || n < 1 || n > len(operations) {
			s.println("Input a valid number")

			continue
		}

		if err = operations[n-1].run(s); err != nil {
			msg, ok := describe(err)
			if !ok {
				return hideEOF(err)
			}
			s.println(msg)
		}

		more, err := s.readLine(morePrompt)
		if err != nil {
			return hideEOF(err)
		}
		if more != "y" {
			return nil
		}
	}
}

// describe turns list and input errors into messages for the user.
func describe(err error) (string, bool) {
	var indexErr *list.IndexError
	switch {
	case errors.Is(err, errInvalidNumber):
		return "Input a valid number", true
	case xerrors.Is(err, list.ErrEmpty):
		return "List is empty", true
	case xerrors.As(err, &indexErr):
		return fmt.Sprintf("Out of bounds: location %d not in [%d, %d]",
			indexErr.Loc, indexErr.Min, indexErr.Max,
		), true
	default:
		return "", false
	}
}

func hideEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}

	return err
}

func (s *session) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", xerrors.WithStackTrace(err)
		}

		return "", io.EOF
	}

	return strings.TrimSpace(s.scanner.Text()), nil
}

func (s *session) readInt(prompt string) (int, error) {
	line, err := s.readLine(prompt)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(line)
	if err != nil {
		return 0, errInvalidNumber
	}

	return v, nil
}

func (s *session) println(v interface{}) {
	fmt.Fprintln(s.out, v)
}

func (s *session) printValue(v int, err error) error {
	if err != nil {
		return err
	}
	s.println(v)

	return nil
}
