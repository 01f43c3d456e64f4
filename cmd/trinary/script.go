package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/g-m-twostay/go-trinary/Parsers"
	"github.com/g-m-twostay/go-trinary/Queues"
	"github.com/pkg/errors"
)

type opKind byte

const (
	opInsert opKind = iota
	opDelete
)

func (k opKind) String() string {
	if k == opInsert {
		return "insert"
	}
	return "delete"
}

var opKinds = map[string]opKind{
	"insert": opInsert, "i": opInsert, "+": opInsert,
	"delete": opDelete, "del": opDelete, "d": opDelete,
}

type operation struct {
	kind  opKind
	value int64
	line  int
}

var errMalformed = errors.New("expected an operation and a value")

// scriptError points at the script line that couldn't be read.
type scriptError struct {
	Line int
	Text string
	Err  error
}

func (e *scriptError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *scriptError) Unwrap() error {
	return e.Err
}

// readScript parses the whole script before anything is applied, so a bad
// line leaves the tree untouched. One operation per line, "#" starts a comment.
func readScript(r io.Reader) (*Queues.ArrayQueue[operation], error) {
	ops := Queues.MakeArrayQueue[operation](16)
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, &scriptError{line, sc.Text(), errMalformed}
		}
		kind, ok := opKinds[strings.ToLower(fields[0])]
		if !ok {
			return nil, &scriptError{line, sc.Text(), errors.Errorf("unknown operation %q", fields[0])}
		}
		v, err := Parsers.StringToInteger(fields[1])
		if err != nil {
			return nil, &scriptError{line, sc.Text(), err}
		}
		ops.Push(operation{kind, v, line})
	}
	if err := sc.Err(); err != nil {
		return nil, errors.WithStack(err)
	}
	return ops, nil
}
