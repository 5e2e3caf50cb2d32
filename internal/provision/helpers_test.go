package provision

import (
	"bytes"
	"context"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
)

// linkTable is an in-memory netif.System.
type linkTable struct {
	names    []string
	wireless map[string]bool
	ops      []string
}

func newLinkTable(names []string, wireless ...string) *linkTable {
	t := &linkTable{names: names, wireless: map[string]bool{}}
	for _, name := range wireless {
		t.wireless[name] = true
	}
	return t
}

func (t *linkTable) LinkNames() ([]string, error) {
	return append([]string(nil), t.names...), nil
}

func (t *linkTable) IsWireless(name string) bool { return t.wireless[name] }

func (t *linkTable) SetDown(name string) error {
	t.ops = append(t.ops, "down "+name)
	return nil
}

func (t *linkTable) SetName(name string, newName string) error {
	t.ops = append(t.ops, "name "+name+" "+newName)
	for i, n := range t.names {
		if n == name {
			t.names[i] = newName
		}
	}
	if t.wireless[name] {
		t.wireless[newName] = true
	}
	return nil
}

func (t *linkTable) SetUp(name string) error {
	t.ops = append(t.ops, "up "+name)
	return nil
}

// scriptedChooser answers prompts from a fixed list of indexes.
type scriptedChooser struct {
	answers []int
	titles  []string
	options [][]string
}

func (c *scriptedChooser) Choose(title string, options []string) (int, error) {
	c.titles = append(c.titles, title)
	c.options = append(c.options, options)
	answer := c.answers[0]
	c.answers = c.answers[1:]
	return answer, nil
}

// callLog records collaborator calls in order.
type callLog struct {
	calls []string
	fail  map[string]error
}

func (l *callLog) record(name string) error {
	l.calls = append(l.calls, name)
	return l.fail[name]
}

func (l *callLog) action(name string) func(context.Context) error {
	return func(context.Context) error { return l.record(name) }
}

func (l *callLog) Install(_ context.Context, withAccessPoint bool) error {
	if withAccessPoint {
		return l.record("packages+ap")
	}
	return l.record("packages")
}

func bufferLogger() (logr.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return funcr.New(func(_, args string) {
		buf.WriteString(args)
		buf.WriteString("\n")
	}, funcr.Options{}), &buf
}

func countMsg(log *bytes.Buffer, msg string) int {
	return strings.Count(log.String(), `"msg"="`+msg+`"`)
}
