package service

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/msomdec/practice-demos/internal/domain"
)

// Console is where demos print. Every line goes to the matching writer and,
// when set, to the line sink. It is safe for concurrent use.
type Console struct {
	mu   sync.Mutex
	out  io.Writer
	err  io.Writer
	sink func(domain.RunLine)
	demo string
	seq  int
}

// NewConsole creates a Console printing to out and errOut. Either writer may
// be io.Discard.
func NewConsole(out, errOut io.Writer) *Console {
	return &Console{out: out, err: errOut}
}

// SetSink registers a function that receives every printed line.
func (c *Console) SetSink(sink func(domain.RunLine)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sink = sink
}

func (c *Console) setDemo(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.demo = name
}

// Log prints its operands separated by spaces on the output stream.
func (c *Console) Log(args ...any) {
	c.write(domain.StreamOut, joinArgs(args))
}

// Logf prints a formatted line on the output stream.
func (c *Console) Logf(format string, args ...any) {
	c.write(domain.StreamOut, fmt.Sprintf(format, args...))
}

// Error prints its operands separated by spaces on the error stream.
func (c *Console) Error(args ...any) {
	c.write(domain.StreamErr, joinArgs(args))
}

func (c *Console) write(stream domain.Stream, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	w := c.out
	if stream == domain.StreamErr {
		w = c.err
	}
	fmt.Fprintln(w, text)

	c.seq++
	if c.sink != nil {
		c.sink(domain.RunLine{
			Seq:       c.seq,
			Demo:      c.demo,
			Stream:    stream,
			Text:      text,
			CreatedAt: time.Now().UTC(),
		})
	}
}

func joinArgs(args []any) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprint(a)
	}
	return strings.Join(parts, " ")
}
