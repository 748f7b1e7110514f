package resolvers

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/agentstation/depmerge/pkg/errors"
)

// Terminal is the console shared by the interactive resolvers. It reads
// answers line by line; a single goroutine owns the reader so that a prompt
// abandoned on cancellation does not race the next one.
type Terminal struct {
	in    io.Reader
	out   io.Writer
	once  sync.Once
	lines chan string

	// err is written by the reader before lines is closed.
	err error
}

// NewTerminal returns a Terminal reading from in and writing to out.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: in, out: out}
}

func (t *Terminal) start() {
	t.lines = make(chan string)
	go func() {
		scanner := bufio.NewScanner(t.in)
		for scanner.Scan() {
			t.lines <- scanner.Text()
		}
		t.err = scanner.Err()
		close(t.lines)
	}()
}

func (t *Terminal) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(t.out, format, args...)
}

// ask prints question until accept returns true for the trimmed answer. A
// closed input or a cancelled context stops the run.
func (t *Terminal) ask(ctx context.Context, question string, accept func(answer string) bool) (string, error) {
	t.once.Do(t.start)

	for {
		t.printf("%s ", question)

		select {
		case <-ctx.Done():
			t.printf("\n")
			return "", errors.AbortRun(ctx.Err().Error())
		case line, ok := <-t.lines:
			if !ok {
				t.printf("\n")
				if t.err != nil {
					return "", errors.AbortRun(t.err.Error())
				}
				return "", errors.AbortRun("input closed")
			}
			answer := strings.ToLower(strings.TrimSpace(line))
			if accept(answer) {
				return answer, nil
			}
			t.printf("Unrecognized choice %q.\n", answer)
		}
	}
}
