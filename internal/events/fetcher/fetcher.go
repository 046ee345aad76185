package fetcher

import (
	"bufio"
	"context"
	"io"
	"strings"
)

type line struct {
	text string
	err  error
}

// LineFetcher реализует Fetcher, читая ввод построчно.
type LineFetcher struct {
	lines chan line
}

// NewLineFetcher создаёт LineFetcher поверх r.
// Чтение идёт в отдельной горутине, чтобы Fetch мог прерываться по ctx.
func NewLineFetcher(r io.Reader) *LineFetcher {
	f := &LineFetcher{lines: make(chan line)}

	go func() {
		defer close(f.lines)

		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			f.lines <- line{text: strings.TrimSuffix(scanner.Text(), "\r")}
		}

		if err := scanner.Err(); err != nil {
			f.lines <- line{err: err}
		}
	}()

	return f
}

// Fetch возвращает следующую строку ввода.
func (f *LineFetcher) Fetch(ctx context.Context) (Input, error) {
	select {
	case <-ctx.Done():
		return Input{}, ctx.Err()
	case l, ok := <-f.lines:
		if !ok {
			return Input{}, io.EOF
		}

		if l.err != nil {
			return Input{}, l.err
		}

		return Input{Text: l.text}, nil
	}
}
