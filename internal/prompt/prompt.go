// Package prompt reads whitespace-separated answers from an input stream and
// drives the numbered console menu.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"
)

// ErrInvalidInput is returned when an answer cannot be parsed as the requested type.
var ErrInvalidInput = errors.New("invalid input")

// Prompt asks questions on out and reads one token per answer from in.
// Tokens are whitespace separated, so a name like "John Doe" is two answers.
type Prompt struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// New creates a Prompt reading tokens from in and writing to out.
func New(in io.Reader, out io.Writer) *Prompt {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	return &Prompt{
		scanner: scanner,
		out:     out,
	}
}

// Out is where handlers write their results.
func (p *Prompt) Out() io.Writer {
	return p.out
}

func (p *Prompt) Printf(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format, args...)
}

func (p *Prompt) Println(args ...interface{}) {
	fmt.Fprintln(p.out, args...)
}

// Token prints label and returns the next token. io.EOF is returned once
// the input is exhausted.
func (p *Prompt) Token(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.scanner.Text(), nil
}

// Int prints label and reads one integer token.
func (p *Prompt) Int(label string) (int, error) {
	token, err := p.Token(label)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number", ErrInvalidInput, token)
	}
	return n, nil
}

// Amount reads a decimal amount such as "12", "12.5" or "-3.25".
func (p *Prompt) Amount(label string) (decimal.Decimal, error) {
	token, err := p.Token(label)
	if err != nil {
		return decimal.Zero, err
	}
	amount, err := decimal.NewFromString(token)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not an amount", ErrInvalidInput, token)
	}
	return amount, nil
}
