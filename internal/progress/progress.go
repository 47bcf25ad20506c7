// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package progress renders a single-line console progress bar:
//
//	Progress: [█████████████-------------------------------------] 26.3% Completed
//
// Positions are zero-based item indexes, so the last item of a list of
// total items renders as 100%.
package progress

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	defaultDecimals = 1
	defaultLength   = 50
	defaultFill     = "█"
	emptyCell       = "-"
)

// Option customizes a [Bar].
type Option func(*Bar)

// WithDecimals sets how many decimals the percentage shows.
func WithDecimals(decimals int) Option {
	return func(b *Bar) {
		b.decimals = max(decimals, 0)
	}
}

// WithLength sets the number of cells between the brackets.
func WithLength(length int) Option {
	return func(b *Bar) {
		b.length = max(length, 0)
	}
}

// WithFill sets the string drawn for each completed cell.
func WithFill(fill string) Option {
	return func(b *Bar) {
		b.fill = fill
	}
}

// WithOutput sets where [Bar.Print] writes. Colours are only used when out
// is a terminal.
func WithOutput(out io.Writer) Option {
	return func(b *Bar) {
		b.out = out
	}
}

// Bar is a console progress bar. It is not safe for concurrent use.
type Bar struct {
	last     int
	decimals int
	length   int
	fill     string
	out      io.Writer
	style    lipgloss.Style

	percent string
	filled  int
}

// New returns a bar for total items positioned at index 0.
func New(total int, opts ...Option) *Bar {
	b := &Bar{
		last:     total - 1,
		decimals: defaultDecimals,
		length:   defaultLength,
		fill:     defaultFill,
		out:      os.Stdout,
	}
	for _, opt := range opts {
		opt(b)
	}

	b.style = lipgloss.NewRenderer(b.out).NewStyle().Foreground(lipgloss.Color("2"))

	return b.Update(0)
}

// Update moves the bar to the zero-based item index current. Indexes outside
// [0, total-1] are clamped. A bar for one item or fewer is always complete.
func (b *Bar) Update(current int) *Bar {
	if b.last <= 0 {
		b.percent = b.formatPercent(100)
		b.filled = b.length
		return b
	}

	current = min(max(current, 0), b.last)
	b.percent = b.formatPercent(100 * float64(current) / float64(b.last))
	b.filled = b.length * current / b.last

	return b
}

// Percent returns the formatted completion percentage, without the sign.
func (b *Bar) Percent() string { return b.percent }

// String renders the bar without a leading carriage return.
func (b *Bar) String() string {
	var sb strings.Builder
	sb.WriteString("Progress: [")
	sb.WriteString(b.style.Render(strings.Repeat(b.fill, b.filled)))
	sb.WriteString(strings.Repeat(emptyCell, b.length-b.filled))
	sb.WriteString("] ")
	sb.WriteString(b.percent)
	sb.WriteString("% Completed")
	return sb.String()
}

// Print redraws the bar in place on the output line.
func (b *Bar) Print() error {
	_, err := fmt.Fprint(b.out, "\r"+b.String())
	return err
}

// Done ends the bar line so later output starts on a fresh line.
func (b *Bar) Done() error {
	_, err := fmt.Fprintln(b.out)
	return err
}

func (b *Bar) formatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', b.decimals, 64)
}
