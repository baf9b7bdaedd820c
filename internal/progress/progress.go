// Package progress renders a single-line terminal progress bar.
package progress

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

const defaultWidth = 40

// Bar redraws "label [#####-----] done/total" in place on each update.
type Bar struct {
	w       io.Writer
	label   string
	width   int
	total   int
	done    int
	started bool

	labelColor *color.Color
	fillColor  *color.Color
}

// New creates a Bar that writes to w.
func New(w io.Writer, label string) *Bar {
	return &Bar{
		w:          w,
		label:      label,
		width:      defaultWidth,
		labelColor: color.New(color.FgCyan),
		fillColor:  color.New(color.FgGreen),
	}
}

// Start resets the bar for total units of work and draws it.
func (b *Bar) Start(total int) {
	b.total = total
	b.done = 0
	b.started = true
	b.draw()
}

// Advance marks one unit of work done.
func (b *Bar) Advance() {
	if b.done < b.total {
		b.done++
	}
	b.draw()
}

// Finish ends the line so later output starts on a fresh one.
func (b *Bar) Finish() {
	if !b.started {
		return
	}
	b.started = false
	fmt.Fprintln(b.w)
}

func (b *Bar) draw() {
	filled := b.width
	if b.total > 0 {
		filled = b.width * b.done / b.total
	}
	fmt.Fprintf(b.w, "\r%s [%s%s] %d/%d",
		b.labelColor.Sprint(b.label),
		b.fillColor.Sprint(strings.Repeat("#", filled)),
		strings.Repeat("-", b.width-filled),
		b.done, b.total)
}

// Nop discards all progress updates.
type Nop struct{}

func (Nop) Start(int) {}
func (Nop) Advance()  {}
func (Nop) Finish()   {}
