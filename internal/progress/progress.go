// Package progress displays how far the vacancy walks have got.
package progress

import (
	"io"
	"strconv"

	"github.com/cheggaaa/pb/v3"
)

// Tracker hands out one Bar per source.
type Tracker interface {
	Start(source string, languages int) Bar
}

// Bar follows the walks of a single source.
type Bar interface {
	// Language marks the start of a language walk.
	Language(name string)
	// Page marks a fetched page.
	Page(index int)
	// Advance marks a finished language walk.
	Advance()
	// Finish stops the bar.
	Finish()
}

const barTemplate = `{{string . "source"}} {{counters . }} {{bar . }} {{string . "language"}} page {{string . "page"}}`

// BarTracker draws pb progress bars to a writer.
type BarTracker struct {
	out io.Writer
}

// NewBarTracker creates a tracker drawing to out (usually os.Stderr).
func NewBarTracker(out io.Writer) *BarTracker {
	return &BarTracker{out: out}
}

func (t *BarTracker) Start(source string, languages int) Bar {
	bar := pb.ProgressBarTemplate(barTemplate).New(languages)
	bar.SetWriter(t.out)
	bar.Set("source", source)
	bar.Set("language", "")
	bar.Set("page", "-")
	bar.Start()
	return &pbBar{bar: bar}
}

type pbBar struct {
	bar *pb.ProgressBar
}

func (b *pbBar) Language(name string) {
	b.bar.Set("language", name)
	b.bar.Set("page", "-")
}

func (b *pbBar) Page(index int) { b.bar.Set("page", strconv.Itoa(index)) }

func (b *pbBar) Advance() { b.bar.Increment() }

func (b *pbBar) Finish() { b.bar.Finish() }

// Discard is a Tracker that draws nothing.
var Discard Tracker = discard{}

type discard struct{}

func (discard) Start(string, int) Bar { return discard{} }

func (discard) Language(string) {}

func (discard) Page(int) {}

func (discard) Advance() {}

func (discard) Finish() {}
