package output

import (
	"io"
	"os"
	"sync"

	"github.com/cheggaaa/pb/v3"
	"github.com/sdejongh/resultdiff/pkg/models"
	"golang.org/x/term"
)

const progressTemplate = `{{counters . }} {{bar . "[" "=" ">" " " "]"}} {{percent . }} {{string . "pair"}}`

// ProgressFormatter decorates another formatter with a progress bar over
// compared pairs. The bar is drawn on its own writer (usually stderr) and
// only when that writer is a terminal, so piped output stays clean.
type ProgressFormatter struct {
	inner  Formatter
	writer io.Writer
	force  bool

	mu  sync.Mutex
	bar *pb.ProgressBar
}

// NewProgressFormatter wraps inner, drawing the bar on w
func NewProgressFormatter(inner Formatter, w io.Writer) *ProgressFormatter {
	if w == nil {
		w = os.Stderr
	}
	return &ProgressFormatter{inner: inner, writer: w}
}

// SetForce draws the bar even when the writer is not a terminal
func (f *ProgressFormatter) SetForce(force bool) {
	f.force = force
}

// Start starts the inner formatter and the bar
func (f *ProgressFormatter) Start(writer io.Writer, totalPairs int) error {
	if err := f.inner.Start(writer, totalPairs); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if totalPairs == 0 || !(f.force || isTerminal(f.writer)) {
		return nil
	}

	f.bar = pb.ProgressBarTemplate(progressTemplate).New(totalPairs)
	f.bar.SetWriter(f.writer)
	f.bar.SetWidth(80)
	f.bar.Start()
	return nil
}

// Pair advances the bar and forwards the pair
func (f *ProgressFormatter) Pair(p models.PairResult) error {
	f.mu.Lock()
	if f.bar != nil {
		f.bar.Set("pair", p.ExpectedName)
		f.bar.Increment()
	}
	f.mu.Unlock()

	return f.inner.Pair(p)
}

// Complete stops the bar before the inner formatter writes its summary
func (f *ProgressFormatter) Complete(report *models.Report) error {
	f.mu.Lock()
	if f.bar != nil {
		f.bar.Finish()
		f.bar = nil
	}
	f.mu.Unlock()

	return f.inner.Complete(report)
}

// Name returns the inner formatter name
func (f *ProgressFormatter) Name() string {
	return f.inner.Name()
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
