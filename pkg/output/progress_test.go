package output

import (
	"bytes"
	"io"
	"testing"

	"github.com/sdejongh/resultdiff/pkg/models"
)

type recordingFormatter struct {
	total     int
	pairs     []string
	completed bool
}

func (r *recordingFormatter) Start(w io.Writer, totalPairs int) error {
	r.total = totalPairs
	return nil
}

func (r *recordingFormatter) Pair(p models.PairResult) error {
	r.pairs = append(r.pairs, p.ExpectedName)
	return nil
}

func (r *recordingFormatter) Complete(report *models.Report) error {
	r.completed = true
	return nil
}

func (r *recordingFormatter) Name() string {
	return "recording"
}

func TestProgressFormatter_NotATerminal(t *testing.T) {
	var barOut bytes.Buffer
	inner := &recordingFormatter{}
	f := NewProgressFormatter(inner, &barOut)

	f.Start(io.Discard, 2)
	f.Pair(models.PairResult{ExpectedName: "a.out"})
	f.Pair(models.PairResult{ExpectedName: "b.out"})
	f.Complete(&models.Report{})

	if barOut.Len() != 0 {
		t.Errorf("bar drawn on a non-terminal writer: %q", barOut.String())
	}
	if inner.total != 2 || len(inner.pairs) != 2 || !inner.completed {
		t.Errorf("inner formatter not driven: %+v", inner)
	}
	if f.Name() != "recording" {
		t.Errorf("Name() = %s, want inner name", f.Name())
	}
}

func TestProgressFormatter_Forced(t *testing.T) {
	var barOut bytes.Buffer
	inner := &recordingFormatter{}
	f := NewProgressFormatter(inner, &barOut)
	f.SetForce(true)

	f.Start(io.Discard, 2)
	f.Pair(models.PairResult{ExpectedName: "a.out"})
	f.Pair(models.PairResult{ExpectedName: "b.out"})
	f.Complete(&models.Report{})

	if barOut.Len() == 0 {
		t.Error("forced bar should be drawn")
	}
	if len(inner.pairs) != 2 || !inner.completed {
		t.Errorf("inner formatter not driven: %+v", inner)
	}
}

func TestProgressFormatter_NoPairs(t *testing.T) {
	var barOut bytes.Buffer
	f := NewProgressFormatter(&recordingFormatter{}, &barOut)
	f.SetForce(true)

	f.Start(io.Discard, 0)
	f.Complete(&models.Report{})

	if barOut.Len() != 0 {
		t.Errorf("no bar expected for an empty run: %q", barOut.String())
	}
}
