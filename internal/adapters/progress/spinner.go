package progress

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/trebuchet-org/abisync/internal/usecase"
)

// SpinnerSink shows a spinner on stderr while contracts are being resolved.
// The spinner library stays silent when stderr is not a terminal.
type SpinnerSink struct {
	spinner *spinner.Spinner
}

// NewSpinnerSink creates a new spinner-based progress sink
func NewSpinnerSink() *SpinnerSink {
	return newSpinnerSink(spinner.WithWriterFile(os.Stderr))
}

func newSpinnerSink(opts ...spinner.Option) *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, opts...)
	s.HideCursor = false

	return &SpinnerSink{spinner: s}
}

// OnProgress handles progress events
func (r *SpinnerSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if event.Stage == usecase.StageCompleted {
		r.spinner.Stop()
		return
	}

	if !event.Spinner {
		if r.spinner.Active() {
			r.spinner.Stop()
		}
		return
	}

	r.spinner.Lock()
	r.spinner.Suffix = " " + formatEvent(event)
	r.spinner.Unlock()
	if !r.spinner.Active() {
		r.spinner.Start()
	}
}

func formatEvent(event usecase.ProgressEvent) string {
	if event.Total > 0 {
		return fmt.Sprintf("%s %s (%d/%d)", event.Stage, event.Message, event.Current, event.Total)
	}
	return fmt.Sprintf("%s %s", event.Stage, event.Message)
}

// Ensure SpinnerSink implements ProgressSink
var _ usecase.ProgressSink = (*SpinnerSink)(nil)
