package progress

import (
	"sync"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/fatih/color"
	"github.com/minio/pkg/console"
)

// TimedBar shows run progress as elapsed wall-clock time, since a
// duration-bounded run has no op count to track up front.
type TimedBar struct {
	bar  *pb.ProgressBar
	done chan struct{}
	once sync.Once
}

// NewTimedBar starts a bar that fills over total and refreshes itself until
// Finish is called.
func NewTimedBar(total time.Duration) *TimedBar {
	console.SetColor("Bar", color.New(color.FgGreen, color.Bold))

	bar := pb.New64(total.Milliseconds())
	bar.SetRefreshRate(time.Millisecond * 125)
	bar.SetTemplateString(`{{string . "prefix"}} {{bar . }} {{percent . }}`)
	bar.Start()

	t := &TimedBar{bar: bar, done: make(chan struct{})}
	go t.tick(total)
	return t
}

// SetCaption sets the text in front of the bar.
func (t *TimedBar) SetCaption(caption string) *TimedBar {
	t.bar.Set("prefix", caption)
	return t
}

// Finish stops the ticker and completes the bar.
func (t *TimedBar) Finish() {
	t.once.Do(func() { close(t.done) })
	t.bar.SetCurrent(t.bar.Total())
	t.bar.Finish()
}

func (t *TimedBar) tick(total time.Duration) {
	ticker := time.NewTicker(time.Millisecond * 125)
	defer ticker.Stop()
	start := time.Now()
	for {
		select {
		case <-t.done:
			return
		case <-ticker.C:
			elapsed := time.Since(start)
			if elapsed > total {
				elapsed = total
			}
			t.bar.SetCurrent(elapsed.Milliseconds())
		}
	}
}
