package tsunami

import (
	"fmt"
	"io"
	"time"
)

// timer prints elapsed time since the previous lap and since start.
type timer struct {
	w      io.Writer
	t0, tl time.Time
}

func newTimer(w io.Writer) *timer {
	t := time.Now()
	return &timer{w: w, t0: t, tl: t}
}

func (t *timer) Lap(msg string) {
	now := time.Now()
	fmt.Fprintf(t.w, "%s (%v, %v total)\n", msg, now.Sub(t.tl).Round(time.Millisecond), now.Sub(t.t0).Round(time.Millisecond))
	t.tl = now
}
