package ui

import (
	"fmt"
	"io"

	"xten/internal/progress"
	"xten/internal/util/format"
)

// PlainReporter writes minimal progress lines to w. It is the non-TTY
// fallback for the live encode view and the capture target in tests.
type PlainReporter struct {
	W        io.Writer
	lastPct  int
	reported bool
}

func (r *PlainReporter) Update(u progress.Update) {
	pct := int(u.Percent)
	if r.reported && pct == r.lastPct {
		return
	}
	r.lastPct = pct
	r.reported = true
	fmt.Fprintf(r.W, "%s... %3d%%\n", u.Message, pct)
}

func (r *PlainReporter) Result(res progress.Result) {
	if res.Err != nil {
		fmt.Fprintf(r.W, "failed: %v\n", res.Err)
		return
	}
	fmt.Fprintf(r.W, "saved %s (%s)\n", res.OutputPath, format.HumanizeBytes(res.Bytes))
}
