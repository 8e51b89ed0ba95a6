package view

import (
	"time"

	"github.com/msomdec/practice-demos/internal/domain"
)

// LiveLinesID is the element the live run stream appends lines to.
const LiveLinesID = "live-lines"

func runStatus(r domain.Run) string {
	if r.FinishedAt == nil {
		return "in progress"
	}
	return "finished in " + r.FinishedAt.Sub(r.StartedAt).Round(time.Millisecond).String()
}
