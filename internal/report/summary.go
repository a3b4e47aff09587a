package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dm/hubtrack/internal/engine"
	"github.com/dm/hubtrack/internal/format"
	"github.com/dm/hubtrack/internal/model"
)

const summaryTimeFormat = "2006-01-02 15:04:05 MST"

// WriteSummary prints the per-repository growth statistics block to w.
// It is a read-only reduction over the sorted samples; nothing downstream
// consumes its output.
func WriteSummary(w io.Writer, samples []model.Sample) {
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintln(w, "DOCKER HUB PULL COUNT SUMMARY STATISTICS")
	fmt.Fprintln(w, strings.Repeat("=", 60))

	for _, s := range engine.SummarizeAll(samples) {
		fmt.Fprintf(w, "\n%s/%s\n", s.Namespace, s.Repository)
		fmt.Fprintln(w, strings.Repeat("-", 40))
		fmt.Fprintf(w, "Current Pull Count: %s\n", format.Number(s.Current))
		fmt.Fprintf(w, "Total Growth: %s\n", format.Growth(s.Growth))
		fmt.Fprintf(w, "Time Period: %s\n", format.Hours(s.Hours))
		fmt.Fprintf(w, "Average Growth Rate: %s\n", format.Rate(s.PerHour))
		fmt.Fprintf(w, "Latest Update: %s\n", s.LastUpdated.Format(summaryTimeFormat))
	}
}
