package engine

import (
	"github.com/dm/hubtrack/internal/model"
)

// safeDivide returns a/b, or 0 when b is zero. Zero elapsed hours therefore
// yields a growth rate of 0 — an explicit policy, not a derived default.
func safeDivide(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

// Repositories returns the distinct repository names present in samples, in
// first-seen order.
func Repositories(samples []model.Sample) []string {
	seen := make(map[string]struct{}, len(samples))
	var repos []string
	for _, s := range samples {
		if _, ok := seen[s.Repository]; ok {
			continue
		}
		seen[s.Repository] = struct{}{}
		repos = append(repos, s.Repository)
	}
	return repos
}

// ForRepository returns the subsequence of samples belonging to repo,
// preserving order.
func ForRepository(samples []model.Sample, repo string) []model.Sample {
	var out []model.Sample
	for _, s := range samples {
		if s.Repository == repo {
			out = append(out, s)
		}
	}
	return out
}

// Summarize computes the growth statistics for repo over samples, which must
// already be sorted ascending by timestamp (the store guarantees this).
//
// Growth is always relative to the earliest sample present for the repository
// in the loaded table, not a fixed historical baseline: pruning or rotating
// the table externally moves the baseline. Returns the zero RepoSummary and
// false when the repository has no samples.
func Summarize(samples []model.Sample, repo string) (model.RepoSummary, bool) {
	sub := ForRepository(samples, repo)
	if len(sub) == 0 {
		return model.RepoSummary{}, false
	}

	first := sub[0]
	last := sub[len(sub)-1]

	growth := last.PullCount - first.PullCount
	hours := last.Timestamp.Sub(first.Timestamp).Hours()

	return model.RepoSummary{
		Namespace:   last.Namespace,
		Repository:  repo,
		Current:     last.PullCount,
		Initial:     first.PullCount,
		Growth:      growth,
		Hours:       hours,
		PerHour:     safeDivide(float64(growth), hours),
		LastUpdated: last.Timestamp,
	}, true
}

// SummarizeAll computes one RepoSummary per distinct repository in samples,
// in first-seen order.
func SummarizeAll(samples []model.Sample) []model.RepoSummary {
	repos := Repositories(samples)
	out := make([]model.RepoSummary, 0, len(repos))
	for _, repo := range repos {
		if summary, ok := Summarize(samples, repo); ok {
			out = append(out, summary)
		}
	}
	return out
}
