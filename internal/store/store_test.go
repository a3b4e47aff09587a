package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dm/hubtrack/internal/model"
)

func newTestStore(t *testing.T) *CSVStore {
	t.Helper()
	return NewCSVStore(filepath.Join(t.TempDir(), "pull_counts.csv"))
}

func sampleAt(ts time.Time, repo string, count int64) model.Sample {
	return model.Sample{
		Timestamp:  ts,
		Namespace:  "lmcache",
		Repository: repo,
		PullCount:  count,
	}
}

func TestAppend_HeaderOnceThenRows(t *testing.T) {
	s := newTestStore(t)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		err := s.Append(sampleAt(base.Add(time.Duration(i)*time.Hour), "vllm-openai", int64(100+i)))
		require.NoError(t, err)
	}

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 4, "header + 3 rows")
	assert.Equal(t, "timestamp,namespace,repository,pull_count", lines[0])
	assert.Equal(t, "2024-01-01T00:00:00Z,lmcache,vllm-openai,100", lines[1])

	// Appending to an existing file never rewrites the header.
	require.NoError(t, s.Append(sampleAt(base.Add(3*time.Hour), "vllm-openai", 103)))
	data, err = os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "timestamp,namespace"))
}

func TestLoad_SortedAscending(t *testing.T) {
	s := newTestStore(t)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	// Appended out of order; load sorts by timestamp.
	require.NoError(t, s.Append(sampleAt(base.Add(2*time.Hour), "vllm-openai", 120)))
	require.NoError(t, s.Append(sampleAt(base, "vllm-openai", 100)))
	require.NoError(t, s.Append(sampleAt(base.Add(time.Hour), "vllm-openai", 110)))

	samples, err := s.Load(time.UTC)
	require.NoError(t, err)
	require.Len(t, samples, 3)
	assert.Equal(t, int64(100), samples[0].PullCount)
	assert.Equal(t, int64(110), samples[1].PullCount)
	assert.Equal(t, int64(120), samples[2].PullCount)
}

func TestLoad_DropsMalformedRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pull_counts.csv")
	content := strings.Join([]string{
		"timestamp,namespace,repository,pull_count",
		"2024-01-01T00:00:00Z,lmcache,vllm-openai,100",
		"not-a-timestamp,lmcache,vllm-openai,110",
		"2024-01-01T02:00:00Z,lmcache,vllm-openai",      // missing field
		"2024-01-01T03:00:00Z,lmcache,vllm-openai,abc",  // bad count
		"2024-01-01T04:00:00Z,lmcache,vllm-openai,-5",   // negative count
		"2024-01-01T05:00:00Z,lmcache,vllm-openai,150",
	}, "\n") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	samples, err := NewCSVStore(path).Load(time.UTC)
	require.NoError(t, err)
	require.Len(t, samples, 2, "exactly the malformed rows drop, the rest stay")
	assert.Equal(t, int64(100), samples[0].PullCount)
	assert.Equal(t, int64(150), samples[1].PullCount)
}

func TestLoad_NaiveTimestampTreatedAsUTC(t *testing.T) {
	la, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "pull_counts.csv")
	content := strings.Join([]string{
		"timestamp,namespace,repository,pull_count",
		"2024-01-01T00:00:00,lmcache,vllm-openai,100",       // naive → UTC
		"2024-01-01T00:00:00Z,lmcache,lmstack-router,200",   // aware, same instant
		"2023-12-31 16:00:00,lmcache,vllm-openai,90",        // naive space layout
	}, "\n") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	samples, err := NewCSVStore(path).Load(la)
	require.NoError(t, err)
	require.Len(t, samples, 3)

	// Naive and zone-aware rows at the same instant normalize identically:
	// 2024-01-01T00:00:00 UTC is 2023-12-31 16:00 in Los Angeles (PST).
	want := time.Date(2023, 12, 31, 16, 0, 0, 0, la)
	assert.True(t, samples[1].Timestamp.Equal(want), "naive: got %v", samples[1].Timestamp)
	assert.True(t, samples[2].Timestamp.Equal(want), "aware: got %v", samples[2].Timestamp)
	assert.Equal(t, "PST", samples[1].Timestamp.Format("MST"))
}

func TestLoad_MissingFile(t *testing.T) {
	s := NewCSVStore(filepath.Join(t.TempDir(), "does-not-exist.csv"))
	_, err := s.Load(time.UTC)
	assert.Error(t, err)
}

func TestAppend_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	ts := time.Date(2024, 6, 15, 8, 30, 0, 0, time.UTC)
	require.NoError(t, s.Append(sampleAt(ts, "lmstack-router", 4321)))

	samples, err := s.Load(time.UTC)
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.Equal(t, "lmcache", samples[0].Namespace)
	assert.Equal(t, "lmstack-router", samples[0].Repository)
	assert.Equal(t, int64(4321), samples[0].PullCount)
	assert.True(t, samples[0].Timestamp.Equal(ts))
}
