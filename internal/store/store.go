package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/dm/hubtrack/internal/model"
)

// header is the first row of a freshly created table file.
var header = []string{"timestamp", "namespace", "repository", "pull_count"}

// timestampLayouts are accepted on load, tried in order. RFC3339 covers rows
// this tool writes; the naive layouts cover rows written by hand or by older
// collectors. Naive timestamps are taken as UTC.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// CSVStore is the append-only flat-file table of pull-count samples.
// It assumes a single writer; concurrent writers are out of scope.
type CSVStore struct {
	path string
}

// NewCSVStore returns a store backed by the CSV file at path.
func NewCSVStore(path string) *CSVStore {
	return &CSVStore{path: path}
}

// Path returns the table file path.
func (s *CSVStore) Path() string {
	return s.path
}

// Append writes one sample row to the table, creating the file with a header
// row first iff it does not yet exist. Timestamps are serialized RFC3339 so
// rows stay sortable and zone-aware. Repeated appends add rows; there is no
// deduplication.
func (s *CSVStore) Append(sample model.Sample) error {
	_, statErr := os.Stat(s.path)
	writeHeader := os.IsNotExist(statErr)

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open table: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(header); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	row := []string{
		sample.Timestamp.Format(time.RFC3339),
		sample.Namespace,
		sample.Repository,
		strconv.FormatInt(sample.PullCount, 10),
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("write row: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush table: %w", err)
	}
	return nil
}

// Load reads the whole table, normalizes every timestamp to loc, and returns
// the samples sorted ascending by timestamp. Rows that fail to parse (wrong
// field count, bad timestamp, bad count) are dropped silently. A missing or
// unreadable file is an error; the caller reports it and skips chart output.
func (s *CSVStore) Load(loc *time.Location) ([]model.Sample, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open table: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // field-count validation is ours; bad rows drop, not abort

	var samples []model.Sample
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Quoting errors and the like affect one row only.
			continue
		}

		sample, ok := parseRow(record, loc)
		if !ok {
			continue
		}
		samples = append(samples, sample)
	}

	sort.SliceStable(samples, func(i, j int) bool {
		return samples[i].Timestamp.Before(samples[j].Timestamp)
	})
	return samples, nil
}

// parseRow converts one CSV record into a Sample. The header row fails the
// timestamp parse and is dropped like any other malformed row.
func parseRow(record []string, loc *time.Location) (model.Sample, bool) {
	if len(record) != 4 {
		return model.Sample{}, false
	}

	ts, ok := parseTimestamp(record[0], loc)
	if !ok {
		return model.Sample{}, false
	}

	count, err := strconv.ParseInt(record[3], 10, 64)
	if err != nil || count < 0 {
		return model.Sample{}, false
	}

	return model.Sample{
		Timestamp:  ts,
		Namespace:  record[1],
		Repository: record[2],
		PullCount:  count,
	}, true
}

// parseTimestamp tries each accepted layout and converts the result to loc.
// Layouts without zone information are parsed as UTC first, so naive and
// zone-aware rows at the same instant normalize identically.
func parseTimestamp(value string, loc *time.Location) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		t, err := time.ParseInLocation(layout, value, time.UTC)
		if err == nil {
			return t.In(loc), true
		}
	}
	return time.Time{}, false
}
