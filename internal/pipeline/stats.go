package pipeline

import "time"

// RunStats tracks aggregate counters and byte totals across a batch run.
type RunStats struct {
	Start            time.Time
	Total            int
	Current          int
	Converted        int
	Skipped          int
	Failed           int
	TotalInputBytes  int64
	TotalOutputBytes int64
}

// SpaceSaved returns the aggregate byte difference between inputs and
// outputs. Positive means outputs are smaller; negative means they grew.
func (s *RunStats) SpaceSaved() int64 {
	return s.TotalInputBytes - s.TotalOutputBytes
}

// Remaining estimates time left as a linear projection: files not yet
// processed times the average duration per processed file so far.
func (s *RunStats) Remaining(elapsed time.Duration) time.Duration {
	if s.Current <= 0 {
		return 0
	}
	perFile := elapsed / time.Duration(s.Current)
	return time.Duration(s.Total-s.Current) * perFile
}
