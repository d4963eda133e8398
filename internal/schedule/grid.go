package schedule

import "sort"

// Defaults applied when a court has no operating window or interval configured.
const (
	DefaultOpenTime  = "08:00"
	DefaultCloseTime = "22:00"
	DefaultInterval  = 60 // minutes
)

// Slots generates the ordered sequence of slot-start times ("HH:MM") for one
// day, stepping from the opening time by interval minutes while the start
// stays strictly before the closing time. An empty window yields an empty,
// non-nil sequence.
func Slots(from, until string, interval int) ([]string, error) {
	if from == "" {
		from = DefaultOpenTime
	}
	if until == "" {
		until = DefaultCloseTime
	}
	if interval <= 0 {
		interval = DefaultInterval
	}

	fromMin, err := ParseClock("available_from", from)
	if err != nil {
		return nil, err
	}
	untilMin, err := ParseClock("available_until", until)
	if err != nil {
		return nil, err
	}

	slots := make([]string, 0)
	for cur := fromMin; cur < untilMin; cur += interval {
		slots = append(slots, FormatClock(cur))
	}
	return slots, nil
}

// EndTime returns the end of a slot that starts at start and lasts interval
// minutes. The hour wraps past midnight, so "23:30" + 60 yields "00:30".
func EndTime(start string, interval int) (string, error) {
	startMin, err := ParseClock("time", start)
	if err != nil {
		return "", err
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	return FormatClock(startMin + interval), nil
}

// Union merges slot grids from multiple courts into the distinct set of
// slot-start strings, sorted lexicographically. All entries share the fixed
// "HH:MM" width, so lexicographic order is chronological order.
func Union(grids ...[]string) []string {
	seen := make(map[string]struct{})
	for _, grid := range grids {
		for _, s := range grid {
			seen[s] = struct{}{}
		}
	}

	merged := make([]string, 0, len(seen))
	for s := range seen {
		merged = append(merged, s)
	}
	sort.Strings(merged)
	return merged
}
