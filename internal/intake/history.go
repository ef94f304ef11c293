package intake

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

var (
	ErrEmptyHistory = errors.New("csv: empty file")
	ErrNoHistoryCol = errors.New("csv: glasses column not found")
	ErrShortHistory = errors.New("csv: need at least two days")
)

// LoadHistoryCSV reads daily glass counts from a CSV file, oldest first.
// Column detection: glasses|count|value|water (case-insensitive).
func LoadHistoryCSV(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	days, err := ReadHistoryCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return days, nil
}

// ReadHistoryCSV is LoadHistoryCSV over any reader. Rows without a
// non-negative number in the glasses column are skipped.
func ReadHistoryCSV(r io.Reader) ([]int, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, ErrEmptyHistory
	}
	col := -1
	for i, h := range recs[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "glasses", "count", "value", "water":
			if col == -1 {
				col = i
			}
		}
	}
	if col == -1 {
		return nil, ErrNoHistoryCol
	}
	var days []int
	for _, row := range recs[1:] {
		if col >= len(row) {
			continue
		}
		n, ok := parseGlasses(row[col])
		if !ok {
			continue
		}
		days = append(days, n)
	}
	if len(days) < 2 {
		return nil, ErrShortHistory
	}
	return days, nil
}

// maxGlasses bounds a single day's count.
const maxGlasses = math.MaxInt32

func parseGlasses(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, n >= 0 && n <= maxGlasses
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || f < 0 || f > maxGlasses {
		return 0, false
	}
	return int(math.Round(f)), true
}

// LastDays keeps the n most recent days, or all of them when n is not
// positive. The result never aliases days.
func LastDays(days []int, n int) []int {
	if n > 0 && len(days) > n {
		days = days[len(days)-n:]
	}
	return append([]int(nil), days...)
}
