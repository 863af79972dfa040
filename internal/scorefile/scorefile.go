// Package scorefile loads per-factor score records from the tab-delimited
// result files emitted by the upstream analysis stage.
package scorefile

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/motifscan/gcplot/schema"
)

// absentValue marks a score the upstream stage did not compute.
const absentValue = "NA"

// Load reads a four-column file: factor id, Z-score, Fisher p-value and KS
// p-value, tab-delimited, no header. A score field holding "NA" or nothing
// means the factor was not scored for that measure. Lines starting with
// '#' are ignored.
func Load(path string) ([]schema.ScoreRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open scores %s: %v", schema.ErrIO, path, err)
	}
	defer func() { _ = file.Close() }()

	var records []schema.ScoreRecord
	scanner := bufio.NewScanner(file)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Split(text, "\t")
		if len(fields) != 4 {
			return nil, fmt.Errorf("%w: %s line %d: expected 4 fields, got %d", schema.ErrBadRow, path, line, len(fields))
		}
		record := schema.ScoreRecord{ID: fields[0]}
		if record.ZScore, err = parseScore(fields[1]); err != nil {
			return nil, fmt.Errorf("%w: %s line %d: %v", schema.ErrBadRow, path, line, err)
		}
		if record.FisherP, err = parseScore(fields[2]); err != nil {
			return nil, fmt.Errorf("%w: %s line %d: %v", schema.ErrBadRow, path, line, err)
		}
		if record.KSP, err = parseScore(fields[3]); err != nil {
			return nil, fmt.Errorf("%w: %s line %d: %v", schema.ErrBadRow, path, line, err)
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: read scores %s: %v", schema.ErrIO, path, err)
	}
	return records, nil
}

// parseScore turns a score field into an optional float.
func parseScore(field string) (*float64, error) {
	if field == "" || field == absentValue {
		return nil, nil
	}
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return nil, fmt.Errorf("bad score %q", field)
	}
	return &v, nil
}
