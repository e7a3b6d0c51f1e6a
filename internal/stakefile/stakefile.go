// Package stakefile reads the stake-key input list. The expected format is a
// csv with a stake_address header and one key per line.
package stakefile

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

const headerField = "stake_address"

// Load reads the stake keys from path, in file order. The header row is
// required; blank lines are skipped.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open stake file %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read stake file %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("stake file %s is empty", path)
	}
	if !strings.EqualFold(strings.TrimSpace(rows[0][0]), headerField) {
		return nil, fmt.Errorf("stake file %s: first row must be the %q header", path, headerField)
	}

	var keys []string
	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		key := strings.TrimSpace(row[0])
		if key == "" {
			continue
		}
		keys = append(keys, key)
	}
	return keys, nil
}
