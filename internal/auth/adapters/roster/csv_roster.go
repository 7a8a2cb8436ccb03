package roster

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gym-dashboard-service/internal/auth/core/ports"
)

// CSVRoster reads member ids from a local membership roster CSV. The
// file must carry an "id" column; rows whose id cell is blank or not an
// integer are skipped.
type CSVRoster struct {
	path string
}

func NewCSVRoster(path string) *CSVRoster {
	return &CSVRoster{path: path}
}

var _ ports.RosterPort = (*CSVRoster)(nil)

func (r *CSVRoster) ListMemberIDs(ctx context.Context) ([]int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open roster: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("roster %s is empty", r.path)
	}

	idCol := -1
	for i, header := range records[0] {
		if strings.EqualFold(strings.TrimSpace(header), "id") {
			idCol = i
			break
		}
	}
	if idCol < 0 {
		return nil, fmt.Errorf("roster %s has no id column", r.path)
	}

	var ids []int64
	for _, record := range records[1:] {
		if idCol >= len(record) {
			continue
		}
		cell := strings.TrimSpace(record[idCol])
		if cell == "" {
			continue
		}
		id, err := strconv.ParseInt(cell, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	return ids, nil
}
