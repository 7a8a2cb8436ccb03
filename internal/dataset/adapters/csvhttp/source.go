package csvhttp

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"gym-dashboard-service/internal/dataset/core/domain"
	"gym-dashboard-service/internal/dataset/core/ports"
)

// HTTPClient is the slice of http.Client the source needs.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Source fetches a CSV resource over HTTP and parses it into typed
// rows: headers and cells are trimmed, numeric cells become float64,
// "true"/"false" become bool, blank lines are skipped and the result is
// capped at domain.MaxRowsPerDataset.
type Source struct {
	client HTTPClient
}

var _ ports.DatasetSourcePort = (*Source)(nil)

func NewSource(client HTTPClient) *Source {
	return &Source{client: client}
}

func (s *Source) FetchRows(ctx context.Context, ds domain.Dataset) ([]domain.Row, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ds.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ports.ErrFetch, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ports.ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: HTTP %d for %s", ports.ErrFetch, resp.StatusCode, ds.URL)
	}

	rows, err := parseRows(resp.Body)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: 0 rows in %s", ports.ErrParse, ds.URL)
	}

	return rows, nil
}

func parseRows(r io.Reader) ([]domain.Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ports.ErrParse, err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []domain.Row
	for len(rows) < domain.MaxRowsPerDataset {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ports.ErrParse, err)
		}

		if blankRecord(record) {
			continue
		}

		row := make(domain.Row, len(header))
		for i, name := range header {
			if name == "" || i >= len(record) {
				continue
			}
			row[name] = typeCell(strings.TrimSpace(record[i]))
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func blankRecord(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// typeCell mirrors the dynamic typing the dashboard's CSV parser
// applied: numbers and the exact true/false tokens get real types,
// everything else stays a string.
func typeCell(cell string) any {
	switch cell {
	case "":
		return ""
	case "true":
		return true
	case "false":
		return false
	}
	if f, err := strconv.ParseFloat(cell, 64); err == nil {
		return f
	}
	return cell
}
