package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/cityroute/cityroute/core"
)

// ErrMissingColumn indicates a required column is absent from a row
// source's header.
var ErrMissingColumn = errors.New("dataset: required column missing")

// Canonical required headers per row source.
var (
	cityColumns = []string{"id", "name_en", "latitude", "longitude"}
	edgeColumns = []string{"source_id", "target_id", "distance_km", "travel_time_min"}
)

// Cities decodes city rows from r. The header must contain every column in
// the canonical city set; otherwise ErrMissingColumn is returned and no
// rows are produced.
func Cities(r io.Reader) ([]core.CityRow, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("dataset: read cities: %w", err)
	}
	if err = requireColumns(data, cityColumns); err != nil {
		return nil, err
	}

	var rows []core.CityRow
	if err = gocsv.UnmarshalBytes(data, &rows); err != nil {
		return nil, fmt.Errorf("dataset: decode cities: %w", err)
	}

	return rows, nil
}

// Edges decodes road rows from r under the same header contract as Cities.
func Edges(r io.Reader) ([]core.EdgeRow, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("dataset: read edges: %w", err)
	}
	if err = requireColumns(data, edgeColumns); err != nil {
		return nil, err
	}

	var rows []core.EdgeRow
	if err = gocsv.UnmarshalBytes(data, &rows); err != nil {
		return nil, fmt.Errorf("dataset: decode edges: %w", err)
	}

	return rows, nil
}

// requireColumns reads only the header line and verifies every required
// column is present, whitespace-insensitively.
func requireColumns(data []byte, required []string) error {
	header, err := csv.NewReader(bytes.NewReader(data)).Read()
	if err != nil {
		return fmt.Errorf("dataset: read header: %w", err)
	}

	present := make(map[string]bool, len(header))
	for _, col := range header {
		present[strings.TrimSpace(col)] = true
	}
	for _, col := range required {
		if !present[col] {
			return fmt.Errorf("%w: %q", ErrMissingColumn, col)
		}
	}

	return nil
}
