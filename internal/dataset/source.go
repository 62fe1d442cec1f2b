package dataset

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Source fetches the dataset. Implementations are called once per session.
type Source interface {
	Fetch(ctx context.Context) (Dataset, error)
	String() string
}

// Open returns the source for uri: http(s) URLs are fetched over HTTP,
// anything else is read as a local .json or .csv file.
func Open(uri string) (Source, error) {
	lower := strings.ToLower(uri)
	switch {
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return NewHTTPSource(uri), nil
	case strings.HasPrefix(lower, "file://"):
		return openFile(uri[len("file://"):])
	default:
		return openFile(uri)
	}
}

func openFile(path string) (Source, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return &FileSource{Path: path, Format: "json"}, nil
	case ".csv":
		return &FileSource{Path: path, Format: "csv"}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedSource, path)
}

// FileSource reads a dataset from disk.
type FileSource struct {
	Path   string
	Format string
}

func (s *FileSource) String() string { return s.Path }

func (s *FileSource) Fetch(ctx context.Context) (Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, &SourceError{Source: s.Path, Wrapped: err}
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, &SourceError{Source: s.Path, Wrapped: err}
	}

	var d Dataset
	switch s.Format {
	case "csv":
		d, err = decodeCSV(string(data))
	default:
		err = json.Unmarshal(data, &d)
	}
	if err != nil {
		return nil, &SourceError{Source: s.Path, Wrapped: err}
	}
	return d, nil
}

// decodeCSV reads Year and Mean columns by header name. Rows that fail to
// parse are skipped.
func decodeCSV(body string) (Dataset, error) {
	r := csv.NewReader(strings.NewReader(body))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return Dataset{}, nil
	}

	yearCol, meanCol := -1, -1
	for i, name := range records[0] {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "year":
			yearCol = i
		case "mean":
			meanCol = i
		}
	}
	if yearCol < 0 || meanCol < 0 {
		return nil, fmt.Errorf("csv header must name Year and Mean columns, got %v", records[0])
	}

	out := make(Dataset, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) <= yearCol || len(record) <= meanCol {
			continue
		}
		year, err := strconv.Atoi(strings.TrimSpace(record[yearCol]))
		if err != nil {
			continue
		}
		mean, err := strconv.ParseFloat(strings.TrimSpace(record[meanCol]), 64)
		if err != nil {
			continue
		}
		out = append(out, DataPoint{Year: year, Mean: mean})
	}
	return out, nil
}
