package frame

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"taframe/internal/model"
)

// barHeader is the canonical bar column order for CSV exchange.
var barHeader = []string{"t", "o", "h", "l", "c", "v"}

// WriteCSV serializes the frame: a header row of bar fields plus the
// derived column names, then one row per bar. No-value entries are
// written as empty cells.
func (f *Frame) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	header := append([]string{}, barHeader...)
	for _, col := range f.cols {
		header = append(header, col.Name)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	row := make([]string, 0, len(header))
	for i, b := range f.bars {
		row = row[:0]
		row = append(row,
			strconv.FormatInt(b.T, 10),
			formatFloat(b.Open),
			formatFloat(b.High),
			formatFloat(b.Low),
			formatFloat(b.Close),
			formatFloat(b.Volume),
		)
		for _, col := range f.cols {
			row = append(row, formatCell(col.Values[i]))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the frame to a CSV file at path.
func (f *Frame) WriteCSVFile(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := f.WriteCSV(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// ReadCSV parses a bar series from CSV. The header must name at least
// the t, o, h, l, c and v columns, in any order; extra columns are
// ignored. This is the frame's shape-validation boundary: missing
// required columns or unparsable numbers fail here so the indicator
// engine can assume well-formed input.
func ReadCSV(r io.Reader) (model.Series, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}
	for _, name := range barHeader {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("read csv: missing required column %q", name)
		}
	}

	var bars model.Series
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv line %d: %w", line, err)
		}

		var b model.Bar
		if b.T, err = strconv.ParseInt(record[idx["t"]], 10, 64); err != nil {
			return nil, fmt.Errorf("read csv line %d: column t: %w", line, err)
		}
		fields := []struct {
			name string
			dst  *float64
		}{
			{"o", &b.Open}, {"h", &b.High}, {"l", &b.Low}, {"c", &b.Close}, {"v", &b.Volume},
		}
		for _, f := range fields {
			if *f.dst, err = strconv.ParseFloat(record[idx[f.name]], 64); err != nil {
				return nil, fmt.Errorf("read csv line %d: column %s: %w", line, f.name, err)
			}
		}
		bars = append(bars, b)
	}
	return bars, nil
}

// ReadCSVFile reads a bar series from a CSV file at path.
func ReadCSVFile(path string) (model.Series, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer in.Close()
	return ReadCSV(in)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatCell(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case float64:
		return formatFloat(v)
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprint(v)
	}
}
