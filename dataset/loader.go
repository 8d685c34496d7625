package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/YuminosukeSato/linreg/pkg/errors"
)

// LoadOptions controls how delimited text is parsed.
type LoadOptions struct {
	// Delimiter separates fields. Zero means ';'.
	Delimiter rune
	// SkipLines is the number of leading records (headers) to ignore.
	SkipLines int
	// DecimalComma treats ',' inside a field as the decimal separator.
	DecimalComma bool
}

// DefaultLoadOptions matches the semicolon separated wine quality table:
// one header line, '.' decimals.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{Delimiter: ';', SkipLines: 1}
}

// ReadDelimited parses numeric delimited text into a Dataset.
// Blank lines are ignored.
func ReadDelimited(r io.Reader, opts LoadOptions) (Dataset, error) {
	if opts.SkipLines < 0 {
		return Dataset{}, errors.NewInvalidParameterError("SkipLines", "must be non-negative", opts.SkipLines)
	}
	delim := opts.Delimiter
	if delim == 0 {
		delim = ';'
	}
	if opts.DecimalComma && delim == ',' {
		return Dataset{}, errors.NewInvalidParameterError("Delimiter", "cannot be ',' when DecimalComma is set", string(delim))
	}

	reader := csv.NewReader(r)
	reader.Comma = delim
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	var rows [][]float64
	skipped := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Dataset{}, errors.Wrap(err, "dataset.ReadDelimited")
		}
		if skipped < opts.SkipLines {
			skipped++
			continue
		}
		line, _ := reader.FieldPos(0)

		row := make([]float64, len(record))
		for j, field := range record {
			field = strings.TrimSpace(field)
			if opts.DecimalComma {
				field = strings.ReplaceAll(field, ",", ".")
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return Dataset{}, errors.NewParseError(line, j+1, field, err)
			}
			row[j] = v
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return Dataset{}, errors.Wrapf(errors.NewDimensionError("dataset.ReadDelimited", len(rows[0]), len(row), 1), "line %d", line)
		}
		rows = append(rows, row)
	}
	return New(rows)
}

// LoadFile opens path and parses it with ReadDelimited.
func LoadFile(path string, opts LoadOptions) (Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return Dataset{}, errors.Wrapf(err, "open dataset %s", path)
	}
	defer func() { _ = file.Close() }()

	return ReadDelimited(file, opts)
}
