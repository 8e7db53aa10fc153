package report

import (
	"bytes"
	"encoding/csv"
)

func writeCSV(cols []column, rows []fields) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(headers(cols)); err != nil {
		return nil, err
	}

	rec := make([]string, len(cols))
	for _, row := range rows {
		for i, c := range cols {
			rec[i] = c.value(row)
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
