package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// cellsString formats a cell count in billions, e.g. "1,188.6 B".
func cellsString(billions float64) string {
	return humanize.FormatFloat("#,###.#", billions) + " B"
}

// fixed formats v with the given number of decimals.
func fixed(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// parseFields splits a colon-separated list of numbers, as in "1:60:5.5".
// The result has between lo and hi values.
func parseFields(s string, lo, hi int) ([]float64, error) {
	parts := strings.Split(s, ":")
	if len(parts) < lo || len(parts) > hi {
		return nil, usagef("%q: want %d to %d colon-separated numbers", s, lo, hi)
	}
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, usagef("%q: %q is not a number", s, p)
		}
		out[i] = v
	}
	return out, nil
}

// parseDate parses a YYYY-MM-DD flag value. An empty value yields now.
func parseDate(flag, s string, now time.Time) (time.Time, error) {
	if s == "" {
		return now, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, usagef("--%s: %v", flag, err)
	}
	return t, nil
}
