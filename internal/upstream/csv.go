package upstream

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseCSV reads a comma-separated document into header-keyed records.
// Commas inside double-quote spans do not split; a double quote toggles the
// quote region and is not emitted; every field is trimmed. Rows without an
// id field are discarded.
func ParseCSV(r io.Reader) ([]Record, error) {
	buf := make([]byte, 0, 64*1024)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(buf, 1024*1024)

	var header []string
	var records []Record

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		if header == nil {
			line = strings.TrimPrefix(line, "\ufeff")
			header = splitLine(line)
			continue
		}

		fields := splitLine(line)
		record := make(Record, len(header))
		for i, name := range header {
			if i < len(fields) {
				record[name] = fields[i]
			} else {
				record[name] = ""
			}
		}

		if record.Str("id") == "" {
			continue
		}
		records = append(records, record)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan csv: %w", err)
	}

	return records, nil
}

// splitLine splits on commas outside double-quote spans and trims each field
func splitLine(line string) []string {
	var fields []string
	var b strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(b.String()))
			b.Reset()
		default:
			b.WriteRune(r)
		}
	}
	fields = append(fields, strings.TrimSpace(b.String()))

	return fields
}
