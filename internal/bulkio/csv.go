package bulkio

import (
	"strings"
)

// Row is a parsed record keyed by canonical (or passthrough) header.
type Row map[string]string

// splitLine breaks one CSV line on commas outside double quotes. Quotes
// toggle state; doubled quotes inside a quoted field collapse to one.
func splitLine(line string) []string {
	var fields []string
	var b strings.Builder
	inQuotes := false
	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				b.WriteRune('"')
				i++
				continue
			}
			inQuotes = !inQuotes
		case c == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(b.String()))
			b.Reset()
		default:
			b.WriteRune(c)
		}
	}
	fields = append(fields, strings.TrimSpace(b.String()))
	return fields
}

// ParseCSV reads the whole sheet: first line is the header, every following
// non-empty line becomes a Row. A UTF-8 BOM on the first line is ignored.
func ParseCSV(data []byte) ([]Row, error) {
	text := strings.TrimPrefix(string(data), "\uFEFF")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return nil, ErrEmptySheet
	}

	headers := splitLine(lines[0])
	for i, h := range headers {
		headers[i] = NormalizeHeader(h)
	}

	var rows []Row
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := splitLine(line)
		row := Row{}
		for i, h := range headers {
			if h == "" {
				continue
			}
			if i < len(fields) {
				row[h] = fields[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// WriteCSV renders the given header captions and rows with a UTF-8 BOM so
// spreadsheet apps detect the encoding. Every field is quoted; embedded
// quotes are doubled.
func WriteCSV(captions []string, records [][]string) []byte {
	var b strings.Builder
	b.WriteString("\uFEFF")
	writeRecord(&b, captions)
	for _, rec := range records {
		writeRecord(&b, rec)
	}
	return []byte(b.String())
}

func writeRecord(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}
