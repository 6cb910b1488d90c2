package dataprocessing

import (
	"encoding/json"
	"strings"

	"cinepulse/pkg/contracts/domain"
)

// nameRecord is the common shape of the encoded metadata lists:
// [{"id": 28, "name": "Action"}, ...]
type nameRecord struct {
	Name string `json:"name"`
}

// crewRecord carries the fields we need from an encoded crew entry.
type crewRecord struct {
	Job  string `json:"job"`
	Name string `json:"name"`
}

// decodeNameList decodes a string-encoded list of name-bearing records into
// the ordered sequence of names. The second return reports whether the field
// decoded cleanly; on any failure, or when the value is not a list, the
// result is an empty sequence and the caller keeps the row.
func decodeNameList(raw string) ([]string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, false
	}

	var records []nameRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		normalized := normalizeEncodedList(raw)
		if err := json.Unmarshal([]byte(normalized), &records); err != nil {
			return nil, false
		}
	}

	names := make([]string, 0, len(records))
	for _, rec := range records {
		names = append(names, rec.Name)
	}
	return names, true
}

// decodeDirector decodes an encoded crew list and returns the name of the
// first entry whose job is exactly "Director". First match wins; films with
// several credited directors keep only the first-listed one. The second
// return reports whether the crew field decoded cleanly.
func decodeDirector(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return domain.UnknownSentinel, false
	}

	var crew []crewRecord
	if err := json.Unmarshal([]byte(raw), &crew); err != nil {
		normalized := normalizeEncodedList(raw)
		if err := json.Unmarshal([]byte(normalized), &crew); err != nil {
			return domain.UnknownSentinel, false
		}
	}

	for _, member := range crew {
		if member.Job == "Director" {
			return member.Name, true
		}
	}
	return domain.UnknownSentinel, true
}

// normalizeEncodedList converts a Python-literal encoded list (single-quoted
// strings, None/True/False constants) into JSON. Dataset dumps mix both
// encodings, so the strict JSON path is tried first and this is the fallback.
func normalizeEncodedList(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	inString := false
	var quote byte

	for i := 0; i < len(raw); i++ {
		c := raw[i]

		if inString {
			switch {
			case c == '\\' && i+1 < len(raw):
				i++
				if raw[i] == '\'' {
					// \' is not a valid JSON escape
					b.WriteByte('\'')
				} else {
					b.WriteByte(c)
					b.WriteByte(raw[i])
				}
			case c == quote:
				inString = false
				b.WriteByte('"')
			case c == '"':
				// A double quote inside a single-quoted string must be escaped
				b.WriteString(`\"`)
			default:
				b.WriteByte(c)
			}
			continue
		}

		switch {
		case c == '\'' || c == '"':
			inString = true
			quote = c
			b.WriteByte('"')
		case c == 'N' && strings.HasPrefix(raw[i:], "None"):
			b.WriteString("null")
			i += 3
		case c == 'T' && strings.HasPrefix(raw[i:], "True"):
			b.WriteString("true")
			i += 3
		case c == 'F' && strings.HasPrefix(raw[i:], "False"):
			b.WriteString("false")
			i += 4
		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}
