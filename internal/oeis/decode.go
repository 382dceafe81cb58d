package oeis

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/samcharles93/intseq/internal/sequence"
)

type record struct {
	Number *int    `json:"number"`
	Data   *string `json:"data"`
}

type envelope struct {
	Results *[]json.RawMessage `json:"results"`
}

// decodeCandidates turns a search response body into at most one candidate:
// the first record. Every record must be an object with a string "data"
// field, but only the first one's data is parsed.
//
// The search endpoint answers with a bare array of records, or null when
// nothing matches. Older deployments wrapped the array as {"results": [...]}
// and that form is accepted too.
func decodeCandidates(body []byte) ([]sequence.Candidate, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, &ProtocolError{Detail: "empty body"}
	}

	var raw []json.RawMessage
	switch body[0] {
	case 'n':
		if string(body) != "null" {
			return nil, &ProtocolError{Detail: "invalid JSON"}
		}
		return nil, nil
	case '[':
		if err := json.Unmarshal(body, &raw); err != nil {
			return nil, &ProtocolError{Detail: err.Error()}
		}
	case '{':
		var env envelope
		if err := json.Unmarshal(body, &env); err != nil {
			return nil, &ProtocolError{Detail: err.Error()}
		}
		if env.Results == nil {
			if !bytes.Contains(body, []byte(`"results"`)) {
				return nil, &ProtocolError{Detail: `object without "results"`}
			}
			return nil, nil
		}
		raw = *env.Results
	default:
		return nil, &ProtocolError{Detail: fmt.Sprintf("expected array of records, got %.20q", body)}
	}

	if len(raw) == 0 {
		return []sequence.Candidate{}, nil
	}
	var first record
	for i, msg := range raw {
		rec, err := decodeRecord(msg)
		if err != nil {
			return nil, &ProtocolError{Detail: fmt.Sprintf("record %d: %v", i, err)}
		}
		if i == 0 {
			first = rec
		}
	}

	var id string
	if first.Number != nil {
		id = fmt.Sprintf("A%06d", *first.Number)
	}
	data, truncated, err := ParseData(*first.Data)
	if err != nil {
		var dataErr *DataError
		if errors.As(err, &dataErr) {
			dataErr.ID = id
		}
		return nil, err
	}
	return []sequence.Candidate{{ID: id, Data: data, Truncated: truncated}}, nil
}

// decodeRecord checks the shape of one record without parsing its data.
func decodeRecord(msg json.RawMessage) (record, error) {
	msg = bytes.TrimSpace(msg)
	if len(msg) == 0 || msg[0] != '{' {
		return record{}, errors.New("record is not an object")
	}
	var rec record
	if err := json.Unmarshal(msg, &rec); err != nil {
		return record{}, err
	}
	if rec.Data == nil {
		return record{}, errors.New(`missing "data" field`)
	}
	return rec, nil
}

// ParseData parses a comma separated data field. Parsing stops at the first
// positive term above the int64 range and reports truncated; that term is
// above every int64 bound. A negative term below the range is an error.
func ParseData(s string) (terms []int64, truncated bool, err error) {
	if strings.TrimSpace(s) == "" {
		return nil, false, nil
	}
	parts := strings.Split(s, ",")
	terms = make([]int64, 0, len(parts))
	for i, part := range parts {
		text := strings.TrimSpace(part)
		x, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(text, "-") {
				return terms, true, nil
			}
			return nil, false, &DataError{Index: i, Text: text}
		}
		terms = append(terms, x)
	}
	return terms, false, nil
}
