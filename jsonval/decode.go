package jsonval

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	j "github.com/goccy/go-json"
)

// Decode parses a single JSON document into a tree. Number literals are
// preserved verbatim and duplicate object keys are rejected.
func Decode(data []byte) (*Value, error) { return DecodeReader(bytes.NewReader(data)) }

// DecodeReader parses a single JSON document from r. Trailing content after
// the document is an error.
func DecodeReader(r io.Reader) (*Value, error) {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	v, err := decodeNext(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected content after document")
	}
	return v, nil
}

func decodeNext(dec *j.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return decodeToken(dec, tok)
}

func decodeToken(dec *j.Decoder, tok any) (*Value, error) {
	switch t := tok.(type) {
	case j.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		}
		return nil, fmt.Errorf("unexpected delimiter %q", t.String())
	case string:
		return String(t), nil
	case bool:
		return Bool(t), nil
	case j.Number:
		return Number(json.Number(t)), nil
	case float64:
		return Float(t), nil
	case nil:
		return Null(), nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

func decodeArray(dec *j.Decoder) (*Value, error) {
	var items []*Value
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, io.ErrUnexpectedEOF
			}
			return nil, err
		}
		if d, ok := tok.(j.Delim); ok && d == ']' {
			return Array(items...), nil
		}
		item, err := decodeToken(dec, tok)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
}

func decodeObject(dec *j.Decoder) (*Value, error) {
	var members []Member
	seen := map[string]struct{}{}
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, io.ErrUnexpectedEOF
			}
			return nil, err
		}
		if d, ok := tok.(j.Delim); ok && d == '}' {
			return Object(members...), nil
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key token %v", tok)
		}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("duplicate object key %q", key)
		}
		seen[key] = struct{}{}
		value, err := decodeNext(dec)
		if err != nil {
			return nil, err
		}
		members = append(members, Member{Key: key, Value: value})
	}
}
