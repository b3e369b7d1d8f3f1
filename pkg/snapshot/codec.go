package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

const indentUnit = "  "

var (
	// ErrDuplicateKey is returned when an object carries the same key twice.
	ErrDuplicateKey = errors.New("duplicate object key")
	// ErrInvalidUTF8 is returned for strings that are not valid UTF-8; encoding them
	// would silently substitute U+FFFD and break the round trip.
	ErrInvalidUTF8 = errors.New("string is not valid UTF-8")
	// ErrInvalidNumber is returned for number text that is not a JSON number.
	ErrInvalidNumber = errors.New("invalid number text")
)

// Marshal renders v as canonical JSON: two-space indentation, object fields in their
// stored order, no HTML escaping and a trailing newline.
func Marshal(v Value) ([]byte, error) {
	var buf bytes.Buffer

	if err := encode(&buf, v, 0, "$"); err != nil {
		return nil, err
	}

	buf.WriteByte('\n')

	return buf.Bytes(), nil
}

func encode(buf *bytes.Buffer, v Value, depth int, path string) error {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		buf.WriteString(strconv.FormatBool(v.flag))
	case KindNumber:
		if !isNumber(v.text) {
			return fmt.Errorf("%s: %w: %q", path, ErrInvalidNumber, v.text)
		}

		buf.WriteString(v.text)
	case KindString:
		return encodeString(buf, v.text, path)
	case KindArray:
		return encodeArray(buf, v.items, depth, path)
	case KindObject:
		return encodeObject(buf, v.fields, depth, path)
	default:
		return fmt.Errorf("%s: unknown value kind %d", path, v.kind)
	}

	return nil
}

func encodeArray(buf *bytes.Buffer, items []Value, depth int, path string) error {
	if len(items) == 0 {
		buf.WriteString("[]")
		return nil
	}

	buf.WriteString("[\n")

	for i, item := range items {
		writeIndent(buf, depth+1)

		if err := encode(buf, item, depth+1, fmt.Sprintf("%s[%d]", path, i)); err != nil {
			return err
		}

		if i < len(items)-1 {
			buf.WriteByte(',')
		}

		buf.WriteByte('\n')
	}

	writeIndent(buf, depth)
	buf.WriteByte(']')

	return nil
}

func encodeObject(buf *bytes.Buffer, fields []Member, depth int, path string) error {
	if len(fields) == 0 {
		buf.WriteString("{}")
		return nil
	}

	seen := make(map[string]struct{}, len(fields))

	buf.WriteString("{\n")

	for i, f := range fields {
		if _, dup := seen[f.Key]; dup {
			return fmt.Errorf("%s: %w: %q", path, ErrDuplicateKey, f.Key)
		}

		seen[f.Key] = struct{}{}

		writeIndent(buf, depth+1)

		if err := encodeString(buf, f.Key, path); err != nil {
			return err
		}

		buf.WriteString(": ")

		if err := encode(buf, f.Value, depth+1, path+"."+f.Key); err != nil {
			return err
		}

		if i < len(fields)-1 {
			buf.WriteByte(',')
		}

		buf.WriteByte('\n')
	}

	writeIndent(buf, depth)
	buf.WriteByte('}')

	return nil
}

func encodeString(buf *bytes.Buffer, s string, path string) error {
	if !utf8.ValidString(s) {
		return fmt.Errorf("%s: %w", path, ErrInvalidUTF8)
	}

	var tmp bytes.Buffer

	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte("\n")))

	return nil
}

func writeIndent(buf *bytes.Buffer, depth int) {
	buf.WriteString(strings.Repeat(indentUnit, depth))
}

func isNumber(text string) bool {
	if text == "" || strings.TrimSpace(text) != text {
		return false
	}

	if text[0] != '-' && (text[0] < '0' || text[0] > '9') {
		return false
	}

	return json.Valid([]byte(text))
}

// Unmarshal decodes JSON text into a Value, keeping object fields in document order.
func Unmarshal(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return Null(), fmt.Errorf("decode snapshot: %w", err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Null(), fmt.Errorf("decode snapshot: unexpected data after top-level value")
	}

	return v, nil
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Null(), err
	}

	switch t := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case json.Number:
		return Number(t), nil
	case string:
		return String(t), nil
	case json.Delim:
		switch t {
		case '[':
			return decodeArray(dec)
		case '{':
			return decodeObject(dec)
		}
	}

	return Null(), fmt.Errorf("unexpected token %v", tok)
}

func decodeArray(dec *json.Decoder) (Value, error) {
	items := []Value{}

	for dec.More() {
		item, err := decodeValue(dec)
		if err != nil {
			return Null(), err
		}

		items = append(items, item)
	}

	if _, err := dec.Token(); err != nil {
		return Null(), err
	}

	return Value{kind: KindArray, items: items}, nil
}

func decodeObject(dec *json.Decoder) (Value, error) {
	fields := []Member{}
	seen := map[string]struct{}{}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Null(), err
		}

		key, ok := tok.(string)
		if !ok {
			return Null(), fmt.Errorf("unexpected object key %v", tok)
		}

		if _, dup := seen[key]; dup {
			return Null(), fmt.Errorf("%w: %q", ErrDuplicateKey, key)
		}

		seen[key] = struct{}{}

		value, err := decodeValue(dec)
		if err != nil {
			return Null(), err
		}

		fields = append(fields, Member{Key: key, Value: value})
	}

	if _, err := dec.Token(); err != nil {
		return Null(), err
	}

	return Value{kind: KindObject, fields: fields}, nil
}

// Canonicalize re-serializes stored snapshot text with every number normalized through
// float64 formatting, so "1.0" and "1" produce the same bytes.
func Canonicalize(data []byte) ([]byte, error) {
	v, err := Unmarshal(data)
	if err != nil {
		return nil, err
	}

	return Marshal(normalizeNumbers(v))
}

func normalizeNumbers(v Value) Value {
	switch v.kind {
	case KindNumber:
		f, err := strconv.ParseFloat(v.text, 64)
		if err != nil {
			return v
		}

		return Float(f)
	case KindArray:
		items := make([]Value, len(v.items))
		for i, item := range v.items {
			items[i] = normalizeNumbers(item)
		}

		return Value{kind: KindArray, items: items}
	case KindObject:
		fields := make([]Member, len(v.fields))
		for i, f := range v.fields {
			fields[i] = Member{Key: f.Key, Value: normalizeNumbers(f.Value)}
		}

		return Value{kind: KindObject, fields: fields}
	default:
		return v
	}
}
