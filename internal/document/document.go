// Package document provides an ordered JSON object builder used to assemble
// wire payloads. Absent values are dropped at Set time so callers can pass
// optional fields straight through without guarding each one.
package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

// Document is an insertion-ordered string keyed map that serializes to a
// JSON object. The zero value is not usable; call New.
type Document struct {
	keys   []string
	values map[string]any
}

func New() *Document {
	return &Document{values: make(map[string]any)}
}

// Set stores value under key and returns d for chaining. A nil value (untyped
// nil, or a nil pointer, slice or map) is ignored and leaves any previous value
// in place. Re-setting an existing key keeps its original position.
func (d *Document) Set(key string, value any) *Document {
	if isAbsent(value) {
		return d
	}
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
	return d
}

// Get returns the value stored under key.
func (d *Document) Get(key string) (any, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Doc returns the nested document stored under key, or nil.
func (d *Document) Doc(key string) *Document {
	v, ok := d.values[key]
	if !ok {
		return nil
	}
	sub, _ := v.(*Document)
	return sub
}

func (d *Document) Has(key string) bool {
	_, ok := d.values[key]
	return ok
}

func (d *Document) Remove(key string) *Document {
	if _, ok := d.values[key]; !ok {
		return d
	}
	delete(d.values, key)
	for i, k := range d.keys {
		if k == key {
			d.keys = append(d.keys[:i], d.keys[i+1:]...)
			break
		}
	}
	return d
}

// Keys returns a copy of the keys in insertion order.
func (d *Document) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

func (d *Document) Len() int {
	return len(d.keys)
}

// OrNil returns nil when d has no keys, so an empty sub-document can be handed
// to Set and be omitted.
func (d *Document) OrNil() *Document {
	if d == nil || d.Len() == 0 {
		return nil
	}
	return d
}

// MarshalJSON writes the document as a JSON object in insertion order.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.writeTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (d *Document) writeTo(buf *bytes.Buffer) error {
	buf.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if err := writeValue(buf, d.values[k]); err != nil {
			return fmt.Errorf("key %q: %w", k, err)
		}
	}
	buf.WriteByte('}')
	return nil
}

func writeValue(buf *bytes.Buffer, v any) error {
	switch val := v.(type) {
	case *Document:
		return val.writeTo(buf)
	case []*Document:
		buf.WriteByte('[')
		for i, sub := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			if sub == nil {
				sub = New()
			}
			if err := sub.writeTo(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	case json.RawMessage:
		if !json.Valid(val) {
			return fmt.Errorf("invalid raw json")
		}
		if bytes.Equal(bytes.TrimSpace(val), []byte("null")) {
			return fmt.Errorf("raw json is null")
		}
		buf.Write(val)
		return nil
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return err
		}
		buf.Write(b)
		return nil
	}
}

func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
