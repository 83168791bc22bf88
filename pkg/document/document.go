// Package document provides an order-preserving JSON value model.
//
// Ontology documents are loosely schematized and the graph derived from them
// depends on the order in which keys appear: the tree walker emits nodes in
// document order and fuzzy matching breaks ties by creation order. Go maps do
// not keep insertion order, so objects decode into [Object], which remembers
// the order keys were first seen.
//
// Decoded values are one of:
//
//	*Object      JSON object
//	[]Value      JSON array
//	string       JSON string
//	json.Number  JSON number (raw text kept for exact round-trips)
//	bool         JSON true/false
//	nil          JSON null
package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// Value is any decoded JSON value. See the package documentation for the
// concrete types it may hold.
type Value = any

// Sentinel errors returned by the decoders.
var (
	// ErrInvalidJSON is returned when the input is not well-formed JSON.
	ErrInvalidJSON = errors.New("invalid JSON")

	// ErrNotObject is returned by DecodeObject when the top-level value is not an object.
	ErrNotObject = errors.New("top-level value is not an object")
)

// Object is a JSON object that preserves key order.
// The zero value is an empty object ready to use.
type Object struct {
	keys   []string
	values map[string]Value
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{}
}

// Set stores v under key. Setting an existing key replaces the value but
// keeps the key at its original position.
func (o *Object) Set(key string, v Value) {
	if o.values == nil {
		o.values = make(map[string]Value)
	}
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.values[key]
	return v, ok
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Len returns the number of keys.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Keys returns a copy of the keys in document order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	return append([]string(nil), o.keys...)
}

// Each calls fn for every entry in document order until fn returns false.
func (o *Object) Each(fn func(key string, v Value) bool) {
	if o == nil {
		return
	}
	for _, k := range o.keys {
		if !fn(k, o.values[k]) {
			return
		}
	}
}

// Clone returns a shallow copy of o.
func (o *Object) Clone() *Object {
	out := NewObject()
	o.Each(func(k string, v Value) bool {
		out.Set(k, v)
		return true
	})
	return out
}

// MarshalJSON encodes the object with keys in document order.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	var err error
	i := 0
	o.Each(func(k string, v Value) bool {
		if i > 0 {
			buf.WriteByte(',')
		}
		i++
		if err = writeMember(&buf, k, v); err != nil {
			return false
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, replacing the receiver's contents.
func (o *Object) UnmarshalJSON(data []byte) error {
	obj, err := DecodeObject(data)
	if err != nil {
		return err
	}
	*o = *obj
	return nil
}

func writeMember(buf *bytes.Buffer, key string, v Value) error {
	kb, err := json.Marshal(key)
	if err != nil {
		return err
	}
	vb, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	buf.Write(kb)
	buf.WriteByte(':')
	buf.Write(vb)
	return nil
}

// =============================================================================
// Decoding
// =============================================================================

// Decode parses JSON bytes into a Value.
func Decode(data []byte) (Value, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	return fromResult(gjson.ParseBytes(data)), nil
}

// DecodeObject parses JSON bytes that must hold an object at the top level.
func DecodeObject(data []byte) (*Object, error) {
	v, err := Decode(data)
	if err != nil {
		return nil, err
	}
	obj, ok := v.(*Object)
	if !ok {
		return nil, ErrNotObject
	}
	return obj, nil
}

func fromResult(r gjson.Result) Value {
	switch {
	case r.IsObject():
		obj := NewObject()
		r.ForEach(func(k, v gjson.Result) bool {
			obj.Set(k.String(), fromResult(v))
			return true
		})
		return obj
	case r.IsArray():
		arr := []Value{}
		r.ForEach(func(_, v gjson.Result) bool {
			arr = append(arr, fromResult(v))
			return true
		})
		return arr
	}

	switch r.Type {
	case gjson.String:
		return r.Str
	case gjson.Number:
		return json.Number(r.Raw)
	case gjson.True:
		return true
	case gjson.False:
		return false
	default:
		return nil
	}
}

// =============================================================================
// Type Assertions
// =============================================================================

// AsObject returns v as an object when it is one.
func AsObject(v Value) (*Object, bool) {
	obj, ok := v.(*Object)
	return obj, ok && obj != nil
}

// AsArray returns v as an array when it is one.
func AsArray(v Value) ([]Value, bool) {
	arr, ok := v.([]Value)
	return arr, ok
}

// AsString returns v as a string when it is one.
func AsString(v Value) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// String returns the string stored under key, or "" when the key is missing
// or holds a non-string value.
func (o *Object) String(key string) string {
	v, _ := o.Get(key)
	s, _ := AsString(v)
	return s
}
