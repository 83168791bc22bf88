package document

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestDecodeObjectPreservesOrder(t *testing.T) {
	obj, err := DecodeObject([]byte(`{"zeta": 1, "alpha": 2, "mid": {"b": true, "a": null}}`))
	if err != nil {
		t.Fatalf("DecodeObject: %v", err)
	}

	if got, want := obj.Keys(), []string{"zeta", "alpha", "mid"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}

	mid, ok := AsObject(mustGet(t, obj, "mid"))
	if !ok {
		t.Fatal("mid should decode as *Object")
	}
	if got, want := mid.Keys(), []string{"b", "a"}; !reflect.DeepEqual(got, want) {
		t.Errorf("nested Keys() = %v, want %v", got, want)
	}
}

func TestDecodeScalarTypes(t *testing.T) {
	obj, err := DecodeObject([]byte(`{"s": "x", "n": 1.50, "t": true, "f": false, "z": null, "a": [1, "b"]}`))
	if err != nil {
		t.Fatalf("DecodeObject: %v", err)
	}

	tests := []struct {
		key  string
		want Value
	}{
		{"s", "x"},
		{"n", json.Number("1.50")},
		{"t", true},
		{"f", false},
		{"z", nil},
		{"a", []Value{json.Number("1"), "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got := mustGet(t, obj, tt.key)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("%s = %#v, want %#v", tt.key, got, tt.want)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := Decode([]byte(`{"a":`)); !errors.Is(err, ErrInvalidJSON) {
		t.Errorf("Decode(malformed) error = %v, want ErrInvalidJSON", err)
	}
	if _, err := DecodeObject([]byte(`[1, 2]`)); !errors.Is(err, ErrNotObject) {
		t.Errorf("DecodeObject(array) error = %v, want ErrNotObject", err)
	}
	if _, err := DecodeObject([]byte(`"text"`)); !errors.Is(err, ErrNotObject) {
		t.Errorf("DecodeObject(string) error = %v, want ErrNotObject", err)
	}
}

func TestSetKeepsFirstPosition(t *testing.T) {
	obj := NewObject()
	obj.Set("a", 1)
	obj.Set("b", 2)
	obj.Set("a", 3)

	if got, want := obj.Keys(), []string{"a", "b"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if v, _ := obj.Get("a"); v != 3 {
		t.Errorf("a = %v, want 3", v)
	}
}

func TestMarshalJSONKeepsOrder(t *testing.T) {
	src := `{"zeta":1,"alpha":{"y":"q","x":[true,null]},"n":2.50}`
	obj, err := DecodeObject([]byte(src))
	if err != nil {
		t.Fatalf("DecodeObject: %v", err)
	}

	out, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(out) != src {
		t.Errorf("Marshal = %s, want %s", out, src)
	}
}

func TestUnmarshalJSONIntoField(t *testing.T) {
	var holder struct {
		Props *Object `json:"props"`
	}
	if err := json.Unmarshal([]byte(`{"props": {"b": 1, "a": 2}}`), &holder); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got, want := holder.Props.Keys(), []string{"b", "a"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestNilObjectIsEmpty(t *testing.T) {
	var obj *Object
	if obj.Len() != 0 {
		t.Errorf("Len() = %d, want 0", obj.Len())
	}
	if obj.Has("x") {
		t.Error("nil object should not have keys")
	}
	if obj.String("x") != "" {
		t.Error("String() on nil object should be empty")
	}
}

func mustGet(t *testing.T, obj *Object, key string) Value {
	t.Helper()
	v, ok := obj.Get(key)
	if !ok {
		t.Fatalf("missing key %q", key)
	}
	return v
}
