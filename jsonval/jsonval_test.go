package jsonval_test

import (
	"strings"
	"testing"

	"github.com/jaxydog/ochre/jsonval"
)

func TestDecode_Document(t *testing.T) {
	data := []byte(`{"name":"ochre","count":3,"ratio":0.5,"tags":["a","b"],"ok":true,"gone":null}`)
	v, err := jsonval.Decode(data)
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if v.Kind() != jsonval.KindObject || v.Len() != 6 {
		t.Fatalf("unexpected shape: %v len=%d", v.Kind(), v.Len())
	}

	name, _ := v.Get("name")
	if s, err := name.AsString(); err != nil || s != "ochre" {
		t.Fatalf("name: %q %v", s, err)
	}
	count, _ := v.Get("count")
	if n, err := count.AsNumber(); err != nil || n.String() != "3" {
		t.Fatalf("count: %v %v", n, err)
	}
	tags, _ := v.Get("tags")
	items, err := tags.AsArray()
	if err != nil || len(items) != 2 {
		t.Fatalf("tags: %v %v", items, err)
	}
	gone, _ := v.Get("gone")
	if !gone.IsNull() {
		t.Fatalf("expected null")
	}
}

func TestDecode_PreservesNumberLiteral(t *testing.T) {
	v, err := jsonval.Decode([]byte(`1.230`))
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	n, err := v.AsNumber()
	if err != nil {
		t.Fatalf("as number err: %v", err)
	}
	if n.String() != "1.230" {
		t.Fatalf("literal not preserved: %q", n)
	}
}

func TestDecode_RejectsDuplicateKeys(t *testing.T) {
	_, err := jsonval.Decode([]byte(`{"a":1,"a":2}`))
	if err == nil || !strings.Contains(err.Error(), "duplicate object key") {
		t.Fatalf("expected duplicate key error, got %v", err)
	}
}

func TestDecode_RejectsTrailingContent(t *testing.T) {
	if _, err := jsonval.Decode([]byte(`1 2`)); err == nil {
		t.Fatalf("expected trailing content error")
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	original := jsonval.Object(
		jsonval.Member{Key: "b", Value: jsonval.Bool(true)},
		jsonval.Member{Key: "a", Value: jsonval.Array(jsonval.Int(1), jsonval.Float(2.5), jsonval.Null())},
		jsonval.Member{Key: "s", Value: jsonval.String("hi \"there\"")},
	)
	data, err := jsonval.Encode(original)
	if err != nil {
		t.Fatalf("encode err: %v", err)
	}
	decoded, err := jsonval.Decode(data)
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if !jsonval.Equal(original, decoded) {
		t.Fatalf("roundtrip mismatch: %s", data)
	}
}

func TestEncode_PreservesMemberOrder(t *testing.T) {
	v := jsonval.Object(
		jsonval.Member{Key: "z", Value: jsonval.Int(1)},
		jsonval.Member{Key: "a", Value: jsonval.Int(2)},
	)
	data, err := jsonval.Encode(v)
	if err != nil {
		t.Fatalf("encode err: %v", err)
	}
	if string(data) != `{"z":1,"a":2}` {
		t.Fatalf("order not preserved: %s", data)
	}
}

func TestAccessors_KindErrors(t *testing.T) {
	v := jsonval.String("nope")
	if _, err := v.AsNumber(); err == nil {
		t.Fatalf("expected kind error")
	} else if ke, ok := err.(*jsonval.KindError); !ok {
		t.Fatalf("expected *KindError, got %T", err)
	} else if ke.Want != jsonval.KindNumber || ke.Got != jsonval.KindString {
		t.Fatalf("unexpected kinds: %v", ke)
	}
	if _, err := v.AsBool(); err == nil {
		t.Fatalf("expected kind error")
	}
	if _, err := v.AsArray(); err == nil {
		t.Fatalf("expected kind error")
	}
	if _, err := v.AsObject(); err == nil {
		t.Fatalf("expected kind error")
	}
}

func TestObject_RepeatedKeyOverwritesInPlace(t *testing.T) {
	v := jsonval.Object(
		jsonval.Member{Key: "a", Value: jsonval.Int(1)},
		jsonval.Member{Key: "b", Value: jsonval.Int(2)},
		jsonval.Member{Key: "a", Value: jsonval.Int(3)},
	)
	if v.Len() != 2 {
		t.Fatalf("expected 2 members, got %d", v.Len())
	}
	got, _ := v.Get("a")
	if n, _ := got.AsNumber(); n.String() != "3" {
		t.Fatalf("expected overwrite, got %v", n)
	}
	members, _ := v.AsObject()
	if members[0].Key != "a" {
		t.Fatalf("position not preserved: %v", members)
	}
}

func TestEqual_ObjectOrderInsensitive(t *testing.T) {
	a := jsonval.Object(
		jsonval.Member{Key: "x", Value: jsonval.Int(1)},
		jsonval.Member{Key: "y", Value: jsonval.Int(2)},
	)
	b := jsonval.Object(
		jsonval.Member{Key: "y", Value: jsonval.Int(2)},
		jsonval.Member{Key: "x", Value: jsonval.Int(1)},
	)
	if !jsonval.Equal(a, b) {
		t.Fatalf("objects should compare order-insensitively")
	}
	if jsonval.Equal(a, jsonval.Object(jsonval.Member{Key: "x", Value: jsonval.Int(1)})) {
		t.Fatalf("different member sets must not be equal")
	}
}
