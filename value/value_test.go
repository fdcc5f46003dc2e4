package value

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func obj(pairs ...any) Value {
	o := NewObject()

	for i := 0; i < len(pairs); i += 2 {
		key, _ := pairs[i].(string)
		item, _ := pairs[i+1].(Value)
		o.Set(key, item)
	}

	return FromObject(o)
}

func TestValue_Accessors(t *testing.T) {
	t.Parallel()

	b, ok := Bool(true).AsBool()
	require.True(t, ok)
	assert.True(t, b)

	i, ok := Int(42).AsInt()
	require.True(t, ok)
	assert.Equal(t, int64(42), i)

	i, ok = Float(3).AsInt()
	require.True(t, ok)
	assert.Equal(t, int64(3), i)

	_, ok = Float(3.5).AsInt()
	assert.False(t, ok)

	f, ok := Int(2).AsFloat()
	require.True(t, ok)
	assert.InDelta(t, 2.0, f, 0)

	s, ok := String("x").AsString()
	require.True(t, ok)
	assert.Equal(t, "x", s)

	_, ok = String("x").AsBool()
	assert.False(t, ok)

	assert.True(t, Null().IsNull())
	assert.True(t, Value{}.IsNull())
	assert.Equal(t, KindObject, EmptyObject().Kind())
	assert.Equal(t, 0, EmptyObject().Len())
}

func TestValue_AsIntRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		in     Value
		want   int64
		wantOK bool
	}{
		{name: "min int64", in: Float(math.MinInt64), want: math.MinInt64, wantOK: true},
		{name: "two to the 63", in: Float(1 << 63), wantOK: false},
		{name: "max int64 as float rounds up", in: Float(math.MaxInt64), wantOK: false},
		{name: "below min int64", in: Float(-1 << 64), wantOK: false},
		{name: "largest float below 2^63", in: Float(math.Nextafter(1<<63, 0)), want: 1<<63 - 1024, wantOK: true},
		{name: "int max stays exact", in: Int(math.MaxInt64), want: math.MaxInt64, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := tt.in.AsInt()
			assert.Equal(t, tt.wantOK, ok)

			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestValue_ListIsCopied(t *testing.T) {
	t.Parallel()

	items := []Value{String("a"), String("b")}
	list := List(items...)
	items[0] = String("changed")

	got, ok := list.AsList()
	require.True(t, ok)
	assert.True(t, got[0].Equal(String("a")))

	got[1] = String("changed")
	again, _ := list.AsList()
	assert.True(t, again[1].Equal(String("b")))
}

func TestValue_Equal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		left  Value
		right Value
		want  bool
	}{
		{"nulls", Null(), Null(), true},
		{"int and float", Int(1), Float(1), true},
		{"different kinds", Int(1), String("1"), false},
		{"list order matters", List(Int(1), Int(2)), List(Int(2), Int(1)), false},
		{"object order ignored", obj("a", Int(1), "b", Int(2)), obj("b", Int(2), "a", Int(1)), true},
		{"object values differ", obj("a", Int(1)), obj("a", Int(2)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.left.Equal(tt.right))
		})
	}
}

func TestValue_String(t *testing.T) {
	t.Parallel()

	v := obj("port", Int(8080), "tags", List(String("a"), Bool(true)), "ratio", Float(0.5), "none", Null())

	assert.Equal(t, `{"port":8080,"tags":["a",true],"ratio":0.5,"none":null}`, v.String())
}

func TestValue_Scalar(t *testing.T) {
	t.Parallel()

	s, ok := Int(7).Scalar()
	require.True(t, ok)
	assert.Equal(t, "7", s)

	s, ok = String("plain").Scalar()
	require.True(t, ok)
	assert.Equal(t, "plain", s)

	_, ok = List().Scalar()
	assert.False(t, ok)
}

func TestObject_Order(t *testing.T) {
	t.Parallel()

	o := NewObject()
	o.Set("z", Int(1))
	o.Set("a", Int(2))
	o.Set("m", Int(3))
	o.Set("z", Int(4))

	assert.Equal(t, []string{"z", "a", "m"}, o.Keys())

	got, ok := o.Get("z")
	require.True(t, ok)
	assert.True(t, got.Equal(Int(4)))

	assert.Equal(t, 3, o.Len())

	var nilObj *Object

	assert.Equal(t, 0, nilObj.Len())

	_, ok = nilObj.Get("x")
	assert.False(t, ok)
}

func TestObject_CloneIsDeep(t *testing.T) {
	t.Parallel()

	inner := NewObject()
	inner.Set("k", String("v"))

	outer := NewObject()
	outer.Set("inner", FromObject(inner))

	clone := outer.Clone()
	inner.Set("k", String("changed"))

	got, ok := Lookup(FromObject(clone), "inner:k")
	require.True(t, ok)
	assert.True(t, got.Equal(String("v")))
}

func TestFromNative(t *testing.T) {
	t.Parallel()

	stamp := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	v, err := FromNative(map[string]any{
		"b":     true,
		"i":     8080,
		"u":     uint64(7),
		"f":     1.5,
		"s":     "text",
		"n":     nil,
		"list":  []string{"x", "y"},
		"json":  json.Number("12"),
		"time":  stamp,
		"inner": map[any]any{"k": 1},
	})
	require.NoError(t, err)

	want := map[string]any{
		"b":     true,
		"i":     int64(8080),
		"u":     int64(7),
		"f":     1.5,
		"s":     "text",
		"n":     nil,
		"list":  []any{"x", "y"},
		"json":  int64(12),
		"time":  "2024-01-02T03:04:05Z",
		"inner": map[string]any{"k": int64(1)},
	}

	if diff := cmp.Diff(want, v.Native()); diff != "" {
		t.Errorf("FromNative mismatch (-want +got):\n%s", diff)
	}

	o, ok := v.AsObject()
	require.True(t, ok)
	assert.Equal(t, []string{"b", "f", "i", "inner", "json", "list", "n", "s", "time", "u"}, o.Keys())
}

func TestFromNative_Unsupported(t *testing.T) {
	t.Parallel()

	_, err := FromNative(map[string]any{"ch": make(chan int)})

	require.Error(t, err)
	require.ErrorIs(t, err, ErrUnsupportedType)
	assert.Contains(t, err.Error(), `key "ch"`)
}

func TestLookup(t *testing.T) {
	t.Parallel()

	v := obj("server", obj("port", Int(3000)), "name", String("app"))

	got, ok := Lookup(v, "server:port")
	require.True(t, ok)
	assert.True(t, got.Equal(Int(3000)))

	got, ok = Lookup(v, "")
	require.True(t, ok)
	assert.True(t, got.Equal(v))

	_, ok = Lookup(v, "server:missing")
	assert.False(t, ok)

	_, ok = Lookup(v, "name:nested")
	assert.False(t, ok)
}

func TestNest(t *testing.T) {
	t.Parallel()

	got := Nest("a:b", Int(1))

	assert.True(t, got.Equal(obj("a", obj("b", Int(1)))))
	assert.True(t, Nest("", Int(1)).Equal(Int(1)))
}
