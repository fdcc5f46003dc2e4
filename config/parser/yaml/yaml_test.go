package yaml

import (
	"testing"

	"github.com/0xalexb/hjarta-flagconf/value"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse_Document(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	data := []byte(`
name: test-app
version: "1.0"
port: 8080
ratio: 3.14159
debug: true
`)

	tree, err := parser.Parse(data)
	require.NoError(t, err)

	obj, ok := tree.AsObject()
	require.True(t, ok)
	assert.Equal(t, []string{"name", "version", "port", "ratio", "debug"}, obj.Keys())

	name, _ := obj.Get("name")
	assert.True(t, name.Equal(value.String("test-app")))

	version, _ := obj.Get("version")
	assert.True(t, version.Equal(value.String("1.0")))

	port, _ := obj.Get("port")
	assert.True(t, port.IsInt())
	assert.True(t, port.Equal(value.Int(8080)))

	ratio, _ := obj.Get("ratio")
	f, ok := ratio.AsFloat()
	require.True(t, ok)
	assert.InDelta(t, 3.14159, f, 0.00001)

	debug, _ := obj.Get("debug")
	assert.True(t, debug.Equal(value.Bool(true)))
}

func TestParser_Parse_NestedOrder(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	data := []byte(`
database:
  replica:
    host: replica.db.com
  primary:
    host: primary.db.com
hosts:
  - host1.example.com
  - name: host2
    weight: 2
`)

	tree, err := parser.Parse(data)
	require.NoError(t, err)

	db, ok := value.Lookup(tree, "database")
	require.True(t, ok)

	dbObj, ok := db.AsObject()
	require.True(t, ok)
	assert.Equal(t, []string{"replica", "primary"}, dbObj.Keys())

	host, ok := value.Lookup(tree, "database:primary:host")
	require.True(t, ok)
	assert.True(t, host.Equal(value.String("primary.db.com")))

	hosts, ok := value.Lookup(tree, "hosts")
	require.True(t, ok)

	items, ok := hosts.AsList()
	require.True(t, ok)
	require.Len(t, items, 2)
	assert.True(t, items[0].Equal(value.String("host1.example.com")))

	weight, ok := value.Lookup(items[1], "weight")
	require.True(t, ok)
	assert.True(t, weight.Equal(value.Int(2)))
}

func TestParser_Parse_NullValues(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	tree, err := parser.Parse([]byte("a: ~\nb: null\nc:\n"))
	require.NoError(t, err)

	for _, key := range []string{"a", "b", "c"} {
		got, ok := value.Lookup(tree, key)
		require.True(t, ok, key)
		assert.True(t, got.IsNull(), key)
	}
}

func TestParser_Parse_Anchors(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	data := []byte(`
base: &base
  host: localhost
copy: *base
`)

	tree, err := parser.Parse(data)
	require.NoError(t, err)

	host, ok := value.Lookup(tree, "copy:host")
	require.True(t, ok)
	assert.True(t, host.Equal(value.String("localhost")))
}

func TestParser_Parse_ScalarDocument(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	tree, err := parser.Parse([]byte("just a string"))
	require.NoError(t, err)
	assert.Equal(t, value.KindString, tree.Kind())
}

func TestParser_Parse_CommentOnly(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	tree, err := parser.Parse([]byte("# nothing here\n"))
	require.NoError(t, err)
	assert.True(t, tree.IsNull())
}

func TestParser_Parse_EmptyData(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	_, err := parser.Parse([]byte{})
	require.ErrorIs(t, err, ErrEmptyData)

	_, err = parser.Parse([]byte("  \n\t"))
	require.ErrorIs(t, err, ErrEmptyData)
}

func TestParser_Parse_InvalidYAML(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	data := []byte(`
invalid: yaml: content: [
`)

	_, err := parser.Parse(data)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal error")
}
