package config

import (
	"errors"
	"testing"

	"github.com/0xalexb/hjarta-flagconf/value"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockParser struct {
	parseFunc func(data []byte) (value.Value, error)
}

func (m *mockParser) Parse(data []byte) (value.Value, error) {
	return m.parseFunc(data)
}

type mockDataFetcher struct {
	fetchFunc func() ([]byte, error)
}

func (m *mockDataFetcher) Fetch() ([]byte, error) {
	return m.fetchFunc()
}

type simpleConfig struct {
	Name string `conf:"name"`
}

type configWithDefaults struct {
	Name    string `conf:"name"`
	changed bool
}

func (c *configWithDefaults) SetDefaults() bool {
	return c.changed
}

type configWithBoth struct {
	Name    string `conf:"name"`
	changed bool
	err     error
}

func (c *configWithBoth) SetDefaults() bool {
	return c.changed
}

func (c *configWithBoth) Validate() error {
	return c.err
}

func nameDocument(name string) value.Value {
	obj := value.NewObject()
	obj.Set("name", value.String(name))

	return value.FromObject(obj)
}

func staticFetcher() *mockDataFetcher {
	return &mockDataFetcher{
		fetchFunc: func() ([]byte, error) {
			return []byte("data"), nil
		},
	}
}

func TestProvider_Success(t *testing.T) {
	t.Parallel()

	target := &simpleConfig{}
	parser := &mockParser{
		parseFunc: func(_ []byte) (value.Value, error) {
			return nameDocument("test"), nil
		},
	}

	provider := Provider(target, "")

	result, err := provider(parser, staticFetcher())
	require.NoError(t, err)

	assert.Same(t, target, result)
	assert.Equal(t, "test", result.Name)
}

func TestProvider_PathNavigation(t *testing.T) {
	t.Parallel()

	root := value.NewObject()
	root.Set("service", nameDocument("nested"))

	parser := &mockParser{
		parseFunc: func(_ []byte) (value.Value, error) {
			return value.FromObject(root), nil
		},
	}

	result, err := Provider(&simpleConfig{}, "service")(parser, staticFetcher())
	require.NoError(t, err)
	assert.Equal(t, "nested", result.Name)

	_, err = Provider(&simpleConfig{}, "service:missing")(parser, staticFetcher())
	require.ErrorIs(t, err, ErrPathNotFound)
	assert.Contains(t, err.Error(), "service:missing")
}

func TestProvider_Errors(t *testing.T) {
	t.Parallel()

	fetchErr := errors.New("fetch failed")
	parseErr := errors.New("parse failed")
	validationErr := errors.New("validation failed")

	tests := []struct {
		name      string
		fetchFunc func() ([]byte, error)
		parseFunc func(data []byte) (value.Value, error)
		targetErr error
		wantErr   error
	}{
		{
			name: "fetch error",
			fetchFunc: func() ([]byte, error) {
				return nil, fetchErr
			},
			parseFunc: func(_ []byte) (value.Value, error) {
				return value.EmptyObject(), nil
			},
			targetErr: nil,
			wantErr:   fetchErr,
		},
		{
			name: "parse error",
			fetchFunc: func() ([]byte, error) {
				return []byte("data"), nil
			},
			parseFunc: func(_ []byte) (value.Value, error) {
				return value.Null(), parseErr
			},
			targetErr: nil,
			wantErr:   parseErr,
		},
		{
			name: "validation error",
			fetchFunc: func() ([]byte, error) {
				return []byte("data"), nil
			},
			parseFunc: func(_ []byte) (value.Value, error) {
				return value.EmptyObject(), nil
			},
			targetErr: validationErr,
			wantErr:   validationErr,
		},
	}

	for _, testInfo := range tests {
		t.Run(testInfo.name, func(t *testing.T) {
			t.Parallel()

			target := &configWithBoth{err: testInfo.targetErr}
			parser := &mockParser{parseFunc: testInfo.parseFunc}
			fetcher := &mockDataFetcher{fetchFunc: testInfo.fetchFunc}

			result, err := Provider(target, "")(parser, fetcher)

			assert.Nil(t, result)
			require.Error(t, err)
			require.ErrorIs(t, err, testInfo.wantErr)
		})
	}
}

func TestProvider_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		changed bool
	}{
		{
			name:    "defaults changed",
			changed: true,
		},
		{
			name:    "defaults not changed",
			changed: false,
		},
	}

	for _, testInfo := range tests {
		t.Run(testInfo.name, func(t *testing.T) {
			t.Parallel()

			target := &configWithDefaults{changed: testInfo.changed}
			parser := &mockParser{
				parseFunc: func(_ []byte) (value.Value, error) {
					return nameDocument("x"), nil
				},
			}

			result, err := Provider(target, "")(parser, staticFetcher())
			require.NoError(t, err)
			assert.Same(t, target, result)
		})
	}
}

func TestDecode_WeakScalars(t *testing.T) {
	t.Parallel()

	type target struct {
		Port    int      `conf:"port"`
		Ratio   float64  `conf:"ratio"`
		Enabled bool     `conf:"enabled"`
		Tags    []string `conf:"tags"`
		Nested  struct {
			Host string `conf:"host"`
		} `conf:"nested"`
	}

	nested := value.NewObject()
	nested.Set("host", value.String("db"))

	doc := value.NewObject()
	doc.Set("port", value.String("8080"))
	doc.Set("ratio", value.Int(2))
	doc.Set("enabled", value.Bool(true))
	doc.Set("tags", value.List(value.String("a"), value.String("b")))
	doc.Set("nested", value.FromObject(nested))

	var got target

	err := Decode(value.FromObject(doc), &got)
	require.NoError(t, err)

	assert.Equal(t, 8080, got.Port)
	assert.InDelta(t, 2.0, got.Ratio, 0)
	assert.True(t, got.Enabled)
	assert.Equal(t, []string{"a", "b"}, got.Tags)
	assert.Equal(t, "db", got.Nested.Host)
}

func TestDecode_TypeMismatch(t *testing.T) {
	t.Parallel()

	var got struct {
		Port int `conf:"port"`
	}

	inner := value.NewObject()
	inner.Set("value", value.Int(1))

	doc := value.NewObject()
	doc.Set("port", value.FromObject(inner))

	err := Decode(value.FromObject(doc), &got)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding object")
}
