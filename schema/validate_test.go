package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema_Validate_OK(t *testing.T) {
	t.Parallel()

	s := Schema{
		BaseName: "app",
		Formats:  []string{"yaml", "yml", "json", "toml", "hcl"},
		Fields: []Field{
			{Key: "port", Short: "p", Type: Int, Default: 8080},
			{Key: "debug", Kind: Boolean, Default: false},
			{Key: "database_url", Availability: ConfigOnly},
			{Key: "server:host", Default: "localhost"},
			{Key: "server:port", Type: Int},
			{Key: "serverless", Kind: Boolean},
			{Key: "extend_list", Kind: List, Default: []string{"x"}},
			{Key: "overwrite_list", Kind: List, MultiValue: Overwrite},
			{Key: "internal_state", Availability: Internal},
			{Key: "target", Availability: CliOnly, Positional: true},
			{Key: "commands", Kind: List, Availability: CliOnly, Positional: true},
		},
	}

	require.NoError(t, s.Validate())
}

func TestSchema_Validate_Violations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		fields []Field
		want   string
	}{
		{
			name:   "empty key",
			fields: []Field{{Key: ""}},
			want:   "Key",
		},
		{
			name:   "empty key segment",
			fields: []Field{{Key: "server::port"}},
			want:   "non-empty",
		},
		{
			name:   "positional not cli only",
			fields: []Field{{Key: "cmd", Positional: true}},
			want:   "must be cli_only",
		},
		{
			name:   "boolean positional",
			fields: []Field{{Key: "flag", Kind: Boolean, Availability: CliOnly, Positional: true}},
			want:   "cannot be positional",
		},
		{
			name: "positional after list",
			fields: []Field{
				{Key: "rest", Kind: List, Availability: CliOnly, Positional: true},
				{Key: "last", Availability: CliOnly, Positional: true},
			},
			want: "after list positional",
		},
		{
			name:   "duplicate key",
			fields: []Field{{Key: "port"}, {Key: "port", Availability: ConfigOnly}},
			want:   "duplicate key",
		},
		{
			name:   "key nested under another field",
			fields: []Field{{Key: "srv", Type: Int}, {Key: "srv:port", Type: Int, Default: 7}},
			want:   `field "srv:port": nested under field "srv"`,
		},
		{
			name:   "parent declared after child",
			fields: []Field{{Key: "db:pool:size", Type: Int}, {Key: "db:pool", Kind: Struct, Availability: ConfigOnly}},
			want:   `nested under field "db:pool"`,
		},
		{
			name:   "duplicate long",
			fields: []Field{{Key: "a_b"}, {Key: "a-b"}},
			want:   "already used",
		},
		{
			name:   "duplicate short",
			fields: []Field{{Key: "a", Short: "x"}, {Key: "b", Short: "x"}},
			want:   "already used",
		},
		{
			name:   "reserved long",
			fields: []Field{{Key: "config"}},
			want:   "reserved",
		},
		{
			name:   "reserved short",
			fields: []Field{{Key: "host", Short: "h"}},
			want:   "reserved",
		},
		{
			name:   "long short name",
			fields: []Field{{Key: "host", Short: "ho"}},
			want:   "Short",
		},
		{
			name:   "bool default not bool",
			fields: []Field{{Key: "debug", Kind: Boolean, Default: "yes"}},
			want:   "default",
		},
		{
			name:   "int default not int",
			fields: []Field{{Key: "port", Type: Int, Default: 1.5}},
			want:   "default",
		},
		{
			name:   "unsupported default",
			fields: []Field{{Key: "port", Default: make(chan int)}},
			want:   "default",
		},
		{
			name:   "bad availability",
			fields: []Field{{Key: "port", Availability: Availability(9)}},
			want:   "Availability",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Schema{Fields: tt.fields}.Validate()
			require.ErrorIs(t, err, ErrSchemaViolation)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSchema_Validate_ReservedNamesIgnoredOffCLI(t *testing.T) {
	t.Parallel()

	s := Schema{Fields: []Field{
		{Key: "config", Availability: ConfigOnly},
		{Key: "help", Availability: Internal},
	}}

	require.NoError(t, s.Validate())
}

func TestSchema_Validate_UnknownFormat(t *testing.T) {
	t.Parallel()

	err := Schema{Formats: []string{"ini"}}.Validate()
	require.ErrorIs(t, err, ErrSchemaViolation)
	assert.Contains(t, err.Error(), "ini")
}
