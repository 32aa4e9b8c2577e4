package daytime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const nistResponse = "\n58000 24-01-15 12:34:56 00 0 0 150.0 UTC(NIST) * \n"

func TestExtract(t *testing.T) {
	field, err := Extract(nistResponse)
	require.NoError(t, err)
	require.Equal(t, "24-01-15 12:34:56", field)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     time.Time
	}{
		{
			name:     "nist line",
			response: nistResponse,
			want:     time.Date(2024, time.January, 15, 12, 34, 56, 0, time.UTC),
		},
		{
			name:     "exactly the field",
			response: "\n60000 99-12-31 23:59:59",
			want:     time.Date(1999, time.December, 31, 23, 59, 59, 0, time.UTC),
		},
		{
			name:     "two digit year below 69 is this century",
			response: "\n60000 68-06-01 00:00:00 00 0 0   0.0 UTC(NIST) *\n",
			want:     time.Date(2068, time.June, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "leap indicator set",
			response: "\n57753 16-12-31 23:59:58 00 1 0  50.0 UTC(NIST) *\n",
			want:     time.Date(2016, time.December, 31, 23, 59, 58, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.response)
			require.NoError(t, err)
			require.True(t, tt.want.Equal(got), "got %v, want %v", got, tt.want)
			require.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"empty", ""},
		{"shorter than 24 bytes", "\n58000 24-01-15 12:34:5"},
		{"missing leading newline", "58000 24-01-15 12:34:56 00 0 0 150.0 UTC(NIST) *\n"},
		{"letters in date", "\n58000 2x-01-15 12:34:56 00 0 0 150.0 UTC(NIST) *\n"},
		{"wrong separator", "\n58000 24/01/15 12:34:56 00 0 0 150.0 UTC(NIST) *\n"},
		{"month out of range", "\n58000 24-13-15 12:34:56 00 0 0 150.0 UTC(NIST) *\n"},
		{"hour out of range", "\n58000 24-01-15 25:34:56 00 0 0 150.0 UTC(NIST) *\n"},
		{"day out of range", "\n58000 23-02-29 12:34:56 00 0 0 150.0 UTC(NIST) *\n"},
		{"garbage", "this is not a daytime response at all"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got time.Time
			var err error
			require.NotPanics(t, func() { got, err = Parse(tt.response) })
			require.Error(t, err)
			require.True(t, got.IsZero())

			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			require.Equal(t, tt.response, perr.Response)
		})
	}
}

func BenchmarkParse(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Parse(nistResponse)
	}
}
