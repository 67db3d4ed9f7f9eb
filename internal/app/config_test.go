package app

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		in      Config
		want    *Config
		wantErr string
	}{
		{
			name: "defaults fill empty log settings",
			in:   Config{},
			want: &Config{LogLevel: "warn", LogFormat: "text"},
		},
		{
			name: "values are lowercased",
			in:   Config{LogLevel: "DEBUG", LogFormat: "JSON", Color: true},
			want: &Config{LogLevel: "debug", LogFormat: "json", Color: true},
		},
		{
			name: "single shot keeps raw throw",
			in:   Config{Throw: "Rock ", SingleShot: true, LogLevel: "error"},
			want: &Config{Throw: "Rock ", SingleShot: true, LogLevel: "error", LogFormat: "text"},
		},
		{
			name:    "unknown level",
			in:      Config{LogLevel: "trace"},
			wantErr: "invalid log-level",
		},
		{
			name:    "unknown format",
			in:      Config{LogFormat: "yaml"},
			wantErr: "invalid log-format",
		},
		{
			name:    "throw without single shot",
			in:      Config{Throw: "rock"},
			wantErr: "without single-shot",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := NewConfig(tc.in)

			if tc.wantErr != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
