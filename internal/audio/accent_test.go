package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccent_Set(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    Accent
		wantErr bool
	}{
		{name: "us", value: "us", want: AccentPrimary},
		{name: "primary", value: "primary", want: AccentPrimary},
		{name: "uk", value: "uk", want: AccentAlternate},
		{name: "alternate upper case", value: "ALTERNATE", want: AccentAlternate},
		{name: "unknown", value: "au", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var accent Accent
			err := accent.Set(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid accent")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, accent)
		})
	}
}

func TestAccent_String(t *testing.T) {
	assert.Equal(t, "us", AccentPrimary.String())
	assert.Equal(t, "uk", AccentAlternate.String())
	accent := AccentPrimary
	assert.Equal(t, "accent", accent.Type())
}

func TestURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		term    string
		accent  Accent
		want    string
		wantErr bool
	}{
		{
			name:   "default base with primary accent",
			term:   "apple",
			accent: AccentPrimary,
			want:   "https://dict.youdao.com/dictvoice?audio=apple&type=0",
		},
		{
			name:   "alternate accent",
			term:   "apple",
			accent: AccentAlternate,
			want:   "https://dict.youdao.com/dictvoice?audio=apple&type=1",
		},
		{
			name:    "term is escaped",
			baseURL: "http://localhost:8080/voice",
			term:    "ice cream&co",
			accent:  AccentPrimary,
			want:    "http://localhost:8080/voice?audio=ice+cream%26co&type=0",
		},
		{
			name:    "invalid base url",
			baseURL: "http://[::1",
			term:    "apple",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := URL(tt.baseURL, tt.term, tt.accent)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
