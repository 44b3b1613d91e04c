package switchboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSwitchTag(t *testing.T) {
	tests := []struct {
		name    string
		tag     string
		want    SwitchTag
		wantErr error
	}{
		{"name", "include", SwitchTag{Name: "include"}, nil},
		{"name_with_spaces", " include ", SwitchTag{Name: "include"}, nil},
		{"name_trailing_delimiter", "include,", SwitchTag{Name: "include"}, nil},
		{"leftovers", ",leftovers", SwitchTag{Leftovers: true}, nil},
		{"ignore", "-", SwitchTag{Ignore: true}, nil},
		{"empty", "", SwitchTag{}, ErrEmptySwitchTag},
		{"only_delimiter", ",", SwitchTag{}, ErrEmptySwitchTag},
		{"unknown_modifier", "include,omitempty", SwitchTag{}, ErrUnknownTagModifier},
		{"leftovers_with_name", "include,leftovers", SwitchTag{}, ErrUnknownTagModifier},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSwitchTag(tt.tag)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
