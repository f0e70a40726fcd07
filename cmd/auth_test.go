package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/impa-jovem/impa/internal/account"
)

func TestApplyAvatarFlags(t *testing.T) {
	base := account.DefaultAvatar()

	tests := []struct {
		name        string
		flags       map[string]string
		wantChanged bool
		want        func(a *account.AvatarConfig)
	}{
		{"no flags", nil, false, func(*account.AvatarConfig) {}},
		{"empty hair", map[string]string{"hair": ""}, false, func(*account.AvatarConfig) {}},
		{"empty color", map[string]string{"skin": ""}, false, func(*account.AvatarConfig) {}},
		{"same value", map[string]string{"hair": string(base.HairStyle)}, false, func(*account.AvatarConfig) {}},
		{"hair", map[string]string{"hair": "afro"}, true, func(a *account.AvatarConfig) { a.HairStyle = account.HairAfro }},
		{"accessory and color", map[string]string{"accessory": "glasses", "background": "#112233"}, true, func(a *account.AvatarConfig) {
			a.Accessory = account.AccessoryGlasses
			a.BackgroundColor = "#112233"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &cobra.Command{}
			addAvatarFlags(c)
			for k, v := range tt.flags {
				require.NoError(t, c.Flags().Set(k, v))
			}

			got, changed := applyAvatarFlags(c, base)
			want := base
			tt.want(&want)
			assert.Equal(t, tt.wantChanged, changed)
			assert.Equal(t, want, got)
		})
	}
}
