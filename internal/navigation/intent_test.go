package navigation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/wordcard/internal/audio"
	"github.com/at-ishikawa/wordcard/internal/preference"
)

func TestController_Dispatch(t *testing.T) {
	tests := []struct {
		name      string
		commands  []Command
		setupMock func(c testController)
		wantIndex int
		wantOpen  bool
		wantErr   bool
	}{
		{
			name:     "advance then retreat",
			commands: []Command{{Intent: IntentAdvance}, {Intent: IntentRetreat}},
			setupMock: func(c testController) {
				gomock.InOrder(
					c.pronouncer.EXPECT().Pronounce("banana", audio.AccentPrimary),
					c.pronouncer.EXPECT().Pronounce("apple", audio.AccentPrimary),
				)
			},
			wantIndex: 0,
		},
		{
			name:     "search",
			commands: []Command{{Intent: IntentSearch, Term: "Cherry"}},
			setupMock: func(c testController) {
				c.pronouncer.EXPECT().Pronounce("cherry", audio.AccentPrimary)
			},
			wantIndex: 2,
		},
		{
			name:      "search miss",
			commands:  []Command{{Intent: IntentSearch, Term: "durian"}},
			setupMock: func(c testController) {},
			wantErr:   true,
		},
		{
			name:     "random jump",
			commands: []Command{{Intent: IntentRandomJump}},
			setupMock: func(c testController) {
				c.pronouncer.EXPECT().Pronounce(gomock.Any(), audio.AccentPrimary)
			},
			wantIndex: -1,
		},
		{
			name:     "pronounce",
			commands: []Command{{Intent: IntentPronounce, Accent: audio.AccentAlternate}},
			setupMock: func(c testController) {
				c.pronouncer.EXPECT().Pronounce("apple", audio.AccentAlternate)
			},
		},
		{
			name:     "toggle theme",
			commands: []Command{{Intent: IntentToggleTheme}},
			setupMock: func(c testController) {
				c.theme.EXPECT().Toggle(gomock.Any()).Return(preference.ThemeDark, nil)
			},
		},
		{
			name:      "open settings",
			commands:  []Command{{Intent: IntentOpenSettings}},
			setupMock: func(c testController) {},
			wantOpen:  true,
		},
		{
			name:      "open and close settings",
			commands:  []Command{{Intent: IntentOpenSettings}, {Intent: IntentCloseSettings}},
			setupMock: func(c testController) {},
		},
		{
			name:      "unknown intent",
			commands:  []Command{{Intent: Intent(99)}},
			setupMock: func(c testController) {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestController(t)
			c.Load(entries("apple", "banana", "cherry"))
			tt.setupMock(c)

			var err error
			for _, cmd := range tt.commands {
				if err = c.Dispatch(context.Background(), cmd); err != nil {
					break
				}
			}
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			index, _ := c.repository.Cursor()
			if tt.wantIndex >= 0 {
				assert.Equal(t, tt.wantIndex, index)
			} else {
				assert.NotEqual(t, 0, index)
			}
			assert.Equal(t, tt.wantOpen, c.SettingsOpen())
		})
	}
}

func TestIntent_String(t *testing.T) {
	assert.Equal(t, "randomJump", IntentRandomJump.String())
	assert.Equal(t, "closeSettings", IntentCloseSettings.String())
	assert.Equal(t, "Intent(0)", Intent(0).String())
}
