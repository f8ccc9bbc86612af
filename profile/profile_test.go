package profile

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/corinthian/voiceattack-vap-builder/errs"
)

func testProfile() *Profile {
	return &Profile{
		ID:   uuid.New(),
		Name: "Test Profile",
		Commands: []Command{
			{
				ID:       uuid.New(),
				BaseID:   uuid.New(),
				Trigger:  "[press;] alpha",
				Category: "keyboard",
				Actions:  []Action{NewPressKey([]uint16{65}, 0)},
			},
			{
				ID:       uuid.New(),
				BaseID:   uuid.New(),
				Trigger:  "scroll left",
				Category: "mouse",
				Actions:  []Action{NewMouseAction("SL", 5)},
			},
		},
	}
}

func TestConstructorDefaults(t *testing.T) {
	t.Run("press key duration", func(t *testing.T) {
		require.Equal(t, DefaultPressDuration, NewPressKey([]uint16{65}, 0).Duration)
		require.Equal(t, 0.25, NewPressKey([]uint16{65}, 0.25).Duration)
	})

	t.Run("pause duration", func(t *testing.T) {
		require.Equal(t, DefaultPauseDuration, NewPause(0).Duration)
		require.Equal(t, 2.0, NewPause(2).Duration)
	})

	t.Run("volume clamp", func(t *testing.T) {
		require.Equal(t, 0, NewSay("hi", -5, 0).Volume)
		require.Equal(t, 100, NewSay("hi", 250, 0).Volume)
		require.Equal(t, 80, NewSay("hi", 80, 0).Volume)
	})

	t.Run("fresh identifiers", func(t *testing.T) {
		a := NewPause(1)
		b := NewPause(1)
		require.NotEqual(t, a.ActionID(), b.ActionID())
	})
}

func TestValidate(t *testing.T) {
	t.Run("valid profile", func(t *testing.T) {
		require.NoError(t, testProfile().Validate())
	})

	t.Run("duplicate command id", func(t *testing.T) {
		p := testProfile()
		p.Commands[1].ID = p.Commands[0].ID

		err := p.Validate()
		require.ErrorIs(t, err, errs.ErrDuplicateCommandID)
	})

	t.Run("empty action list", func(t *testing.T) {
		p := testProfile()
		p.Commands[0].Actions = nil

		err := p.Validate()
		require.ErrorIs(t, err, errs.ErrNoActions)
		require.Contains(t, err.Error(), "[press;] alpha")
	})

	t.Run("empty key codes", func(t *testing.T) {
		p := testProfile()
		p.Commands[0].Actions = []Action{NewKeyDown(nil)}

		require.ErrorIs(t, p.Validate(), errs.ErrEmptyKeyCodes)
	})
}

func TestEqualActions(t *testing.T) {
	tests := []struct {
		name string
		a, b Action
		want bool
	}{
		{
			name: "identifiers ignored",
			a:    PressKey{ID: uuid.New(), KeyCodes: []uint16{65}, Duration: 0.1},
			b:    PressKey{ID: uuid.New(), KeyCodes: []uint16{65}, Duration: 0.1},
			want: true,
		},
		{
			name: "different variant",
			a:    NewKeyDown([]uint16{17}),
			b:    NewKeyUp([]uint16{17}),
			want: false,
		},
		{
			name: "key code order significant",
			a:    NewKeyDown([]uint16{17, 67}),
			b:    NewKeyDown([]uint16{67, 17}),
			want: false,
		},
		{
			name: "mouse context and clicks",
			a:    NewMouseAction("SL", 5),
			b:    NewMouseAction("SL", 5),
			want: true,
		},
		{
			name: "mouse clicks differ",
			a:    NewMouseAction("SL", 5),
			b:    NewMouseAction("SL", 3),
			want: false,
		},
		{
			name: "say fields",
			a:    NewSay("hello", 100, -2),
			b:    NewSay("hello", 100, -2),
			want: true,
		},
		{
			name: "launch optionals",
			a:    NewLaunch(`C:\tool.exe`, "-v", ""),
			b:    NewLaunch(`C:\tool.exe`, "", ""),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, EqualActions(tt.a, tt.b))
		})
	}
}

func TestFingerprint(t *testing.T) {
	t.Run("stable across id changes", func(t *testing.T) {
		p := testProfile()
		fp := p.Fingerprint()

		p.ID = uuid.New()
		p.Commands[0].ID = uuid.New()
		p.Commands[0].BaseID = uuid.New()

		require.Equal(t, fp, p.Fingerprint())
	})

	t.Run("sensitive to semantic changes", func(t *testing.T) {
		p := testProfile()
		fp := p.Fingerprint()

		p.Commands[0].Trigger = "[press;] bravo"
		require.NotEqual(t, fp, p.Fingerprint())
	})

	t.Run("sensitive to action order", func(t *testing.T) {
		p := testProfile()
		p.Commands[0].Actions = []Action{
			NewKeyDown([]uint16{17}),
			NewKeyUp([]uint16{17}),
		}
		fp := p.Fingerprint()

		p.Commands[0].Actions = []Action{
			NewKeyUp([]uint16{17}),
			NewKeyDown([]uint16{17}),
		}
		require.NotEqual(t, fp, p.Fingerprint())
	})

	t.Run("field boundaries do not alias", func(t *testing.T) {
		a := &Profile{Name: "ab", Commands: []Command{{Trigger: "c", Category: "", Actions: []Action{NewPause(1)}}}}
		b := &Profile{Name: "a", Commands: []Command{{Trigger: "bc", Category: "", Actions: []Action{NewPause(1)}}}}
		require.NotEqual(t, a.Fingerprint(), b.Fingerprint())
	})
}
