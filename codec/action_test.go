package codec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corinthian/voiceattack-vap-builder/errs"
	"github.com/corinthian/voiceattack-vap-builder/profile"
	"github.com/corinthian/voiceattack-vap-builder/wire"
)

func encodeAction(t *testing.T, a profile.Action) []byte {
	t.Helper()

	w := wire.NewWriter()
	require.NoError(t, AppendAction(w, a))

	return w.Bytes()
}

func TestActionRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		action profile.Action
	}{
		{"press key single", profile.NewPressKey([]uint16{65}, 0)},
		{"press key chord", profile.NewPressKey([]uint16{162, 67}, 0.25)},
		{"press key explicit default", profile.NewPressKey([]uint16{90}, 0.1)},
		{"key down", profile.NewKeyDown([]uint16{17})},
		{"key up", profile.NewKeyUp([]uint16{17})},
		{"key toggle", profile.NewKeyToggle([]uint16{20})},
		{"mouse click", profile.NewMouseAction("LC", 0)},
		{"mouse long code", profile.NewMouseAction("RDC", 0)},
		{"mouse scroll", profile.NewMouseAction("SL", 5)},
		{"mouse scroll fractional", profile.NewMouseAction("SF", 2.5)},
		{"pause default", profile.NewPause(0)},
		{"pause explicit", profile.NewPause(3.5)},
		{"say", profile.NewSay("shields up", 80, -2)},
		{"say empty text", profile.NewSay("", 100, 0)},
		{"launch full", profile.NewLaunch(`C:\tools\run.exe`, "--fast", `C:\tools`)},
		{"launch path only", profile.NewLaunch(`C:\game.exe`, "", "")},
		{"execute command", profile.NewExecuteCommand("reset shields")},
		{"set clipboard", profile.NewSetClipboard("coordinates <12, 40>")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := encodeAction(t, tt.action)

			r := wire.NewReader(data)
			got, err := ReadAction(r)
			require.NoError(t, err)
			require.Equal(t, 0, r.Remaining(), "record not fully consumed")

			require.True(t, profile.EqualActions(tt.action, got),
				"decoded %#v, want %#v", got, tt.action)
		})
	}
}

func TestObservedKeyRecord(t *testing.T) {
	// The historical 56-byte single-key record: zero lead, discriminant 1,
	// key code, zero list terminator, 16 bytes 0xFF, 16 bytes zero, 8 bytes
	// 0xFF. A PressKey with the default duration must reproduce it exactly.
	want := bytes.Join([][]byte{
		{0x00, 0x00, 0x00, 0x00},
		{0x01, 0x00, 0x00, 0x00},
		{0x41, 0x00, 0x00, 0x00},
		{0x00, 0x00, 0x00, 0x00},
		bytes.Repeat([]byte{0xFF}, 16),
		bytes.Repeat([]byte{0x00}, 16),
		bytes.Repeat([]byte{0xFF}, 8),
	}, nil)

	got := encodeAction(t, profile.NewPressKey([]uint16{0x41}, 0))
	require.Len(t, got, 56)
	require.Equal(t, want, got)

	a, err := ReadAction(wire.NewReader(want))
	require.NoError(t, err)

	pk, ok := a.(profile.PressKey)
	require.True(t, ok)
	require.Equal(t, []uint16{0x41}, pk.KeyCodes)
	require.Equal(t, profile.DefaultPressDuration, pk.Duration)
}

func TestScrollClicksPrecedeContext(t *testing.T) {
	// The scroll-click double sits at a fixed negative offset from the
	// context string's length prefix: 8 bytes of double plus 16 bytes of
	// zero padding.
	data := encodeAction(t, profile.NewMouseAction("SL", 5))

	prefix := []byte{0x02, 0x00, 0x00, 0x00, 'S', 'L'}
	idx := bytes.Index(data, prefix)
	require.NotEqual(t, -1, idx)
	require.Equal(t, idx-24, leadSize+4, "double must sit 24 bytes before the context string")

	r := wire.NewReader(data[idx-24:])
	clicks, err := r.Float64()
	require.NoError(t, err)
	require.Equal(t, 5.0, clicks)
}

func TestReadActionRejectsCorruptRecords(t *testing.T) {
	base := encodeAction(t, profile.NewPressKey([]uint16{65}, 0))

	corrupt := func(mut func(b []byte)) []byte {
		b := append([]byte(nil), base...)
		mut(b)
		return b
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"nonzero lead", corrupt(func(b []byte) { b[0] = 0x01 })},
		{"unknown discriminant", corrupt(func(b []byte) { b[4] = 0x7F })},
		{"broken ff sentinel", corrupt(func(b []byte) { b[20] = 0x00 })},
		{"broken zero padding", corrupt(func(b []byte) { b[45] = 0xAB })},
		{"broken terminator", corrupt(func(b []byte) { b[55] = 0x00 })},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadAction(wire.NewReader(tt.data))
			require.ErrorIs(t, err, errs.ErrUnknownActionType)
		})
	}

	t.Run("truncated record", func(t *testing.T) {
		_, err := ReadAction(wire.NewReader(base[:30]))
		require.ErrorIs(t, err, errs.ErrTruncatedBuffer)
	})

	t.Run("key code out of range", func(t *testing.T) {
		b := corrupt(func(b []byte) { b[10] = 0x01 }) // key code 0x10041
		_, err := ReadAction(wire.NewReader(b))
		require.ErrorIs(t, err, errs.ErrUnknownActionType)
	})
}

func TestAppendActionRejectsBadInput(t *testing.T) {
	w := wire.NewWriter()

	t.Run("empty key codes", func(t *testing.T) {
		err := AppendAction(w, profile.PressKey{KeyCodes: nil, Duration: 0.1})
		require.ErrorIs(t, err, errs.ErrEmptyKeyCodes)
	})

	t.Run("zero key code", func(t *testing.T) {
		err := AppendAction(w, profile.PressKey{KeyCodes: []uint16{0}, Duration: 0.1})
		require.ErrorIs(t, err, errs.ErrUnsupportedKeyName)
	})

	t.Run("context too long", func(t *testing.T) {
		err := AppendAction(w, profile.MouseAction{Context: "SCROLL"})
		require.ErrorIs(t, err, errs.ErrUnsupportedMouseGesture)
	})

	t.Run("context empty", func(t *testing.T) {
		err := AppendAction(w, profile.MouseAction{Context: ""})
		require.ErrorIs(t, err, errs.ErrUnsupportedMouseGesture)
	})
}

func TestNonDefaultDurationsSurvive(t *testing.T) {
	a := profile.NewPressKey([]uint16{65}, 0.75)
	got, err := ReadAction(wire.NewReader(encodeAction(t, a)))
	require.NoError(t, err)
	require.Equal(t, 0.75, got.(profile.PressKey).Duration)

	p := profile.NewPause(1.25)
	got, err = ReadAction(wire.NewReader(encodeAction(t, p)))
	require.NoError(t, err)
	require.Equal(t, 1.25, got.(profile.Pause).Duration)
}
