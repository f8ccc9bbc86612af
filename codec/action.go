package codec

import (
	"fmt"

	"github.com/corinthian/voiceattack-vap-builder/errs"
	"github.com/corinthian/voiceattack-vap-builder/profile"
	"github.com/corinthian/voiceattack-vap-builder/wire"
)

// Every action record shares a fixed skeleton: a 4-byte zero lead, a 4-byte
// discriminant selecting the variant, a variant-specific body, and an 8-byte
// 0xFF terminator. The single-key press record with default duration is the
// 56-byte pattern observed in shipped files:
//
//	00 00 00 00  01 00 00 00  <key u32>  00 00 00 00
//	FF x16  00 x16  FF x8
//
// where the 16 zero bytes are an 8-byte duration field (zero meaning the
// variant default) followed by 8 zero padding bytes.
const (
	discPressKey = 1 + iota
	discKeyDown
	discKeyUp
	discKeyToggle
	discMouseAction
	discPause
	discSay
	discLaunch
	discExecuteCommand
	discSetClipboard
)

const (
	leadSize       = 4
	sentinelSize   = 16 // 0xFF block inside key records
	padSize        = 16 // zero padding inside non-key records
	keyPadSize     = 8  // zero padding after a key record's duration
	terminatorSize = 8  // trailing 0xFF block on every record
)

// maxKeyCodes bounds the key list length accepted from a record. Chords in
// real profiles are at most a handful of keys; a longer run of nonzero
// words means the cursor is not positioned on a key record.
const maxKeyCodes = 64

// AppendAction encodes a single action record onto w. The record layout is
// fixed per variant; the action's identifier is not stored (the binary
// format has no slot for it).
func AppendAction(w *wire.Writer, a profile.Action) error {
	w.AppendFill(0x00, leadSize)

	switch v := a.(type) {
	case profile.PressKey:
		w.AppendUint32(discPressKey)
		if err := appendKeyBody(w, v.KeyCodes, v.Duration, profile.DefaultPressDuration); err != nil {
			return err
		}
	case profile.KeyDown:
		w.AppendUint32(discKeyDown)
		if err := appendKeyBody(w, v.KeyCodes, 0, 0); err != nil {
			return err
		}
	case profile.KeyUp:
		w.AppendUint32(discKeyUp)
		if err := appendKeyBody(w, v.KeyCodes, 0, 0); err != nil {
			return err
		}
	case profile.KeyToggle:
		w.AppendUint32(discKeyToggle)
		if err := appendKeyBody(w, v.KeyCodes, 0, 0); err != nil {
			return err
		}
	case profile.MouseAction:
		if len(v.Context) < 1 || len(v.Context) > 3 {
			return fmt.Errorf("%w: mouse context %q must be 1-3 characters", errs.ErrUnsupportedMouseGesture, v.Context)
		}

		w.AppendUint32(discMouseAction)
		w.AppendFloat64(v.ScrollClicks)
		w.AppendFill(0x00, padSize)
		if err := w.AppendString(v.Context); err != nil {
			return err
		}
	case profile.Pause:
		w.AppendUint32(discPause)
		w.AppendFloat64(durationField(v.Duration, profile.DefaultPauseDuration))
		w.AppendFill(0x00, padSize)
	case profile.Say:
		w.AppendUint32(discSay)
		w.AppendInt32(int32(profile.ClampVolume(v.Volume)))
		w.AppendInt32(int32(v.Rate))
		w.AppendFill(0x00, padSize)
		if err := w.AppendString(v.Text); err != nil {
			return err
		}
	case profile.Launch:
		w.AppendUint32(discLaunch)
		w.AppendFill(0x00, padSize)
		for _, s := range []string{v.Path, v.Args, v.WorkingDir} {
			if err := w.AppendString(s); err != nil {
				return err
			}
		}
	case profile.ExecuteCommand:
		w.AppendUint32(discExecuteCommand)
		w.AppendFill(0x00, padSize)
		if err := w.AppendString(v.CommandName); err != nil {
			return err
		}
	case profile.SetClipboard:
		w.AppendUint32(discSetClipboard)
		w.AppendFill(0x00, padSize)
		if err := w.AppendString(v.Text); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: %T", errs.ErrUnknownActionType, a)
	}

	w.AppendFill(0xFF, terminatorSize)

	return nil
}

// appendKeyBody writes the shared body of the key variants: a zero-terminated
// list of 32-bit key codes, the 0xFF sentinel block, the duration field, and
// zero padding. A duration equal to the variant default is stored as zero,
// which keeps single-key default-duration records byte-identical to the
// observed ones.
func appendKeyBody(w *wire.Writer, codes []uint16, duration, defaultDuration float64) error {
	if len(codes) == 0 {
		return errs.ErrEmptyKeyCodes
	}

	for _, c := range codes {
		if c == 0 {
			return fmt.Errorf("%w: code 0 terminates the list and cannot be stored", errs.ErrUnsupportedKeyName)
		}
		w.AppendUint32(uint32(c))
	}

	w.AppendUint32(0)
	w.AppendFill(0xFF, sentinelSize)
	w.AppendFloat64(durationField(duration, defaultDuration))
	w.AppendFill(0x00, keyPadSize)

	return nil
}

func durationField(v, def float64) float64 {
	if v == def {
		return 0
	}

	return v
}

// ReadAction decodes one action record at the reader's current position.
// The record's lead, discriminant, sentinel blocks, and terminator must all
// match the fixed layout; any deviation fails with errs.ErrUnknownActionType
// and the record's byte offset. Records carry no identifier, so the decoded
// action gets a fresh one.
func ReadAction(r *wire.Reader) (profile.Action, error) {
	start := r.Pos()

	if err := expectFill(r, 0x00, leadSize, "record lead"); err != nil {
		return nil, err
	}

	disc, err := r.Uint32()
	if err != nil {
		return nil, err
	}

	var a profile.Action

	switch disc {
	case discPressKey, discKeyDown, discKeyUp, discKeyToggle:
		a, err = readKeyBody(r, disc)
	case discMouseAction:
		a, err = readMouseBody(r)
	case discPause:
		a, err = readPauseBody(r)
	case discSay:
		a, err = readSayBody(r)
	case discLaunch:
		a, err = readLaunchBody(r)
	case discExecuteCommand:
		var name string
		if name, err = readContextBody(r); err == nil {
			a = profile.NewExecuteCommand(name)
		}
	case discSetClipboard:
		var text string
		if text, err = readContextBody(r); err == nil {
			a = profile.NewSetClipboard(text)
		}
	default:
		return nil, fmt.Errorf("%w: discriminant %#x at offset %d", errs.ErrUnknownActionType, disc, start)
	}

	if err != nil {
		return nil, fmt.Errorf("action record at offset %d: %w", start, err)
	}

	if err := expectFill(r, 0xFF, terminatorSize, "record terminator"); err != nil {
		return nil, fmt.Errorf("action record at offset %d: %w", start, err)
	}

	return a, nil
}

func readKeyBody(r *wire.Reader, disc uint32) (profile.Action, error) {
	var codes []uint16

	for {
		v, err := r.Uint32()
		if err != nil {
			return nil, err
		}

		if v == 0 {
			break
		}

		if v > 0xFFFF {
			return nil, fmt.Errorf("%w: key code %#x out of range", errs.ErrUnknownActionType, v)
		}

		if len(codes) == maxKeyCodes {
			return nil, fmt.Errorf("%w: unterminated key code list", errs.ErrUnknownActionType)
		}

		codes = append(codes, uint16(v))
	}

	if len(codes) == 0 {
		return nil, fmt.Errorf("%w: empty key code list", errs.ErrUnknownActionType)
	}

	if err := expectFill(r, 0xFF, sentinelSize, "key sentinel"); err != nil {
		return nil, err
	}

	duration, err := r.Float64()
	if err != nil {
		return nil, err
	}

	if err := expectFill(r, 0x00, keyPadSize, "key padding"); err != nil {
		return nil, err
	}

	switch disc {
	case discPressKey:
		if duration == 0 {
			duration = profile.DefaultPressDuration
		}
		return profile.NewPressKey(codes, duration), nil
	case discKeyDown:
		return profile.NewKeyDown(codes), nil
	case discKeyUp:
		return profile.NewKeyUp(codes), nil
	default:
		return profile.NewKeyToggle(codes), nil
	}
}

func readMouseBody(r *wire.Reader) (profile.Action, error) {
	clicks, err := r.Float64()
	if err != nil {
		return nil, err
	}

	if err := expectFill(r, 0x00, padSize, "mouse padding"); err != nil {
		return nil, err
	}

	context, err := r.String()
	if err != nil {
		return nil, err
	}

	if len(context) < 1 || len(context) > 3 {
		return nil, fmt.Errorf("%w: mouse context %q", errs.ErrUnknownActionType, context)
	}

	return profile.NewMouseAction(context, clicks), nil
}

func readPauseBody(r *wire.Reader) (profile.Action, error) {
	duration, err := r.Float64()
	if err != nil {
		return nil, err
	}

	if err := expectFill(r, 0x00, padSize, "pause padding"); err != nil {
		return nil, err
	}

	if duration == 0 {
		duration = profile.DefaultPauseDuration
	}

	return profile.NewPause(duration), nil
}

func readSayBody(r *wire.Reader) (profile.Action, error) {
	volume, err := r.Int32()
	if err != nil {
		return nil, err
	}

	rate, err := r.Int32()
	if err != nil {
		return nil, err
	}

	if err := expectFill(r, 0x00, padSize, "say padding"); err != nil {
		return nil, err
	}

	text, err := r.String()
	if err != nil {
		return nil, err
	}

	return profile.NewSay(text, int(volume), int(rate)), nil
}

func readLaunchBody(r *wire.Reader) (profile.Action, error) {
	if err := expectFill(r, 0x00, padSize, "launch padding"); err != nil {
		return nil, err
	}

	path, err := r.String()
	if err != nil {
		return nil, err
	}

	args, err := r.String()
	if err != nil {
		return nil, err
	}

	workingDir, err := r.String()
	if err != nil {
		return nil, err
	}

	return profile.NewLaunch(path, args, workingDir), nil
}

// readContextBody reads the shared body of the single-string variants: zero
// padding followed by one length-prefixed string.
func readContextBody(r *wire.Reader) (string, error) {
	if err := expectFill(r, 0x00, padSize, "padding"); err != nil {
		return "", err
	}

	return r.String()
}

// expectFill consumes n bytes and checks they all equal fill; a mismatch is
// a sentinel violation.
func expectFill(r *wire.Reader, fill byte, n int, what string) error {
	pos := r.Pos()

	b, err := r.Bytes(n)
	if err != nil {
		return err
	}

	for i, v := range b {
		if v != fill {
			return fmt.Errorf("%w: %s byte %#x at offset %d, want %#x",
				errs.ErrUnknownActionType, what, v, pos+i, fill)
		}
	}

	return nil
}
