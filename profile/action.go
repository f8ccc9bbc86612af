package profile

import "github.com/google/uuid"

// ActionType tags the variants of the Action sum type. The values are the
// spellings the host application stores in the XML ActionType element.
type ActionType string

const (
	TypePressKey       ActionType = "PressKey"
	TypeKeyDown        ActionType = "KeyDown"
	TypeKeyUp          ActionType = "KeyUp"
	TypeKeyToggle      ActionType = "KeyToggle"
	TypeMouseAction    ActionType = "MouseAction"
	TypePause          ActionType = "Pause"
	TypeSay            ActionType = "Say"
	TypeLaunch         ActionType = "Launch"
	TypeExecuteCommand ActionType = "ExecuteCommand"
	TypeSetClipboard   ActionType = "SetClipboard"
)

// Field defaults applied by the constructors when the caller leaves the
// value unset (zero).
const (
	DefaultPressDuration = 0.1
	DefaultPauseDuration = 0.5
)

// Action is the closed sum of every primitive operation a command can
// execute. The set of variants is fixed by the file format; binary and XML
// codecs switch exhaustively over it, so adding a variant is a localized,
// compile-time-checked change.
//
// Every variant carries a 128-bit identifier required by the persisted
// representations. The identifier is format-internal: it is unique within
// the owning command but carries no meaning for callers, and Equal ignores
// it. Action values are immutable after construction; an edit produces a
// new value.
type Action interface {
	// Type returns the variant tag.
	Type() ActionType
	// ActionID returns the format-internal identifier.
	ActionID() uuid.UUID

	isAction()
}

// PressKey presses and releases one or more keys together, holding them for
// Duration seconds.
type PressKey struct {
	ID       uuid.UUID
	KeyCodes []uint16
	Duration float64
}

// KeyDown holds the given keys down.
type KeyDown struct {
	ID       uuid.UUID
	KeyCodes []uint16
}

// KeyUp releases previously held keys.
type KeyUp struct {
	ID       uuid.UUID
	KeyCodes []uint16
}

// KeyToggle flips the held state of the given keys.
type KeyToggle struct {
	ID       uuid.UUID
	KeyCodes []uint16
}

// MouseAction performs a button or scroll gesture identified by a short
// context code (see the keymap package). ScrollClicks is meaningful only
// for the scroll context codes and is carried verbatim otherwise.
type MouseAction struct {
	ID           uuid.UUID
	Context      string
	ScrollClicks float64
}

// Pause waits for Duration seconds.
type Pause struct {
	ID       uuid.UUID
	Duration float64
}

// Say speaks Text with the given volume (0-100) and signed rate.
type Say struct {
	ID     uuid.UUID
	Text   string
	Volume int
	Rate   int
}

// Launch starts a program. Args and WorkingDir are optional; empty means
// unset.
type Launch struct {
	ID         uuid.UUID
	Path       string
	Args       string
	WorkingDir string
}

// ExecuteCommand runs another command in the same profile by name.
type ExecuteCommand struct {
	ID          uuid.UUID
	CommandName string
}

// SetClipboard replaces the system clipboard text.
type SetClipboard struct {
	ID   uuid.UUID
	Text string
}

func (a PressKey) Type() ActionType       { return TypePressKey }
func (a KeyDown) Type() ActionType        { return TypeKeyDown }
func (a KeyUp) Type() ActionType          { return TypeKeyUp }
func (a KeyToggle) Type() ActionType      { return TypeKeyToggle }
func (a MouseAction) Type() ActionType    { return TypeMouseAction }
func (a Pause) Type() ActionType          { return TypePause }
func (a Say) Type() ActionType            { return TypeSay }
func (a Launch) Type() ActionType         { return TypeLaunch }
func (a ExecuteCommand) Type() ActionType { return TypeExecuteCommand }
func (a SetClipboard) Type() ActionType   { return TypeSetClipboard }

func (a PressKey) ActionID() uuid.UUID       { return a.ID }
func (a KeyDown) ActionID() uuid.UUID        { return a.ID }
func (a KeyUp) ActionID() uuid.UUID          { return a.ID }
func (a KeyToggle) ActionID() uuid.UUID      { return a.ID }
func (a MouseAction) ActionID() uuid.UUID    { return a.ID }
func (a Pause) ActionID() uuid.UUID          { return a.ID }
func (a Say) ActionID() uuid.UUID            { return a.ID }
func (a Launch) ActionID() uuid.UUID         { return a.ID }
func (a ExecuteCommand) ActionID() uuid.UUID { return a.ID }
func (a SetClipboard) ActionID() uuid.UUID   { return a.ID }

func (PressKey) isAction()       {}
func (KeyDown) isAction()        {}
func (KeyUp) isAction()          {}
func (KeyToggle) isAction()      {}
func (MouseAction) isAction()    {}
func (Pause) isAction()          {}
func (Say) isAction()            {}
func (Launch) isAction()         {}
func (ExecuteCommand) isAction() {}
func (SetClipboard) isAction()   {}

// NewPressKey builds a PressKey with a fresh identifier. A zero duration
// means unset and becomes DefaultPressDuration.
func NewPressKey(keyCodes []uint16, duration float64) PressKey {
	if duration == 0 {
		duration = DefaultPressDuration
	}

	return PressKey{ID: uuid.New(), KeyCodes: keyCodes, Duration: duration}
}

// NewKeyDown builds a KeyDown with a fresh identifier.
func NewKeyDown(keyCodes []uint16) KeyDown {
	return KeyDown{ID: uuid.New(), KeyCodes: keyCodes}
}

// NewKeyUp builds a KeyUp with a fresh identifier.
func NewKeyUp(keyCodes []uint16) KeyUp {
	return KeyUp{ID: uuid.New(), KeyCodes: keyCodes}
}

// NewKeyToggle builds a KeyToggle with a fresh identifier.
func NewKeyToggle(keyCodes []uint16) KeyToggle {
	return KeyToggle{ID: uuid.New(), KeyCodes: keyCodes}
}

// NewMouseAction builds a MouseAction with a fresh identifier.
func NewMouseAction(context string, scrollClicks float64) MouseAction {
	return MouseAction{ID: uuid.New(), Context: context, ScrollClicks: scrollClicks}
}

// NewPause builds a Pause with a fresh identifier. A zero duration means
// unset and becomes DefaultPauseDuration.
func NewPause(duration float64) Pause {
	if duration == 0 {
		duration = DefaultPauseDuration
	}

	return Pause{ID: uuid.New(), Duration: duration}
}

// NewSay builds a Say with a fresh identifier, clamping volume to [0, 100].
func NewSay(text string, volume, rate int) Say {
	return Say{ID: uuid.New(), Text: text, Volume: ClampVolume(volume), Rate: rate}
}

// NewLaunch builds a Launch with a fresh identifier.
func NewLaunch(path, args, workingDir string) Launch {
	return Launch{ID: uuid.New(), Path: path, Args: args, WorkingDir: workingDir}
}

// NewExecuteCommand builds an ExecuteCommand with a fresh identifier.
func NewExecuteCommand(name string) ExecuteCommand {
	return ExecuteCommand{ID: uuid.New(), CommandName: name}
}

// NewSetClipboard builds a SetClipboard with a fresh identifier.
func NewSetClipboard(text string) SetClipboard {
	return SetClipboard{ID: uuid.New(), Text: text}
}

// ClampVolume clamps a speech volume to the [0, 100] range the host
// application accepts.
func ClampVolume(v int) int {
	if v < 0 {
		return 0
	}

	if v > 100 {
		return 100
	}

	return v
}

// KeyCodesOf returns the key code list of a key variant, or nil and false
// for the other variants.
func KeyCodesOf(a Action) ([]uint16, bool) {
	switch v := a.(type) {
	case PressKey:
		return v.KeyCodes, true
	case KeyDown:
		return v.KeyCodes, true
	case KeyUp:
		return v.KeyCodes, true
	case KeyToggle:
		return v.KeyCodes, true
	default:
		return nil, false
	}
}

// EqualActions reports whether two actions agree in variant and in every
// semantic field. Identifiers are excluded: the round-trip contract lets a
// codec mint a fresh identifier when the source representation does not
// carry one.
func EqualActions(a, b Action) bool {
	if a.Type() != b.Type() {
		return false
	}

	switch x := a.(type) {
	case PressKey:
		y := b.(PressKey)
		return equalCodes(x.KeyCodes, y.KeyCodes) && x.Duration == y.Duration
	case KeyDown:
		return equalCodes(x.KeyCodes, b.(KeyDown).KeyCodes)
	case KeyUp:
		return equalCodes(x.KeyCodes, b.(KeyUp).KeyCodes)
	case KeyToggle:
		return equalCodes(x.KeyCodes, b.(KeyToggle).KeyCodes)
	case MouseAction:
		y := b.(MouseAction)
		return x.Context == y.Context && x.ScrollClicks == y.ScrollClicks
	case Pause:
		return x.Duration == b.(Pause).Duration
	case Say:
		y := b.(Say)
		return x.Text == y.Text && x.Volume == y.Volume && x.Rate == y.Rate
	case Launch:
		y := b.(Launch)
		return x.Path == y.Path && x.Args == y.Args && x.WorkingDir == y.WorkingDir
	case ExecuteCommand:
		return x.CommandName == b.(ExecuteCommand).CommandName
	case SetClipboard:
		return x.Text == b.(SetClipboard).Text
	default:
		return false
	}
}

func equalCodes(a, b []uint16) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
