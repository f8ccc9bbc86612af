// Package vapxml maps the profile model to and from the host application's
// XML document form.
//
// The document schema is wider than the model: profile, command, and action
// elements all carry auxiliary fields (global-hotkey flags, process-override
// flags, pairing and condition machinery) that the model has no semantics
// for. They are emitted with the fixed inert defaults the host application
// expects and ignored on parse. The Duration element is deliberately
// overloaded: it carries the key hold time, the pause length, or the
// scroll-click count depending on the action variant, and that dual use is
// part of the host contract.
package vapxml

import "encoding/xml"

// nilGUID is the canonical all-zero identifier string used by the inert
// OriginId and SourceProfile fields.
const nilGUID = "00000000-0000-0000-0000-000000000000"

// zeroDate is the .NET default DateTime spelling used by the inert date
// context fields.
const zeroDate = "0001-01-01T00:00:00"

// nilElement renders as an element carrying only xsi:nil="true", the way
// the host serializer writes null references.
type nilElement struct {
	Nil string `xml:"xsi:nil,attr"`
}

func newNil() nilElement {
	return nilElement{Nil: "true"}
}

// emptyElement renders as an empty element with no attributes.
type emptyElement struct{}

// keyCodeList wraps the unsignedShort sequence inside a KeyCodes element.
// An empty list still renders the enclosing element, as the host does.
type keyCodeList struct {
	Values []uint16 `xml:"unsignedShort"`
}

// document is the root Profile element.
type document struct {
	XMLName xml.Name `xml:"Profile"`
	XsiNS   string   `xml:"xmlns:xsi,attr"`
	XsdNS   string   `xml:"xmlns:xsd,attr"`

	ID       string           `xml:"Id"`
	Name     string           `xml:"Name"`
	Commands []commandElement `xml:"Commands>Command"`

	// Profile-level auxiliary block, inert defaults throughout.
	OverrideGlobal           bool       `xml:"OverrideGlobal"`
	GlobalHotkeyIndex        int        `xml:"GlobalHotkeyIndex"`
	GlobalHotkeyEnabled      bool       `xml:"GlobalHotkeyEnabled"`
	GlobalHotkeyValue        int        `xml:"GlobalHotkeyValue"`
	GlobalHotkeyShift        int        `xml:"GlobalHotkeyShift"`
	GlobalHotkeyAlt          int        `xml:"GlobalHotkeyAlt"`
	GlobalHotkeyCtrl         int        `xml:"GlobalHotkeyCtrl"`
	GlobalHotkeyWin          int        `xml:"GlobalHotkeyWin"`
	GlobalHotkeyPassThru     bool       `xml:"GlobalHotkeyPassThru"`
	OverrideMouse            bool       `xml:"OverrideMouse"`
	MouseIndex               int        `xml:"MouseIndex"`
	OverrideStop             bool       `xml:"OverrideStop"`
	StopCommandHotkeyEnabled bool       `xml:"StopCommandHotkeyEnabled"`
	StopCommandHotkeyValue   int        `xml:"StopCommandHotkeyValue"`
	StopCommandHotkeyShift   int        `xml:"StopCommandHotkeyShift"`
	StopCommandHotkeyAlt     int        `xml:"StopCommandHotkeyAlt"`
	StopCommandHotkeyCtrl    int        `xml:"StopCommandHotkeyCtrl"`
	StopCommandHotkeyWin     int        `xml:"StopCommandHotkeyWin"`
	StopCommandHotkeyPass    bool       `xml:"StopCommandHotkeyPassThru"`
	DisableShortcuts         bool       `xml:"DisableShortcuts"`
	UseOverrideListening     bool       `xml:"UseOverrideListening"`
	OverrideJoystickGlobal   bool       `xml:"OverrideJoystickGlobal"`
	GlobalJoystickIndex      int        `xml:"GlobalJoystickIndex"`
	GlobalJoystickButton     int        `xml:"GlobalJoystickButton"`
	GlobalJoystickNumber     int        `xml:"GlobalJoystickNumber"`
	GlobalJoystickButton2    int        `xml:"GlobalJoystickButton2"`
	GlobalJoystickNumber2    int        `xml:"GlobalJoystickNumber2"`
	ReferencedProfile        nilElement `xml:"ReferencedProfile"`
	ExportVAVersion          string     `xml:"ExportVAVersion"`
	ExportOSVersionMajor     int        `xml:"ExportOSVersionMajor"`
	ExportOSVersionMinor     int        `xml:"ExportOSVersionMinor"`
	OverrideConfidence       bool       `xml:"OverrideConfidence"`
	Confidence               int        `xml:"Confidence"`
	CatchAllEnabled          bool       `xml:"CatchAllEnabled"`
	CatchAllID               nilElement `xml:"CatchAllId"`
	InitializeCommandEnabled bool       `xml:"InitializeCommandEnabled"`
	InitializeCommandID      nilElement `xml:"InitializeCommandId"`
	UseProcessOverride       bool       `xml:"UseProcessOverride"`
	HasMB                    bool       `xml:"HasMB"`
}

// commandElement is one Command inside Commands, in the exact field order
// the host serializer writes.
type commandElement struct {
	Referrer            nilElement      `xml:"Referrer"`
	ExecType            int             `xml:"ExecType"`
	Confidence          int             `xml:"Confidence"`
	PrefixActionCount   int             `xml:"PrefixActionCount"`
	IsDynamicallyCreate bool            `xml:"IsDynamicallyCreated"`
	TargetProcessSet    bool            `xml:"TargetProcessSet"`
	TargetProcessType   int             `xml:"TargetProcessType"`
	TargetProcessLevel  int             `xml:"TargetProcessLevel"`
	CompareType         int             `xml:"CompareType"`
	ExecFromWildcard    bool            `xml:"ExecFromWildcard"`
	IsSubCommand        bool            `xml:"IsSubCommand"`
	IsOverride          bool            `xml:"IsOverride"`
	BaseID              string          `xml:"BaseId"`
	OriginID            string          `xml:"OriginId"`
	SessionEnabled      bool            `xml:"SessionEnabled"`
	ID                  string          `xml:"Id"`
	CommandString       string          `xml:"CommandString"`
	Actions             []actionElement `xml:"ActionSequence>CommandAction"`
	Async               bool            `xml:"Async"`
	Enabled             bool            `xml:"Enabled"`
	Category            string          `xml:"Category"`
	UseShortcut         bool            `xml:"UseShortcut"`
	KeyValue            int             `xml:"keyValue"`
	KeyShift            int             `xml:"keyShift"`
	KeyAlt              int             `xml:"keyAlt"`
	KeyCtrl             int             `xml:"keyCtrl"`
	KeyWin              int             `xml:"keyWin"`
	KeyPassthru         bool            `xml:"keyPassthru"`
	UseSpokenPhrase     bool            `xml:"UseSpokenPhrase"`
	OnlyKeyUp           bool            `xml:"onlyKeyUp"`
	RepeatNumber        int             `xml:"RepeatNumber"`
	RepeatType          int             `xml:"RepeatType"`
	CommandType         int             `xml:"CommandType"`
	SourceProfile       string          `xml:"SourceProfile"`
	UseConfidence       bool            `xml:"UseConfidence"`
	MinimumConfidence   int             `xml:"minimumConfidenceLevel"`
	UseJoystick         bool            `xml:"UseJoystick"`
	JoystickNumber      int             `xml:"joystickNumber"`
	JoystickButton      int             `xml:"joystickButton"`
	JoystickNumber2     int             `xml:"joystickNumber2"`
	JoystickButton2     int             `xml:"joystickButton2"`
	JoystickUp          bool            `xml:"joystickUp"`
	KeepRepeating       bool            `xml:"KeepRepeating"`
	UseProcessOverride  bool            `xml:"UseProcessOverride"`
	ProcessOverrideAW   bool            `xml:"ProcessOverrideActiveWindow"`
	LostFocusStop       bool            `xml:"LostFocusStop"`
	PauseLostFocus      bool            `xml:"PauseLostFocus"`
	LostFocusBackCompat bool            `xml:"LostFocusBackCompat"`
	UseMouse            bool            `xml:"UseMouse"`
	Mouse1              bool            `xml:"Mouse1"`
	Mouse2              bool            `xml:"Mouse2"`
	Mouse3              bool            `xml:"Mouse3"`
	Mouse4              bool            `xml:"Mouse4"`
	Mouse5              bool            `xml:"Mouse5"`
	Mouse6              bool            `xml:"Mouse6"`
	Mouse7              bool            `xml:"Mouse7"`
	Mouse8              bool            `xml:"Mouse8"`
	Mouse9              bool            `xml:"Mouse9"`
	MouseUpOnly         bool            `xml:"MouseUpOnly"`
	MousePassThru       bool            `xml:"MousePassThru"`
	JoystickExclusive   bool            `xml:"joystickExclusive"`
	UseProfileProcOver  bool            `xml:"UseProfileProcessOverride"`
	ProfileProcOverAW   bool            `xml:"ProfileProcessOverrideActiveWindow"`
	RepeatIfKeysDown    bool            `xml:"RepeatIfKeysDown"`
	RepeatIfMouseDown   bool            `xml:"RepeatIfMouseDown"`
	RepeatIfJoyDown     bool            `xml:"RepeatIfJoystickDown"`
	AH                  int             `xml:"AH"`
	CL                  int             `xml:"CL"`
	HasMB               bool            `xml:"HasMB"`
	UseVariableHotkey   bool            `xml:"UseVariableHotkey"`
	CLE                 int             `xml:"CLE"`
	EX1                 bool            `xml:"EX1"`
	EX2                 bool            `xml:"EX2"`
	InternalID          nilElement      `xml:"InternalId"`
	HasInput            bool            `xml:"HasInput"`
}

// actionElement is one CommandAction inside an ActionSequence.
type actionElement struct {
	PairingSet       bool         `xml:"PairingSet"`
	PairingSetElse   bool         `xml:"PairingSetElse"`
	Ordinal          int          `xml:"Ordinal"`
	ConditionMet     nilElement   `xml:"ConditionMet"`
	IndentLevel      int          `xml:"IndentLevel"`
	ConditionSkip    bool         `xml:"ConditionSkip"`
	IsSuffixAction   bool         `xml:"IsSuffixAction"`
	DecimalTransient float64      `xml:"DecimalTransient1"`
	ID               string       `xml:"Id"`
	ActionType       string       `xml:"ActionType"`
	Duration         float64      `xml:"Duration"`
	Delay            float64      `xml:"Delay"`
	KeyCodes         keyCodeList  `xml:"KeyCodes"`
	Context          string       `xml:"Context"`
	Context2         string       `xml:"Context2,omitempty"`
	Context3         string       `xml:"Context3,omitempty"`
	X                float64      `xml:"X"`
	Y                float64      `xml:"Y"`
	Z                float64      `xml:"Z"`
	InputMode        int          `xml:"InputMode"`
	ConditionPairing int          `xml:"ConditionPairing"`
	ConditionGroup   int          `xml:"ConditionGroup"`
	CondStartOp      int          `xml:"ConditionStartOperator"`
	CondStartValue   int          `xml:"ConditionStartValue"`
	CondStartValType int          `xml:"ConditionStartValueType"`
	CondStartType    int          `xml:"ConditionStartType"`
	DecimalContext1  float64      `xml:"DecimalContext1"`
	DecimalContext2  float64      `xml:"DecimalContext2"`
	DateContext1     string       `xml:"DateContext1"`
	DateContext2     string       `xml:"DateContext2"`
	Disabled         bool         `xml:"Disabled"`
	RandomSounds     emptyElement `xml:"RandomSounds"`
	CondExpressions  emptyElement `xml:"ConditionExpressions"`
}
