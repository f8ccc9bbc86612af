package vapxml

import (
	"encoding/xml"
	"fmt"

	"github.com/google/uuid"

	"github.com/corinthian/voiceattack-vap-builder/keymap"
	"github.com/corinthian/voiceattack-vap-builder/profile"
)

// xmlDeclaration matches the spelling the host application writes.
const xmlDeclaration = `<?xml version="1.0" encoding="utf-8"?>` + "\n"

// Render produces the XML document form of a profile. Every user-supplied
// text field (trigger, category, name, spoken text, paths) passes through
// the XML encoder, which escapes &, <, > and quotes unconditionally.
func Render(p *profile.Profile) ([]byte, error) {
	doc := newDocument(p)

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("render profile xml: %w", err)
	}

	out := make([]byte, 0, len(xmlDeclaration)+len(body)+1)
	out = append(out, xmlDeclaration...)
	out = append(out, body...)
	out = append(out, '\n')

	return out, nil
}

func newDocument(p *profile.Profile) *document {
	doc := &document{
		XsiNS:                "http://www.w3.org/2001/XMLSchema-instance",
		XsdNS:                "http://www.w3.org/2001/XMLSchema",
		ID:                   p.ID.String(),
		Name:                 p.Name,
		Commands:             make([]commandElement, 0, len(p.Commands)),
		ReferencedProfile:    newNil(),
		ExportVAVersion:      "1.10.0",
		ExportOSVersionMajor: 10,
		CatchAllID:           newNil(),
		InitializeCommandID:  newNil(),
	}

	for i := range p.Commands {
		doc.Commands = append(doc.Commands, newCommandElement(&p.Commands[i]))
	}

	return doc
}

func newCommandElement(cmd *profile.Command) commandElement {
	e := commandElement{
		Referrer:            newNil(),
		ExecType:            3,
		BaseID:              cmd.BaseID.String(),
		OriginID:            nilGUID,
		SessionEnabled:      true,
		ID:                  cmd.ID.String(),
		CommandString:       cmd.Trigger,
		Actions:             make([]actionElement, 0, len(cmd.Actions)),
		Async:               true,
		Enabled:             true,
		Category:            cmd.Category,
		KeyPassthru:         true,
		UseSpokenPhrase:     true,
		RepeatNumber:        2,
		SourceProfile:       nilGUID,
		ProcessOverrideAW:   true,
		LostFocusBackCompat: true,
		MousePassThru:       true,
		InternalID:          newNil(),
		HasInput:            true,
	}

	for i, a := range cmd.Actions {
		e.Actions = append(e.Actions, newActionElement(a, i))
	}

	return e
}

// newActionElement maps one action to its CommandAction element. Ordinal is
// the action's position in the sequence; the remaining auxiliary fields are
// fixed inert defaults.
func newActionElement(a profile.Action, ordinal int) actionElement {
	e := actionElement{
		Ordinal:      ordinal,
		ConditionMet: newNil(),
		ID:           actionElementID(a),
		ActionType:   string(a.Type()),
		DateContext1: zeroDate,
		DateContext2: zeroDate,
	}

	switch v := a.(type) {
	case profile.PressKey:
		e.KeyCodes.Values = v.KeyCodes
		e.Duration = v.Duration
	case profile.KeyDown:
		e.KeyCodes.Values = v.KeyCodes
	case profile.KeyUp:
		e.KeyCodes.Values = v.KeyCodes
	case profile.KeyToggle:
		e.KeyCodes.Values = v.KeyCodes
	case profile.MouseAction:
		e.Context = v.Context
		// The click count is stored in X and DecimalContext1; scroll
		// gestures additionally carry it in Duration, the field the host
		// reads for them.
		e.X = v.ScrollClicks
		e.DecimalContext1 = v.ScrollClicks
		if keymap.IsScrollContext(v.Context) {
			e.Duration = v.ScrollClicks
		}
	case profile.Pause:
		e.Duration = v.Duration
	case profile.Say:
		e.Context = v.Text
		e.X = float64(v.Volume)
		e.Y = float64(v.Rate)
	case profile.Launch:
		e.Context = v.Path
		e.Context2 = v.Args
		e.Context3 = v.WorkingDir
	case profile.ExecuteCommand:
		e.Context = v.CommandName
	case profile.SetClipboard:
		e.Context = v.Text
	}

	return e
}

// actionElementID returns the identifier to store for an action, minting a
// fresh one when the model value carries none.
func actionElementID(a profile.Action) string {
	if id := a.ActionID(); id != uuid.Nil {
		return id.String()
	}

	return uuid.New().String()
}
