package vapxml

import (
	"encoding/xml"
	"fmt"

	"github.com/google/uuid"

	"github.com/corinthian/voiceattack-vap-builder/errs"
	"github.com/corinthian/voiceattack-vap-builder/keymap"
	"github.com/corinthian/voiceattack-vap-builder/profile"
)

// Parse reads the XML document form back into the profile model. It is
// tolerant of attribute ordering, whitespace, and missing auxiliary fields,
// but command and action ordering is preserved exactly, and an ActionType
// outside the known variants is fatal. Identifiers are read when present
// and minted fresh when absent or nil.
func Parse(data []byte) (*profile.Profile, error) {
	var doc document

	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidDocument, err)
	}

	id, err := parseGUID(doc.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: profile id: %v", errs.ErrInvalidDocument, err)
	}

	p := &profile.Profile{
		ID:       id,
		Name:     doc.Name,
		Commands: make([]profile.Command, 0, len(doc.Commands)),
	}

	for i := range doc.Commands {
		cmd, err := parseCommand(&doc.Commands[i])
		if err != nil {
			return nil, fmt.Errorf("command %d (%q): %w", i, doc.Commands[i].CommandString, err)
		}

		p.Commands = append(p.Commands, *cmd)
	}

	return p, nil
}

func parseCommand(e *commandElement) (*profile.Command, error) {
	id, err := parseGUID(e.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: command id: %v", errs.ErrInvalidDocument, err)
	}

	baseID, err := parseGUID(e.BaseID)
	if err != nil {
		return nil, fmt.Errorf("%w: base id: %v", errs.ErrInvalidDocument, err)
	}

	actions := make([]profile.Action, 0, len(e.Actions))
	for i := range e.Actions {
		a, err := parseAction(&e.Actions[i])
		if err != nil {
			return nil, fmt.Errorf("action %d: %w", i, err)
		}

		actions = append(actions, a)
	}

	return &profile.Command{
		ID:       id,
		BaseID:   baseID,
		Trigger:  e.CommandString,
		Category: e.Category,
		Actions:  actions,
	}, nil
}

func parseAction(e *actionElement) (profile.Action, error) {
	id, err := parseGUID(e.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: action id: %v", errs.ErrInvalidDocument, err)
	}

	// The binary decoder refuses key records with no key codes; the XML
	// form enforces the same invariant.
	switch profile.ActionType(e.ActionType) {
	case profile.TypePressKey, profile.TypeKeyDown, profile.TypeKeyUp, profile.TypeKeyToggle:
		if len(e.KeyCodes.Values) == 0 {
			return nil, fmt.Errorf("%w: %s action", errs.ErrEmptyKeyCodes, e.ActionType)
		}
	}

	switch profile.ActionType(e.ActionType) {
	case profile.TypePressKey:
		duration := e.Duration
		if duration == 0 {
			duration = profile.DefaultPressDuration
		}
		return profile.PressKey{ID: id, KeyCodes: e.KeyCodes.Values, Duration: duration}, nil
	case profile.TypeKeyDown:
		return profile.KeyDown{ID: id, KeyCodes: e.KeyCodes.Values}, nil
	case profile.TypeKeyUp:
		return profile.KeyUp{ID: id, KeyCodes: e.KeyCodes.Values}, nil
	case profile.TypeKeyToggle:
		return profile.KeyToggle{ID: id, KeyCodes: e.KeyCodes.Values}, nil
	case profile.TypeMouseAction:
		return profile.MouseAction{
			ID:           id,
			Context:      e.Context,
			ScrollClicks: scrollClicks(e),
		}, nil
	case profile.TypePause:
		duration := e.Duration
		if duration == 0 {
			duration = profile.DefaultPauseDuration
		}
		return profile.Pause{ID: id, Duration: duration}, nil
	case profile.TypeSay:
		return profile.Say{
			ID:     id,
			Text:   e.Context,
			Volume: profile.ClampVolume(int(e.X)),
			Rate:   int(e.Y),
		}, nil
	case profile.TypeLaunch:
		return profile.Launch{ID: id, Path: e.Context, Args: e.Context2, WorkingDir: e.Context3}, nil
	case profile.TypeExecuteCommand:
		return profile.ExecuteCommand{ID: id, CommandName: e.Context}, nil
	case profile.TypeSetClipboard:
		return profile.SetClipboard{ID: id, Text: e.Context}, nil
	default:
		return nil, fmt.Errorf("%w: %q", errs.ErrUnknownActionType, e.ActionType)
	}
}

// scrollClicks recovers the click count of a scroll gesture. The rendered
// form stores it in Duration, X, and DecimalContext1 alike; DecimalContext1
// is authoritative, with Duration as the fallback for documents written by
// older tools that only set it there.
func scrollClicks(e *actionElement) float64 {
	if !keymap.IsScrollContext(e.Context) {
		return e.DecimalContext1
	}

	if e.DecimalContext1 != 0 {
		return e.DecimalContext1
	}

	return e.Duration
}

// parseGUID parses a canonical identifier string, minting a fresh one for
// the absent and all-zero cases.
func parseGUID(s string) (uuid.UUID, error) {
	if s == "" || s == nilGUID {
		return uuid.New(), nil
	}

	return uuid.Parse(s)
}
