package manifest

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/corinthian/voiceattack-vap-builder/keymap"
	"github.com/corinthian/voiceattack-vap-builder/profile"
)

// Export is the structured-data form of a decoded profile: the manifest
// command shape plus the identifier and a content fingerprint. The actions
// carry both human-readable key names and the raw codes, so an export can
// be read by people and fed back to Build without loss.
type Export struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Fingerprint string        `json:"fingerprint"`
	Commands    []ExportEntry `json:"commands"`
}

// ExportEntry is one exported command.
type ExportEntry struct {
	Trigger  string       `json:"trigger"`
	Category string       `json:"category"`
	Actions  []ActionSpec `json:"actions"`
}

// NewExport builds the export form of a profile.
func NewExport(p *profile.Profile) *Export {
	out := &Export{
		ID:          p.ID.String(),
		Name:        p.Name,
		Fingerprint: fmt.Sprintf("%016x", p.Fingerprint()),
		Commands:    make([]ExportEntry, 0, len(p.Commands)),
	}

	for i := range p.Commands {
		cmd := &p.Commands[i]
		entry := ExportEntry{
			Trigger:  cmd.Trigger,
			Category: cmd.Category,
			Actions:  make([]ActionSpec, 0, len(cmd.Actions)),
		}

		for _, a := range cmd.Actions {
			entry.Actions = append(entry.Actions, exportAction(a))
		}

		out.Commands = append(out.Commands, entry)
	}

	return out
}

// MarshalIndent renders the export as indented JSON.
func (e *Export) MarshalIndent() ([]byte, error) {
	return json.MarshalIndent(e, "", "  ")
}

func exportAction(a profile.Action) ActionSpec {
	spec := ActionSpec{Type: string(a.Type())}

	switch v := a.(type) {
	case profile.PressKey:
		spec.Keys = keyNames(v.KeyCodes)
		spec.KeyCodes = v.KeyCodes
		spec.Duration = v.Duration
	case profile.KeyDown:
		spec.Keys = keyNames(v.KeyCodes)
		spec.KeyCodes = v.KeyCodes
	case profile.KeyUp:
		spec.Keys = keyNames(v.KeyCodes)
		spec.KeyCodes = v.KeyCodes
	case profile.KeyToggle:
		spec.Keys = keyNames(v.KeyCodes)
		spec.KeyCodes = v.KeyCodes
	case profile.MouseAction:
		spec.Action = gestureName(v.Context)
		if v.ScrollClicks != 0 {
			clicks := v.ScrollClicks
			spec.ScrollClicks = &clicks
		}
	case profile.Pause:
		spec.Duration = v.Duration
	case profile.Say:
		spec.Text = v.Text
		volume := v.Volume
		spec.Volume = &volume
		spec.Rate = v.Rate
	case profile.Launch:
		spec.Path = v.Path
		spec.Args = v.Args
		spec.WorkingDir = v.WorkingDir
	case profile.ExecuteCommand:
		spec.Command = v.CommandName
	case profile.SetClipboard:
		spec.Text = v.Text
	}

	return spec
}

// keyNames maps codes to canonical names, falling back to the decimal
// spelling for codes outside the table. Build resolves both forms back.
func keyNames(codes []uint16) KeyList {
	names := make(KeyList, 0, len(codes))

	for _, c := range codes {
		if name, ok := keymap.KeyName(c); ok {
			names = append(names, name)
			continue
		}

		names = append(names, strconv.Itoa(int(c)))
	}

	return names
}

// gestureName maps a context code to its gesture name, keeping the raw
// code for contexts outside the table so the export stays lossless.
func gestureName(code string) string {
	if name, ok := keymap.GestureName(code); ok {
		return name
	}

	return code
}
