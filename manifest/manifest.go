// Package manifest implements the simplified JSON input model consumed by
// the encode direction, the builder that turns it into the profile model,
// and the matching JSON export for decoded profiles.
//
// A manifest carries a profile name and an ordered list of command entries.
// An entry is one of: a section marker ({"_section": ...}, skipped, carries
// no data), a single-key shorthand ({trigger, key, category}), a
// single-gesture shorthand ({trigger, mouse, category}), or the explicit
// form ({trigger, actions: [...], category}).
//
// Building reports name-resolution failures per offending command and
// action and keeps going: a manifest with one bad key name still produces a
// profile containing every valid command. Each command's output is
// independent, so partial success is meaningful here in a way it cannot be
// on the decode side.
package manifest

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/corinthian/voiceattack-vap-builder/errs"
)

// Document is the parsed form of a manifest file.
type Document struct {
	// ID optionally pins the profile identifier; empty means mint one.
	ID       string  `json:"id,omitempty"`
	Name     string  `json:"name"`
	Commands []Entry `json:"commands"`
}

// Entry is one element of the commands list. Exactly one of Section,
// Key/Mouse shorthand, or Actions is expected to be populated.
type Entry struct {
	// Section marks the entry as a visual divider; it carries no data and
	// the builder skips it.
	Section string `json:"_section,omitempty"`

	Trigger  string `json:"trigger,omitempty"`
	Category string `json:"category,omitempty"`

	// Key shorthand: a single PressKey action.
	Key      string  `json:"key,omitempty"`
	Duration float64 `json:"duration,omitempty"`

	// Mouse shorthand: a single MouseAction.
	Mouse        string   `json:"mouse,omitempty"`
	ScrollClicks *float64 `json:"scroll_clicks,omitempty"`

	// Explicit form.
	Actions []ActionSpec `json:"actions,omitempty"`
}

// IsSection reports whether the entry is a section marker.
func (e *Entry) IsSection() bool {
	return e.Section != ""
}

// ActionSpec describes one action in the explicit form. Type defaults to
// PressKey. Keys holds key names (or decimal code strings); KeyCodes holds
// raw codes for machine-written manifests and takes precedence when set.
type ActionSpec struct {
	Type         string   `json:"type,omitempty"`
	Keys         KeyList  `json:"keys,omitempty"`
	KeyCodes     []uint16 `json:"key_codes,omitempty"`
	Duration     float64  `json:"duration,omitempty"`
	Action       string   `json:"action,omitempty"`
	ScrollClicks *float64 `json:"scroll_clicks,omitempty"`
	Text         string   `json:"text,omitempty"`
	Volume       *int     `json:"volume,omitempty"`
	Rate         int      `json:"rate,omitempty"`
	Path         string   `json:"path,omitempty"`
	Args         string   `json:"args,omitempty"`
	WorkingDir   string   `json:"working_dir,omitempty"`
	Command      string   `json:"command,omitempty"`
}

// KeyList accepts either a single string or a list of strings, matching the
// shorthand manifests use for one-key actions.
type KeyList []string

func (k *KeyList) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}

		*k = KeyList{s}

		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}

	*k = KeyList(list)

	return nil
}

func (k KeyList) MarshalJSON() ([]byte, error) {
	if len(k) == 1 {
		return json.Marshal(k[0])
	}

	return json.Marshal([]string(k))
}

// Parse decodes a manifest document. A manifest must at minimum carry a
// profile name; an explicitly pinned id must be a canonical identifier
// string.
func Parse(data []byte) (*Document, error) {
	var doc Document

	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidDocument, err)
	}

	if doc.Name == "" {
		return nil, fmt.Errorf("%w: manifest has no profile name", errs.ErrInvalidDocument)
	}

	if doc.ID != "" {
		if _, err := uuid.Parse(doc.ID); err != nil {
			return nil, fmt.Errorf("%w: profile id %q: %v", errs.ErrInvalidDocument, doc.ID, err)
		}
	}

	return &doc, nil
}
