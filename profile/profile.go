// Package profile defines the logical data model the codecs convert to and
// from: a Profile owning an ordered list of Commands, each owning an ordered,
// non-empty sequence of Actions.
//
// Ownership is strict and tree-shaped. A Profile exclusively owns its
// Commands and each Command exclusively owns its Actions; the model has no
// shared or back-references. The BaseID carried by each Command exists only
// because the binary format's internal referencing scheme requires a second
// identifier; it is plain data, never a live reference to resolve.
//
// Trigger text is opaque. The alternative/optional-word markup the host
// grammar embeds in it ("[alt1; alt2]", "[optional;]") passes through the
// model and both codecs as uninterpreted text.
package profile

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/corinthian/voiceattack-vap-builder/errs"
)

// Profile is the root of the model: an identifier, a display name, and the
// ordered command list. Identifier and name are set at creation; the command
// list is append-only during construction and treated as immutable for the
// duration of any codec pass.
type Profile struct {
	ID       uuid.UUID
	Name     string
	Commands []Command
}

// Command couples a spoken trigger with the action sequence it executes.
// Action order is the execution order and must survive every round trip
// exactly.
type Command struct {
	ID       uuid.UUID
	BaseID   uuid.UUID
	Trigger  string
	Category string
	Actions  []Action
}

// Validate checks the model invariants: command identifiers unique within
// the profile, every command non-empty, and every key variant carrying at
// least one key code. It reports the first violation found.
func (p *Profile) Validate() error {
	seen := make(map[uuid.UUID]struct{}, len(p.Commands))

	for i, cmd := range p.Commands {
		if _, dup := seen[cmd.ID]; dup {
			return fmt.Errorf("%w: command %d (%q)", errs.ErrDuplicateCommandID, i, cmd.Trigger)
		}

		seen[cmd.ID] = struct{}{}

		if len(cmd.Actions) == 0 {
			return fmt.Errorf("%w: command %d (%q)", errs.ErrNoActions, i, cmd.Trigger)
		}

		for j, a := range cmd.Actions {
			if codes, ok := KeyCodesOf(a); ok && len(codes) == 0 {
				return fmt.Errorf("%w: command %d (%q) action %d", errs.ErrEmptyKeyCodes, i, cmd.Trigger, j)
			}
		}
	}

	return nil
}

// Fingerprint returns a stable 64-bit content hash over the semantic fields
// of the profile: name, command triggers and categories, and every action's
// variant and field values, all in document order. Identifiers are excluded,
// so two profiles that differ only in minted IDs fingerprint identically.
func (p *Profile) Fingerprint() uint64 {
	d := xxhash.New()

	writeString(d, p.Name)
	writeInt(d, uint64(len(p.Commands)))

	for _, cmd := range p.Commands {
		writeString(d, cmd.Trigger)
		writeString(d, cmd.Category)
		writeInt(d, uint64(len(cmd.Actions)))

		for _, a := range cmd.Actions {
			hashAction(d, a)
		}
	}

	return d.Sum64()
}

func hashAction(d *xxhash.Digest, a Action) {
	writeString(d, string(a.Type()))

	switch v := a.(type) {
	case PressKey:
		hashCodes(d, v.KeyCodes)
		writeFloat(d, v.Duration)
	case KeyDown:
		hashCodes(d, v.KeyCodes)
	case KeyUp:
		hashCodes(d, v.KeyCodes)
	case KeyToggle:
		hashCodes(d, v.KeyCodes)
	case MouseAction:
		writeString(d, v.Context)
		writeFloat(d, v.ScrollClicks)
	case Pause:
		writeFloat(d, v.Duration)
	case Say:
		writeString(d, v.Text)
		writeInt(d, uint64(int64(v.Volume)))
		writeInt(d, uint64(int64(v.Rate)))
	case Launch:
		writeString(d, v.Path)
		writeString(d, v.Args)
		writeString(d, v.WorkingDir)
	case ExecuteCommand:
		writeString(d, v.CommandName)
	case SetClipboard:
		writeString(d, v.Text)
	}
}

func hashCodes(d *xxhash.Digest, codes []uint16) {
	writeInt(d, uint64(len(codes)))
	for _, c := range codes {
		writeInt(d, uint64(c))
	}
}

// writeString hashes a length-delimited string so field boundaries cannot
// alias across adjacent values.
func writeString(d *xxhash.Digest, s string) {
	writeInt(d, uint64(len(s)))
	_, _ = d.WriteString(s)
}

func writeInt(d *xxhash.Digest, v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	_, _ = d.Write(b[:])
}

func writeFloat(d *xxhash.Digest, v float64) {
	writeInt(d, math.Float64bits(v))
}
