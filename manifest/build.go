package manifest

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/corinthian/voiceattack-vap-builder/errs"
	"github.com/corinthian/voiceattack-vap-builder/internal/hash"
	"github.com/corinthian/voiceattack-vap-builder/keymap"
	"github.com/corinthian/voiceattack-vap-builder/profile"
)

// Issue reports one build problem, located by the offending command's
// trigger text and, when action-level, the action's index. ActionIndex is
// -1 for command-level issues. Err wraps one of the errs sentinels.
type Issue struct {
	Trigger     string
	ActionIndex int
	Err         error
}

func (i Issue) Error() string {
	if i.ActionIndex < 0 {
		return fmt.Sprintf("command %q: %v", i.Trigger, i.Err)
	}

	return fmt.Sprintf("command %q action %d: %v", i.Trigger, i.ActionIndex, i.Err)
}

func (i Issue) Unwrap() error {
	return i.Err
}

// Option configures a build.
type Option func(*builder)

// WithDeterministicIDs derives every identifier from the manifest content
// instead of minting random ones, so rebuilding an unchanged manifest
// yields byte-identical output.
func WithDeterministicIDs() Option {
	return func(b *builder) {
		b.deterministic = true
	}
}

type builder struct {
	deterministic bool
	doc           *Document
}

// newID derives or mints an identifier depending on the build mode. The
// parts identify the slot being filled (kind, trigger, indexes) so every
// slot in a deterministic build gets a distinct, stable value.
func (b *builder) newID(parts ...string) uuid.UUID {
	if b.deterministic {
		return hash.GUID(append([]string{b.doc.Name}, parts...)...)
	}

	return uuid.New()
}

// Build turns a parsed manifest into the profile model. Commands that
// cannot be built (unresolvable names, no action source) are skipped and
// reported as issues; the remaining commands build normally. The caller
// decides whether issues are fatal.
func Build(doc *Document, opts ...Option) (*profile.Profile, []Issue) {
	b := &builder{doc: doc}
	for _, opt := range opts {
		opt(b)
	}

	p := &profile.Profile{
		Name: doc.Name,
		ID:   b.profileID(),
	}

	var issues []Issue

	for i := range doc.Commands {
		entry := &doc.Commands[i]
		if entry.IsSection() {
			continue
		}

		cmd, cmdIssues := b.buildCommand(entry, i)
		issues = append(issues, cmdIssues...)

		if cmd != nil {
			p.Commands = append(p.Commands, *cmd)
		}
	}

	return p, issues
}

func (b *builder) profileID() uuid.UUID {
	if b.doc.ID != "" {
		if id, err := uuid.Parse(b.doc.ID); err == nil {
			return id
		}
	}

	return b.newID("profile")
}

func (b *builder) buildCommand(entry *Entry, index int) (*profile.Command, []Issue) {
	trigger := entry.Trigger
	if trigger == "" {
		trigger = "unnamed command"
	}

	category := entry.Category
	if category == "" {
		category = "general"
	}

	specs, issue := expandShorthand(entry, trigger)
	if issue != nil {
		return nil, []Issue{*issue}
	}

	var (
		issues  []Issue
		actions []profile.Action
	)

	for j := range specs {
		a, err := b.buildAction(&specs[j], trigger, index, j)
		if err != nil {
			issues = append(issues, Issue{Trigger: trigger, ActionIndex: j, Err: err})
			continue
		}

		actions = append(actions, a)
	}

	if len(actions) == 0 {
		// Action-level issues already name what failed; the command-level
		// summary is only for commands with nothing to report.
		if len(issues) == 0 {
			issues = append(issues, Issue{Trigger: trigger, ActionIndex: -1, Err: errs.ErrNoActions})
		}

		return nil, issues
	}

	idx := strconv.Itoa(index)

	return &profile.Command{
		ID:       b.newID("command", trigger, idx),
		BaseID:   b.newID("base", trigger, idx),
		Trigger:  trigger,
		Category: category,
		Actions:  actions,
	}, issues
}

// expandShorthand normalizes the three entry forms to an action spec list.
func expandShorthand(entry *Entry, trigger string) ([]ActionSpec, *Issue) {
	if len(entry.Actions) > 0 {
		return entry.Actions, nil
	}

	switch {
	case entry.Key != "":
		return []ActionSpec{{
			Type:     string(profile.TypePressKey),
			Keys:     KeyList{entry.Key},
			Duration: entry.Duration,
		}}, nil
	case entry.Mouse != "":
		return []ActionSpec{{
			Type:         string(profile.TypeMouseAction),
			Action:       entry.Mouse,
			ScrollClicks: entry.ScrollClicks,
		}}, nil
	default:
		return nil, &Issue{Trigger: trigger, ActionIndex: -1, Err: errs.ErrNoActions}
	}
}

func (b *builder) buildAction(spec *ActionSpec, trigger string, cmdIndex, actIndex int) (profile.Action, error) {
	typ := profile.ActionType(spec.Type)
	if spec.Type == "" {
		typ = profile.TypePressKey
	}

	id := b.newID("action", trigger, strconv.Itoa(cmdIndex), strconv.Itoa(actIndex))

	switch typ {
	case profile.TypePressKey:
		codes, err := resolveKeys(spec)
		if err != nil {
			return nil, err
		}

		duration := spec.Duration
		if duration == 0 {
			duration = profile.DefaultPressDuration
		}

		return profile.PressKey{ID: id, KeyCodes: codes, Duration: duration}, nil
	case profile.TypeKeyDown, profile.TypeKeyUp, profile.TypeKeyToggle:
		codes, err := resolveKeys(spec)
		if err != nil {
			return nil, err
		}

		switch typ {
		case profile.TypeKeyDown:
			return profile.KeyDown{ID: id, KeyCodes: codes}, nil
		case profile.TypeKeyUp:
			return profile.KeyUp{ID: id, KeyCodes: codes}, nil
		default:
			return profile.KeyToggle{ID: id, KeyCodes: codes}, nil
		}
	case profile.TypeMouseAction:
		gesture := spec.Action
		if gesture == "" {
			gesture = "left_click"
		}

		context, ok := keymap.ContextCode(gesture)
		if !ok {
			// Exports carry raw context codes for gestures outside the
			// table; the binary format admits any 1-3 character code, so
			// those are accepted back verbatim.
			if len(gesture) <= 3 {
				context = gesture
			} else {
				return nil, fmt.Errorf("%w: %q", errs.ErrUnsupportedMouseGesture, gesture)
			}
		}

		clicks := 0.0
		if keymap.IsScrollContext(context) {
			clicks = 1
		}
		if spec.ScrollClicks != nil {
			clicks = *spec.ScrollClicks
		}

		return profile.MouseAction{ID: id, Context: context, ScrollClicks: clicks}, nil
	case profile.TypePause:
		duration := spec.Duration
		if duration == 0 {
			duration = profile.DefaultPauseDuration
		}

		return profile.Pause{ID: id, Duration: duration}, nil
	case profile.TypeSay:
		volume := 100
		if spec.Volume != nil {
			volume = *spec.Volume
		}

		return profile.Say{ID: id, Text: spec.Text, Volume: profile.ClampVolume(volume), Rate: spec.Rate}, nil
	case profile.TypeLaunch:
		if spec.Path == "" {
			return nil, fmt.Errorf("%w: launch action has no path", errs.ErrInvalidDocument)
		}

		return profile.Launch{ID: id, Path: spec.Path, Args: spec.Args, WorkingDir: spec.WorkingDir}, nil
	case profile.TypeExecuteCommand:
		if spec.Command == "" {
			return nil, fmt.Errorf("%w: execute action has no command name", errs.ErrInvalidDocument)
		}

		return profile.ExecuteCommand{ID: id, CommandName: spec.Command}, nil
	case profile.TypeSetClipboard:
		return profile.SetClipboard{ID: id, Text: spec.Text}, nil
	default:
		return nil, fmt.Errorf("%w: %q", errs.ErrUnknownActionType, spec.Type)
	}
}

// resolveKeys turns an action spec's key source into virtual-key codes.
// Explicit key_codes win; otherwise names resolve through the key table,
// with all-digit names taken as literal codes.
func resolveKeys(spec *ActionSpec) ([]uint16, error) {
	if len(spec.KeyCodes) > 0 {
		return spec.KeyCodes, nil
	}

	if len(spec.Keys) == 0 {
		return nil, errs.ErrEmptyKeyCodes
	}

	codes := make([]uint16, 0, len(spec.Keys))

	for _, name := range spec.Keys {
		if code, ok := keymap.KeyCode(name); ok {
			codes = append(codes, code)
			continue
		}

		if n, err := strconv.ParseUint(name, 10, 16); err == nil && n > 0 {
			codes = append(codes, uint16(n))
			continue
		}

		return nil, fmt.Errorf("%w: %q", errs.ErrUnsupportedKeyName, name)
	}

	return codes, nil
}
