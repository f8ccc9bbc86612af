// Package codec implements the binary document codec for VAP profiles: the
// per-variant action records and the surrounding profile container with its
// header and offset tables.
//
// Decoding is a single forward pass over the decompressed document. The
// format's offset tables are redundant with the positions the cursor reaches
// on its own, so the decoder never follows them; it checks every entry
// against the actual cursor position and reports mismatches as Diagnostics
// alongside the decoded profile. Structural failures (truncation, sentinel
// violations) are fatal: the byte positions of all later fields depend on
// everything before them, so no partial profile is ever returned.
//
// Encoding is the exact inverse and is byte-for-byte reproducible: offset
// slots are reserved while the header is laid out and patched as each record
// lands, and the finished document round-trips through Decode.
package codec

import (
	"fmt"

	"github.com/corinthian/voiceattack-vap-builder/errs"
	"github.com/corinthian/voiceattack-vap-builder/profile"
	"github.com/corinthian/voiceattack-vap-builder/section"
	"github.com/corinthian/voiceattack-vap-builder/wire"
)

// Diagnostic reports a redundant field whose stored value disagrees with
// the position the cursor actually reached. The document remains decodable;
// the mismatch means one of the format assumptions does not hold for this
// file and is worth surfacing rather than silently trusting either side.
type Diagnostic struct {
	// Offset is the byte position of the stored field.
	Offset int
	// Field names the field, e.g. "itemOffset[3]".
	Field string
	// Want is the value implied by the cursor; Got is the stored value.
	Want uint32
	Got  uint32
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("offset %d: %s is %d, cursor implies %d", d.Offset, d.Field, d.Got, d.Want)
}

// DecodeProfile decodes a decompressed binary document into the profile
// model. Offset-table mismatches are returned as diagnostics next to the
// profile; any structural error is fatal and returns a nil profile.
func DecodeProfile(data []byte) (*profile.Profile, []Diagnostic, error) {
	r := wire.NewReader(data)

	var diags []Diagnostic

	hdr, err := section.ReadFileHeader(r)
	if err != nil {
		return nil, nil, err
	}

	if int(hdr.TotalSize) != len(data) {
		diags = append(diags, Diagnostic{
			Offset: 0, Field: "totalSize",
			Want: uint32(len(data)), Got: hdr.TotalSize,
		})
	}

	metaOffset := r.Pos()

	meta, err := section.ReadMetadata(r)
	if err != nil {
		return nil, nil, err
	}

	// Byte positions of the commandCount field and the command offset table
	// inside the metadata block.
	countOffset := metaOffset + 16 + 4 + len(meta.Name)
	cmdTableOffset := countOffset + 4

	if meta.CommandCount() != hdr.ItemCount() {
		diags = append(diags, Diagnostic{
			Offset: countOffset, Field: "commandCount",
			Want: uint32(hdr.ItemCount()), Got: uint32(meta.CommandCount()),
		})
	}

	p := &profile.Profile{
		ID:       meta.ID,
		Name:     meta.Name,
		Commands: make([]profile.Command, 0, meta.CommandCount()),
	}

	for i := 0; i < meta.CommandCount(); i++ {
		start := r.Pos()

		if i < hdr.ItemCount() && int(hdr.ItemOffsets[i]) != start {
			diags = append(diags, Diagnostic{
				Offset: 8 + 4*i, Field: fmt.Sprintf("itemOffset[%d]", i),
				Want: uint32(start), Got: hdr.ItemOffsets[i],
			})
		}

		if int(meta.CommandOffsets[i]) != start {
			diags = append(diags, Diagnostic{
				Offset: cmdTableOffset + 4*i, Field: fmt.Sprintf("commandOffset[%d]", i),
				Want: uint32(start), Got: meta.CommandOffsets[i],
			})
		}

		cmd, cmdDiags, err := readCommand(r, i)
		if err != nil {
			return nil, nil, fmt.Errorf("command %d at offset %d: %w", i, start, err)
		}

		diags = append(diags, cmdDiags...)
		p.Commands = append(p.Commands, *cmd)
	}

	if r.Remaining() != 0 {
		diags = append(diags, Diagnostic{
			Offset: r.Pos(), Field: "documentEnd",
			Want: uint32(len(data)), Got: uint32(r.Pos()),
		})
	}

	return p, diags, nil
}

// readCommand decodes one command record: base and command identifiers, the
// trigger, the action table and records, and the trailing category.
func readCommand(r *wire.Reader, index int) (*profile.Command, []Diagnostic, error) {
	start := r.Pos()

	baseID, err := r.GUID()
	if err != nil {
		return nil, nil, fmt.Errorf("base id: %w", err)
	}

	id, err := r.GUID()
	if err != nil {
		return nil, nil, fmt.Errorf("command id: %w", err)
	}

	trigger, err := r.String()
	if err != nil {
		return nil, nil, fmt.Errorf("trigger: %w", err)
	}

	actionCount, err := r.Uint32()
	if err != nil {
		return nil, nil, fmt.Errorf("action count: %w", err)
	}

	if actionCount == 0 || actionCount > section.MaxItemCount {
		return nil, nil, fmt.Errorf("%w: action count %d", errs.ErrInvalidHeader, actionCount)
	}

	tableOffset := r.Pos()

	actionOffsets := make([]uint32, actionCount)
	for j := range actionOffsets {
		if actionOffsets[j], err = r.Uint32(); err != nil {
			return nil, nil, fmt.Errorf("action offset table: %w", err)
		}
	}

	var diags []Diagnostic

	actions := make([]profile.Action, 0, actionCount)
	for j := range actionOffsets {
		// Action offsets are relative to the command record start.
		rel := r.Pos() - start
		if int(actionOffsets[j]) != rel {
			diags = append(diags, Diagnostic{
				Offset: tableOffset + 4*j, Field: fmt.Sprintf("command[%d].actionOffset[%d]", index, j),
				Want: uint32(rel), Got: actionOffsets[j],
			})
		}

		a, err := ReadAction(r)
		if err != nil {
			return nil, nil, fmt.Errorf("action %d: %w", j, err)
		}

		actions = append(actions, a)
	}

	category, err := r.String()
	if err != nil {
		return nil, nil, fmt.Errorf("category: %w", err)
	}

	return &profile.Command{
		ID:       id,
		BaseID:   baseID,
		Trigger:  trigger,
		Category: category,
		Actions:  actions,
	}, diags, nil
}

// EncodeProfile encodes the profile model into an uncompressed binary
// document. The profile must satisfy Validate; the resulting bytes decode
// back to an equal profile with no diagnostics.
func EncodeProfile(p *profile.Profile) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	w := wire.NewWriter()

	totalSizePos, itemPos := section.AppendFileHeader(w, len(p.Commands))

	cmdPos, err := section.AppendMetadata(w, p.ID, p.Name, len(p.Commands))
	if err != nil {
		return nil, err
	}

	for i := range p.Commands {
		cmd := &p.Commands[i]
		start := w.Len()

		w.PatchUint32(itemPos[i], uint32(start))
		w.PatchUint32(cmdPos[i], uint32(start))

		if err := appendCommand(w, cmd, start); err != nil {
			return nil, fmt.Errorf("command %d (%q): %w", i, cmd.Trigger, err)
		}
	}

	w.PatchUint32(totalSizePos, uint32(w.Len()))

	return w.Bytes(), nil
}

func appendCommand(w *wire.Writer, cmd *profile.Command, start int) error {
	w.AppendGUID(cmd.BaseID)
	w.AppendGUID(cmd.ID)

	if err := w.AppendString(cmd.Trigger); err != nil {
		return fmt.Errorf("trigger: %w", err)
	}

	w.AppendUint32(uint32(len(cmd.Actions)))

	actionPos := make([]int, len(cmd.Actions))
	for j := range actionPos {
		actionPos[j] = w.ReserveUint32()
	}

	for j, a := range cmd.Actions {
		w.PatchUint32(actionPos[j], uint32(w.Len()-start))

		if err := AppendAction(w, a); err != nil {
			return fmt.Errorf("action %d: %w", j, err)
		}
	}

	if err := w.AppendString(cmd.Category); err != nil {
		return fmt.Errorf("category: %w", err)
	}

	return nil
}
