// Package section defines the framing structures of the binary VAP
// container: the file header and the profile metadata block that precede
// the command records.
//
// Both structures carry offset tables that are redundant with the positions
// a forward cursor reaches on its own. Decoding therefore reads the tables
// but never follows them; the codec package compares each entry against the
// cursor's actual position and reports mismatches as diagnostics. Encoding
// reserves the table slots up front and back-patches them once the records
// behind them have been written.
package section

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/corinthian/voiceattack-vap-builder/errs"
	"github.com/corinthian/voiceattack-vap-builder/wire"
)

// MaxItemCount bounds the item counts accepted from a header before the
// decoder allocates offset tables. The largest observed profiles carry a
// few hundred commands; a count beyond this means the input is not a VAP
// document.
const MaxItemCount = 1 << 20

// FileHeader is the fixed lead-in of the decompressed document:
//
//	[totalSize: u32][itemCount: u32][itemOffsets: u32 x itemCount]
//
// totalSize declares the byte length of the entire decompressed document.
// itemCount is the number of top-level items (commands), and itemOffsets
// holds the absolute byte offset of each command record.
type FileHeader struct {
	TotalSize   uint32
	ItemOffsets []uint32
}

// ItemCount returns the number of top-level items the header declares.
func (h *FileHeader) ItemCount() int {
	return len(h.ItemOffsets)
}

// Size returns the encoded byte length of the header.
func (h *FileHeader) Size() int {
	return 8 + 4*len(h.ItemOffsets)
}

// ReadFileHeader decodes the file header at the reader's current position,
// which must be the start of the document.
func ReadFileHeader(r *wire.Reader) (*FileHeader, error) {
	totalSize, err := r.Uint32()
	if err != nil {
		return nil, fmt.Errorf("file header: %w", err)
	}

	count, err := r.Uint32()
	if err != nil {
		return nil, fmt.Errorf("file header: %w", err)
	}

	if count > MaxItemCount {
		return nil, fmt.Errorf("%w: item count %d", errs.ErrInvalidHeader, count)
	}

	offsets, err := readOffsets(r, int(count))
	if err != nil {
		return nil, fmt.Errorf("item offset table: %w", err)
	}

	return &FileHeader{TotalSize: totalSize, ItemOffsets: offsets}, nil
}

// AppendFileHeader writes a header for itemCount items with placeholder
// values and returns the patch positions: first the totalSize slot, then
// one slot per item offset. The caller patches them as record positions
// become known.
func AppendFileHeader(w *wire.Writer, itemCount int) (totalSizePos int, offsetPos []int) {
	totalSizePos = w.ReserveUint32()
	w.AppendUint32(uint32(itemCount))

	offsetPos = reserveOffsets(w, itemCount)

	return totalSizePos, offsetPos
}

// Metadata is the profile metadata block that follows the file header:
//
//	[id: 16 bytes][name: string][commandCount: u32][cmdOffsets: u32 x count]
//
// CommandOffsets duplicates the header's item offset table entry for entry;
// the format stores the same positions twice.
type Metadata struct {
	ID             uuid.UUID
	Name           string
	CommandOffsets []uint32
}

// CommandCount returns the number of commands the metadata declares.
func (m *Metadata) CommandCount() int {
	return len(m.CommandOffsets)
}

// ReadMetadata decodes the profile metadata block at the reader's current
// position.
func ReadMetadata(r *wire.Reader) (*Metadata, error) {
	id, err := r.GUID()
	if err != nil {
		return nil, fmt.Errorf("profile id: %w", err)
	}

	name, err := r.String()
	if err != nil {
		return nil, fmt.Errorf("profile name: %w", err)
	}

	count, err := r.Uint32()
	if err != nil {
		return nil, fmt.Errorf("command count: %w", err)
	}

	if count > MaxItemCount {
		return nil, fmt.Errorf("%w: command count %d", errs.ErrInvalidHeader, count)
	}

	offsets, err := readOffsets(r, int(count))
	if err != nil {
		return nil, fmt.Errorf("command offset table: %w", err)
	}

	return &Metadata{ID: id, Name: name, CommandOffsets: offsets}, nil
}

// AppendMetadata writes the metadata block with a placeholder command
// offset table and returns the patch positions, one per command.
func AppendMetadata(w *wire.Writer, id uuid.UUID, name string, commandCount int) ([]int, error) {
	w.AppendGUID(id)

	if err := w.AppendString(name); err != nil {
		return nil, fmt.Errorf("profile name: %w", err)
	}

	w.AppendUint32(uint32(commandCount))

	return reserveOffsets(w, commandCount), nil
}

func readOffsets(r *wire.Reader, count int) ([]uint32, error) {
	offsets := make([]uint32, count)
	for i := range offsets {
		v, err := r.Uint32()
		if err != nil {
			return nil, err
		}
		offsets[i] = v
	}

	return offsets, nil
}

func reserveOffsets(w *wire.Writer, count int) []int {
	pos := make([]int, count)
	for i := range pos {
		pos[i] = w.ReserveUint32()
	}

	return pos
}
