package timeline

import "fyne.io/fyne/v2"

// Block is a plain Child for hosts without widgets, such as a terminal.
// Its minimum size is fixed at construction.
type Block struct {
	Text   string
	min    fyne.Size
	pos    fyne.Position
	size   fyne.Size
	hidden bool
}

var _ Child = (*Block)(nil)

// NewBlock creates a visible block of the given minimum size
func NewBlock(text string, width, height float32) *Block {
	return &Block{Text: text, min: fyne.NewSize(width, height)}
}

// MinSize returns the fixed minimum size
func (b *Block) MinSize() fyne.Size { return b.min }

// Visible reports whether the block takes part in layout
func (b *Block) Visible() bool { return !b.hidden }

// SetHidden hides or shows the block
func (b *Block) SetHidden(hidden bool) { b.hidden = hidden }

// Move sets the block position
func (b *Block) Move(pos fyne.Position) { b.pos = pos }

// Resize sets the block size
func (b *Block) Resize(size fyne.Size) { b.size = size }

// Position returns the block position
func (b *Block) Position() fyne.Position { return b.pos }

// Size returns the block size
func (b *Block) Size() fyne.Size { return b.size }
