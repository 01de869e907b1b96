package input

// Field holds editable single-line text
type Field struct {
	Text   []rune
	Cursor int // Position before which the cursor sits (0 = before first rune)
}

// Value returns current text as string
func (f *Field) Value() string {
	return string(f.Text)
}

// SetValue replaces text and moves cursor to end
func (f *Field) SetValue(s string) {
	f.Text = []rune(s)
	f.Cursor = len(f.Text)
}

// Clear empties the field
func (f *Field) Clear() {
	f.Text = nil
	f.Cursor = 0
}

// Insert adds rune at cursor position
func (f *Field) Insert(r rune) {
	f.Text = append(f.Text[:f.Cursor], append([]rune{r}, f.Text[f.Cursor:]...)...)
	f.Cursor++
}

// DeleteBackward removes rune before cursor
func (f *Field) DeleteBackward() bool {
	if f.Cursor > 0 {
		f.Text = append(f.Text[:f.Cursor-1], f.Text[f.Cursor:]...)
		f.Cursor--
		return true
	}
	return false
}

// DeleteForward removes rune at cursor
func (f *Field) DeleteForward() bool {
	if f.Cursor < len(f.Text) {
		f.Text = append(f.Text[:f.Cursor], f.Text[f.Cursor+1:]...)
		return true
	}
	return false
}

// MoveLeft moves cursor left
func (f *Field) MoveLeft() {
	if f.Cursor > 0 {
		f.Cursor--
	}
}

// MoveRight moves cursor right
func (f *Field) MoveRight() {
	if f.Cursor < len(f.Text) {
		f.Cursor++
	}
}

// MoveHome moves cursor to start
func (f *Field) MoveHome() {
	f.Cursor = 0
}

// MoveEnd moves cursor to end
func (f *Field) MoveEnd() {
	f.Cursor = len(f.Text)
}
