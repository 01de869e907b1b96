package input

// History stores submitted commands with a browse cursor
// Cursor == Len() means past the end (nothing recalled)
type History struct {
	entries []string
	cursor  int
}

// NewHistory creates an empty history
func NewHistory() *History {
	return &History{}
}

// Add appends cmd and moves the cursor past the end
func (h *History) Add(cmd string) {
	h.entries = append(h.entries, cmd)
	h.cursor = len(h.entries)
}

// Prev steps back, no-op at the first entry
func (h *History) Prev() (string, bool) {
	if h.cursor <= 0 {
		return "", false
	}
	h.cursor--
	return h.entries[h.cursor], true
}

// Next steps forward; stepping off the last entry returns "" and parks past the end
func (h *History) Next() (string, bool) {
	switch {
	case h.cursor < len(h.entries)-1:
		h.cursor++
		return h.entries[h.cursor], true
	case h.cursor == len(h.entries)-1:
		h.cursor = len(h.entries)
		return "", true
	default:
		return "", false
	}
}

// ResetCursor parks the cursor past the end
func (h *History) ResetCursor() {
	h.cursor = len(h.entries)
}

// Len returns the number of entries
func (h *History) Len() int {
	return len(h.entries)
}

// Cursor returns the browse position
func (h *History) Cursor() int {
	return h.cursor
}

// Entries returns a copy of every entry, oldest first
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}
