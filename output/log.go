package output

// Log is the append-only terminal output buffer
// Rows are only grown while a reveal fills them; Clear drops everything and bumps the epoch
// Every mutation snaps the view back to the newest row
type Log struct {
	lines []Line
	epoch uint64
	back  int // Rows scrolled back from the newest
}

// NewLog creates an empty log
func NewLog() *Log {
	return &Log{}
}

// Append adds a row and returns its index
func (l *Log) Append(line Line) int {
	l.lines = append(l.lines, line)
	l.back = 0
	return len(l.lines) - 1
}

// Extend appends text to row idx if the log has not been cleared since epoch
func (l *Log) Extend(idx int, epoch uint64, text string) bool {
	if epoch != l.epoch || idx < 0 || idx >= len(l.lines) {
		return false
	}
	l.lines[idx].Text += text
	l.back = 0
	return true
}

// Clear removes every row
func (l *Log) Clear() {
	l.lines = nil
	l.epoch++
	l.back = 0
}

// Epoch changes on every Clear
func (l *Log) Epoch() uint64 {
	return l.epoch
}

// Len returns the row count
func (l *Log) Len() int {
	return len(l.lines)
}

// Lines returns a copy of all rows
func (l *Log) Lines() []Line {
	out := make([]Line, len(l.lines))
	copy(out, l.lines)
	return out
}

// Line returns row idx
func (l *Log) Line(idx int) (Line, bool) {
	if idx < 0 || idx >= len(l.lines) {
		return Line{}, false
	}
	return l.lines[idx], true
}

// Texts returns the text of every row
func (l *Log) Texts() []string {
	out := make([]string, len(l.lines))
	for i, line := range l.lines {
		out[i] = line.Text
	}
	return out
}

// ScrollBy moves the view n rows back (positive) or forward (negative)
// limit bounds how far back the view may go, usually wrapped rows minus visible rows
func (l *Log) ScrollBy(n, limit int) {
	l.back += n
	if l.back > limit {
		l.back = limit
	}
	if l.back < 0 {
		l.back = 0
	}
}

// Back returns how many rows the view is scrolled back from the newest
func (l *Log) Back() int {
	return l.back
}
