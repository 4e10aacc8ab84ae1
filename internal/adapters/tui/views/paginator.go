package views

// Scroller tracks a cursor over a list and the window of rows that fits on screen.
// The window follows the cursor one row at a time.
type Scroller struct {
	window int
	offset int
	cursor int
	total  int
}

// NewScroller creates a scroller showing up to window rows
func NewScroller(window int) *Scroller {
	if window <= 0 {
		window = 5
	}
	return &Scroller{window: window}
}

// SetWindow changes how many rows fit on screen
func (s *Scroller) SetWindow(window int) {
	if window <= 0 {
		window = 1
	}
	s.window = window
	s.follow()
}

// SetTotal sets the number of rows, clamping the cursor
func (s *Scroller) SetTotal(total int) {
	s.total = total
	s.SetCursor(s.cursor)
}

// Total returns the number of rows
func (s *Scroller) Total() int {
	return s.total
}

// Cursor returns the absolute cursor position
func (s *Scroller) Cursor() int {
	return s.cursor
}

// SetCursor moves the cursor, clamped to the list
func (s *Scroller) SetCursor(pos int) {
	if pos >= s.total {
		pos = s.total - 1
	}
	if pos < 0 {
		pos = 0
	}
	s.cursor = pos
	s.follow()
}

// Up moves the cursor up by one
func (s *Scroller) Up() bool {
	if s.cursor == 0 {
		return false
	}
	s.SetCursor(s.cursor - 1)
	return true
}

// Down moves the cursor down by one
func (s *Scroller) Down() bool {
	if s.cursor >= s.total-1 {
		return false
	}
	s.SetCursor(s.cursor + 1)
	return true
}

// Visible returns the half-open range of rows on screen
func (s *Scroller) Visible() (start, end int) {
	return s.offset, min(s.offset+s.window, s.total)
}

// Above and Below report hidden rows on either side of the window
func (s *Scroller) Above() int {
	return s.offset
}

func (s *Scroller) Below() int {
	_, end := s.Visible()
	return s.total - end
}

func (s *Scroller) follow() {
	if s.cursor < s.offset {
		s.offset = s.cursor
	}
	if s.cursor >= s.offset+s.window {
		s.offset = s.cursor - s.window + 1
	}
	if maxOffset := max(s.total-s.window, 0); s.offset > maxOffset {
		s.offset = maxOffset
	}
	if s.offset < 0 {
		s.offset = 0
	}
}
