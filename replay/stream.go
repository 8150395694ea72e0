package replay

// Stream is an append-only sequence of Frame, per spec.md §3/§6. Live
// input pushes frames with the current clock time; a Cursor reads them
// back in order, whether the Stream was just recorded or loaded from a
// .ttkr file.
type Stream struct {
	frames []Frame
	nextSeq int
}

// NewStream returns an empty Stream.
func NewStream() *Stream {
	return &Stream{}
}

// Push appends a new frame at time t carrying action, assigning it the
// next sequence number. Frames must be pushed non-decreasing in time;
// Push does not itself enforce this (a live input router guarantees it
// by construction). Cursor.AdvanceUntil reads frames in insertion order
// and stops at the first frame later than t, so it does not reorder
// frames pushed out of time order.
func (s *Stream) Push(t float32, action Action) Frame {
	f := Frame{Time: t, Seq: s.nextSeq, Action: action}
	s.nextSeq++
	s.frames = append(s.frames, f)
	return f
}

// Append adds a pre-built frame with its Seq unchanged (used when loading
// a Stream from disk), moving the next sequence number past it when it is
// the highest seen so far.
func (s *Stream) Append(f Frame) {
	s.frames = append(s.frames, f)
	if f.Seq >= s.nextSeq {
		s.nextSeq = f.Seq + 1
	}
}

// Len returns the number of frames recorded.
func (s *Stream) Len() int {
	return len(s.frames)
}

// Frames returns the underlying frame slice. Callers must not mutate it.
func (s *Stream) Frames() []Frame {
	return s.frames
}

// Seq returns the sequence number that would be assigned to the next
// pushed frame.
func (s *Stream) Seq() int {
	return s.nextSeq
}

// Cursor is a lazy, restartable iterator over a Stream's frames, per
// spec.md §3/§9 ("lazy, restartable iterator ... tie ordering by a
// stable insertion index; never sort by float time alone").
type Cursor struct {
	stream *Stream
	pos    int
}

// NewCursor returns a Cursor positioned before the first frame.
func NewCursor(s *Stream) *Cursor {
	return &Cursor{stream: s}
}

// AdvanceUntil returns all unread frames with Time <= t, in order, and
// advances the cursor past them. Calling it again with a smaller t than
// a previous call returns no frames (the cursor is monotone forward
// only); callers that need to rewind should build a fresh Cursor.
func (c *Cursor) AdvanceUntil(t float32) []Frame {
	start := c.pos
	for c.pos < len(c.stream.frames) && c.stream.frames[c.pos].Time <= t {
		c.pos++
	}
	return c.stream.frames[start:c.pos]
}

// Reset rewinds the cursor to the beginning of the stream.
func (c *Cursor) Reset() {
	c.pos = 0
}

// Done reports whether every frame in the stream has been consumed.
func (c *Cursor) Done() bool {
	return c.pos >= len(c.stream.frames)
}
