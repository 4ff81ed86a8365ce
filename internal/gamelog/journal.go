package gamelog

// Journal keeps the most recent events in a fixed-size ring.
type Journal struct {
	buf   []Event
	next  int
	count int
}

// NewJournal returns a Journal holding up to size events. A size below one
// is raised to one.
func NewJournal(size int) *Journal {
	if size < 1 {
		size = 1
	}
	return &Journal{buf: make([]Event, size)}
}

// Emit implements Sink.
func (j *Journal) Emit(e Event) {
	j.buf[j.next] = e
	j.next = (j.next + 1) % len(j.buf)
	if j.count < len(j.buf) {
		j.count++
	}
}

// Len returns how many events are held.
func (j *Journal) Len() int { return j.count }

// Recent returns up to n events, oldest first.
func (j *Journal) Recent(n int) []Event {
	if n > j.count {
		n = j.count
	}
	if n <= 0 {
		return nil
	}
	out := make([]Event, n)
	start := j.next - n
	if start < 0 {
		start += len(j.buf)
	}
	for i := range n {
		out[i] = j.buf[(start+i)%len(j.buf)]
	}
	return out
}
