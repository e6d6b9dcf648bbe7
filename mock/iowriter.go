package mock

// IOWriter is an io.Writer which accumulates everything written to it so tests can
// inspect output after the fact.
type IOWriter struct {
	buf []byte
}

func (t *IOWriter) Reset() {
	t.buf = t.buf[:0]
}

func (t *IOWriter) Write(b []byte) (int, error) {
	t.buf = append(t.buf, b...)

	return len(b), nil
}

func (t *IOWriter) String() string {
	return string(t.buf)
}

func (t *IOWriter) Len() int {
	return len(t.buf)
}

// Lines returns the accumulated output split into lines without their terminating
// newline. A trailing partial line is included.
func (t *IOWriter) Lines() []string {
	var lines []string
	start := 0
	for ix, b := range t.buf {
		if b == '\n' {
			lines = append(lines, string(t.buf[start:ix]))
			start = ix + 1
		}
	}
	if start < len(t.buf) {
		lines = append(lines, string(t.buf[start:]))
	}

	return lines
}
