package lcd

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeScreen struct {
	clears int
	rows   map[uint8]string
	row    uint8
}

func (s *fakeScreen) ClearDisplay() {
	s.clears++
	s.rows = map[uint8]string{}
}

func (s *fakeScreen) SetCursor(_, row uint8) { s.row = row }

func (s *fakeScreen) Print(data []byte) { s.rows[s.row] += string(data) }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHandlerRunDisplaysMessages(t *testing.T) {
	screen := &fakeScreen{}
	msgs := make(chan Message, 2)
	h := NewHandler(screen, msgs, discardLogger())

	msgs <- Message{Line1: []byte("Phase 0"), Line2: []byte("blue->red")}
	msgs <- Message{Line1: []byte("Phase 1"), Line2: []byte("red->green")}
	close(msgs)
	h.Run()

	assert.Equal(t, 2, screen.clears)
	assert.Equal(t, map[uint8]string{0: "Phase 1", 1: "red->green"}, screen.rows)
}

func TestHandlerTruncatesLongLines(t *testing.T) {
	screen := &fakeScreen{}
	msgs := make(chan Message, 1)
	h := NewHandler(screen, msgs, discardLogger())

	msgs <- Message{Line1: []byte("0123456789abcdefXYZ"), Line2: []byte("short")}
	close(msgs)
	h.Run()

	assert.Equal(t, "0123456789abcdef", screen.rows[0])
	assert.Equal(t, "short", screen.rows[1])
}

func TestSendDropsWhenFull(t *testing.T) {
	msgs := make(chan Message, 1)

	assert.True(t, Send(msgs, "a", "b"))
	assert.False(t, Send(msgs, "c", "d"))

	got := <-msgs
	assert.Equal(t, "a", string(got.Line1))
	assert.Equal(t, "b", string(got.Line2))
}
