// Package lcd shows LED status on a 16x2 character display, such as an
// HD44780 behind an I2C backpack.
//
// Example usage:
//
//	lcdMessages := make(chan lcd.Message, 4)
//	handler := lcd.NewHandler(&device, lcdMessages, logger)
//	go handler.Run()
//
//	// Never blocks the LED loop; drops the message if the display lags.
//	lcd.Send(lcdMessages, "Phase 1", "red->green")
package lcd

import (
	"log/slog"
)

// Screen is a character display. *hd44780i2c.Device satisfies it.
type Screen interface {
	ClearDisplay()
	SetCursor(col, row uint8)
	Print(data []byte)
}

// Message represents a two-line LCD message.
type Message struct {
	Line1 []byte
	Line2 []byte
}

// Handler processes LCD messages from a channel.
type Handler struct {
	screen   Screen
	messages <-chan Message
	logger   *slog.Logger
	columns  int
}

// NewHandler creates a new 16x2 LCD message handler.
func NewHandler(screen Screen, messages <-chan Message, logger *slog.Logger) *Handler {
	return &Handler{
		screen:   screen,
		messages: messages,
		logger:   logger,
		columns:  16,
	}
}

// Run processes messages from the channel and updates the LCD until the
// channel is closed. Run should be called in a separate goroutine.
func (h *Handler) Run() {
	for msg := range h.messages {
		h.display(msg)
	}
}

// display prints msg to the screen.
func (h *Handler) display(msg Message) {
	h.logger.Debug("lcd:display", slog.String("line1", string(msg.Line1)))
	h.screen.ClearDisplay()
	h.screen.SetCursor(0, 0)
	h.screen.Print(h.truncate(msg.Line1))
	h.screen.SetCursor(0, 1)
	h.screen.Print(h.truncate(msg.Line2))
}

// truncate reslices line to the display width, no allocation.
func (h *Handler) truncate(line []byte) []byte {
	if len(line) > h.columns {
		return line[:h.columns]
	}
	return line
}

// Send queues a message without blocking. It reports whether the message
// was queued; a full channel drops it.
func Send(messages chan<- Message, line1, line2 string) bool {
	select {
	case messages <- Message{Line1: []byte(line1), Line2: []byte(line2)}:
		return true
	default:
		return false
	}
}
