package record

import "fmt"

// LexError reports a malformed byte stream: a bad tag, a missing field
// separator, an unexpected end of input, or a misplaced continuation.
type LexError struct {
	// Tag is the record tag being parsed when the error occurred, or -1
	// if the error occurred before a tag could be read.
	Tag int
	// Offset is the byte offset into the input where the error occurred.
	Offset int
	Msg     string
}

func (e *LexError) Error() string {
	if e.Tag < 0 {
		return fmt.Sprintf("record: offset %d: %s", e.Offset, e.Msg)
	}
	return fmt.Sprintf("record: tag %02d: offset %d: %s", e.Tag, e.Offset, e.Msg)
}
