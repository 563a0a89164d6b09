// Package wire implements the length-prefixed JSON framing used by the
// remote transport adapter: each message is a 4-byte big-endian length
// followed by that many bytes of UTF-8 JSON text.
package wire

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
)

// maxMessageBytes bounds how large a single decoded message may be,
// guarding against a peer that sends a bogus length prefix and
// exhausting memory on the read side.
const maxMessageBytes = 64 << 20 // 64 MiB

// Write encodes value as JSON and writes it to w as a length-prefixed
// frame.
func Write(w io.Writer, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("wire: encoding message: %w", err)
	}

	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(data)))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return fmt.Errorf("wire: writing length prefix: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("wire: writing payload: %w", err)
	}
	return nil
}

// Read reads a length-prefixed JSON frame from r and decodes it into
// value, which must be a pointer.
func Read(r io.Reader, value any) error {
	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return fmt.Errorf("wire: reading length prefix: %w", err)
	}
	length := binary.BigEndian.Uint32(lenBuf[:])
	if length > maxMessageBytes {
		return fmt.Errorf("wire: message length %d exceeds limit of %d bytes", length, maxMessageBytes)
	}

	data := make([]byte, length)
	if _, err := io.ReadFull(r, data); err != nil {
		return fmt.Errorf("wire: reading payload: %w", err)
	}

	if err := json.Unmarshal(data, value); err != nil {
		return fmt.Errorf("wire: decoding message: %w", err)
	}
	return nil
}
