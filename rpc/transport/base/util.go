package base

import (
	"encoding/binary"
	"fmt"
	"io"
	"net"
)

// headerSize is the size of a frame header in bytes
const headerSize = 12

// maxFrameSize limits the payload of a single frame (64 MiB)
const maxFrameSize = 64 << 20

// writeFrame writes a frame to the connection with the format:
// - 8 bytes: requestID (uint64, big endian)
// - 4 bytes: data length (uint32, big endian)
// - N bytes: data payload
func writeFrame(conn net.Conn, requestID uint64, data []byte) error {
	if len(data) > maxFrameSize {
		return fmt.Errorf("frame of %d bytes exceeds the limit of %d bytes", len(data), maxFrameSize)
	}

	header := make([]byte, headerSize)
	binary.BigEndian.PutUint64(header[:8], requestID)
	binary.BigEndian.PutUint32(header[8:12], uint32(len(data)))

	b := net.Buffers{header, data}
	_, err := b.WriteTo(conn)
	return err
}

// readFrame reads a frame from the connection using the provided buffer.
// If the buffer is too small, a new buffer is allocated for the data.
func readFrame(conn io.Reader, buf []byte) (uint64, []byte, error) {
	if len(buf) < headerSize {
		buf = make([]byte, headerSize)
	}

	// Read header
	if _, err := io.ReadFull(conn, buf[:headerSize]); err != nil {
		return 0, nil, err
	}

	requestID := binary.BigEndian.Uint64(buf[:8])
	contentLength := binary.BigEndian.Uint32(buf[8:12])

	if contentLength == 0 {
		return requestID, []byte{}, nil
	}
	if contentLength > maxFrameSize {
		return 0, nil, fmt.Errorf("frame of %d bytes exceeds the limit of %d bytes", contentLength, maxFrameSize)
	}

	if len(buf) < int(contentLength) {
		buf = make([]byte, contentLength)
	}

	// Read data
	if _, err := io.ReadFull(conn, buf[:contentLength]); err != nil {
		return 0, nil, err
	}

	return requestID, buf[:contentLength], nil
}
