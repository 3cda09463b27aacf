package runs

import (
	"bufio"
	"io"
)

// byteReader reads exactly one byte per call, so nothing is buffered past what the program consumed.
type byteReader struct {
	r   io.Reader
	buf [1]byte
}

func (b *byteReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	return b.r.Read(p[:1])
}

func (b *byteReader) ReadByte() (byte, error) {
	if _, err := io.ReadFull(b.r, b.buf[:]); err != nil {
		if err == io.ErrUnexpectedEOF {
			err = io.EOF
		}
		return 0, err
	}
	return b.buf[0], nil
}

// stdinFor buffers r, unless the tap repl reads r after halt and must see every unconsumed byte.
func stdinFor(r io.Reader, tapOnHalt TapOnHalt) Stdin {
	if tapOnHalt {
		return &byteReader{
			r: r,
		}
	}
	return bufio.NewReader(r)
}
