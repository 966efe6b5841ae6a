// The MIT License (MIT)
//
// # Copyright (c) 2016 xtaci
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package std

import (
	"io"

	"github.com/golang/snappy"
	"github.com/pkg/errors"
)

// CompStream frames everything written to the underlying stream with snappy
// and unframes everything read from it. Every Write is flushed as its own
// frame, so the peer never waits on data sitting in the encoder.
type CompStream struct {
	io.Closer
	enc *snappy.Writer
	dec *snappy.Reader
}

// NewCompStream wraps rwc; closing the CompStream closes rwc.
func NewCompStream(rwc io.ReadWriteCloser) *CompStream {
	return &CompStream{
		Closer: rwc,
		enc:    snappy.NewBufferedWriter(rwc),
		dec:    snappy.NewReader(rwc),
	}
}

func (s *CompStream) Read(p []byte) (int, error) {
	return s.dec.Read(p)
}

func (s *CompStream) Write(p []byte) (int, error) {
	if _, err := s.enc.Write(p); err != nil {
		return 0, errors.Wrap(err, "snappy write")
	}
	if err := s.enc.Flush(); err != nil {
		return 0, errors.Wrap(err, "snappy flush")
	}
	return len(p), nil
}
