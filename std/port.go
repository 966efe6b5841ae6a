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

	"github.com/xtaci/spn/spn"
)

// Port implements io.ReadWriteCloser for the SPN transform: bytes written are
// encrypted on their way to the underlying stream, bytes read are decrypted.
// The transform is byte-wise and stateless, so reads and writes may be split
// at any boundary.
type Port struct {
	underlying io.ReadWriteCloser // io.Writer is not enough, we need to close the underlying writer as well
}

func NewPort(underlying io.ReadWriteCloser) *Port {
	return &Port{underlying}
}

// Read decrypts the bytes it reads in place.
func (port *Port) Read(p []byte) (n int, err error) {
	n, err = port.underlying.Read(p)
	copy(p[:n], spn.Decrypt(p[:n]))
	return
}

// Write encrypts into a fresh buffer, p is left untouched.
func (port *Port) Write(p []byte) (n int, err error) {
	return port.underlying.Write(spn.Encrypt(p))
}

func (port *Port) Close() error {
	return port.underlying.Close()
}
