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
	"sync"
)

const bufSize = 4096

var copyBufs = sync.Pool{
	New: func() any {
		b := make([]byte, bufSize)
		return &b
	},
}

// Copy moves src into dst until EOF. io.CopyBuffer already takes the
// WriterTo/ReaderFrom shortcuts; the pooled buffer only serves the fallback.
func Copy(dst io.Writer, src io.Reader) (int64, error) {
	buf := copyBufs.Get().(*[]byte)
	defer copyBufs.Put(buf)
	return io.CopyBuffer(dst, src, *buf)
}

// Relay forwards bytes between a and b in both directions without looking at
// them, so SPN ports on either side of it see only ciphertext crossing. The
// first direction to stop closes both ends; Relay returns once both have
// stopped. errAB reports the a->b direction, errBA the b->a direction.
func Relay(a, b io.ReadWriteCloser) (errAB, errBA error) {
	var closeOnce sync.Once
	stopped := make(chan struct{}, 2)

	forward := func(dst io.Writer, src io.Reader, err *error) {
		_, *err = Copy(dst, src)
		closeOnce.Do(func() {
			a.Close()
			b.Close()
		})
		stopped <- struct{}{}
	}

	go forward(b, a, &errAB)
	go forward(a, b, &errBA)

	<-stopped
	<-stopped
	return
}
