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

package spn

// sbox substitutes one nibble for another, rsbox maps it back.
var (
	sbox  = [16]byte{0x9, 0x4, 0xa, 0xb, 0xd, 0x1, 0x8, 0x5, 0x6, 0x2, 0x0, 0x3, 0xc, 0xe, 0xf, 0x7}
	rsbox = [16]byte{0xa, 0x5, 0x9, 0xb, 0x1, 0x7, 0x8, 0xf, 0x6, 0x0, 0x2, 0x3, 0xc, 0x4, 0xd, 0xe}
)

// pbox moves source bit j to bit pbox[j], rpbox moves it back.
var (
	pbox  = [8]byte{0, 4, 1, 5, 2, 6, 3, 7}
	rpbox = [8]byte{0, 2, 4, 6, 1, 3, 5, 7}
)

// SBox returns a copy of the substitution table.
func SBox() [16]byte { return sbox }

// RSBox returns a copy of the inverse substitution table.
func RSBox() [16]byte { return rsbox }

// PBox returns a copy of the permutation table.
func PBox() [8]byte { return pbox }

// RPBox returns a copy of the inverse permutation table.
func RPBox() [8]byte { return rpbox }
