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

// Package spn implements a single-round, unkeyed substitution-permutation
// network over byte sequences.
//
// Each byte passes through two layers:
//
//   - a substitution layer that replaces the high and the low nibble
//     independently through a fixed 4-bit S-Box, and
//   - a permutation layer that moves every bit of the byte to a new position
//     through a fixed 8-bit P-Box.
//
// Both layers have exact inverses (the RS-Box and the RP-Box), so
//
//	Decrypt(Encrypt(b)) == b
//
// for every byte sequence b, including the empty one. Decrypt undoes the
// layers in reverse order: inverse permutation first, inverse substitution
// second.
//
// There is no key and no round iteration. The package demonstrates the
// mechanics of an SPN; it is not a secure cipher.
//
// # Thread Safety
//
// The tables are never written after package initialization and every
// transform allocates its own output, so all functions are safe for
// concurrent use.
package spn
