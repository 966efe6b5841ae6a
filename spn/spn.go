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

// Substitute replaces the high and the low nibble of every byte in src
// through the S-Box. The result is a new slice of the same length.
func Substitute(src []byte) []byte {
	return substitute(src, &sbox)
}

// InverseSubstitute undoes Substitute.
func InverseSubstitute(src []byte) []byte {
	return substitute(src, &rsbox)
}

// Permute moves every bit j of every byte in src to bit PBox()[j]. The result
// is a new slice of the same length.
func Permute(src []byte) []byte {
	return permute(src, &pbox)
}

// InversePermute undoes Permute.
func InversePermute(src []byte) []byte {
	return permute(src, &rpbox)
}

// Encrypt runs the forward pipeline: substitution, then permutation.
func Encrypt(src []byte) []byte {
	return Permute(Substitute(src))
}

// Decrypt runs the reverse pipeline. The layers are undone in reverse order
// of application; swapping them does not recover the input in general.
func Decrypt(src []byte) []byte {
	return InverseSubstitute(InversePermute(src))
}

// SubNibble looks up the low 4 bits of x in the S-Box.
func SubNibble(x byte) byte { return sbox[x&0x0f] }

// InvSubNibble looks up the low 4 bits of x in the RS-Box.
func InvSubNibble(x byte) byte { return rsbox[x&0x0f] }

// PermuteByte applies the P-Box to a single byte.
func PermuteByte(b byte) byte { return permuteByte(b, &pbox) }

// InversePermuteByte applies the RP-Box to a single byte.
func InversePermuteByte(b byte) byte { return permuteByte(b, &rpbox) }

func substitute(src []byte, box *[16]byte) []byte {
	dst := make([]byte, len(src))
	for i, b := range src {
		hi := (b & 0xf0) >> 4
		lo := b & 0x0f
		dst[i] = box[hi]<<4 | box[lo]
	}
	return dst
}

func permute(src []byte, box *[8]byte) []byte {
	dst := make([]byte, len(src))
	for i, b := range src {
		dst[i] = permuteByte(b, box)
	}
	return dst
}

// box is a bijection, so every output bit is written exactly once
func permuteByte(b byte, box *[8]byte) byte {
	var out byte
	for j := 0; j < bitSize; j++ {
		bit := (b >> j) & 0x01
		out |= bit << box[j]
	}
	return out
}
