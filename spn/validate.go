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

import "github.com/pkg/errors"

const (
	nibbleSize = 16 // entries in a nibble table
	bitSize    = 8  // entries in a bit position table
)

// broken tables must never produce ciphertext
func init() {
	if err := Validate(); err != nil {
		panic(err)
	}
}

// Validate verifies that both table pairs are full bijections and that each
// inverse table undoes its forward table in both directions.
func Validate() error {
	if err := validatePair("sbox", sbox[:], rsbox[:], nibbleSize); err != nil {
		return err
	}
	return validatePair("pbox", pbox[:], rpbox[:], bitSize)
}

func validatePair(name string, fwd, inv []byte, size int) error {
	if err := validateBijection(name, fwd, size); err != nil {
		return err
	}
	if err := validateBijection(name+" inverse", inv, size); err != nil {
		return err
	}

	for x := 0; x < size; x++ {
		if int(inv[fwd[x]]) != x {
			return errors.Errorf("spn: %s inverse maps %d back to %d, want %d", name, fwd[x], inv[fwd[x]], x)
		}
		if int(fwd[inv[x]]) != x {
			return errors.Errorf("spn: %s maps %d to %d, want %d", name, inv[x], fwd[inv[x]], x)
		}
	}
	return nil
}

func validateBijection(name string, table []byte, size int) error {
	if len(table) != size {
		return errors.Errorf("spn: %s has %d entries, want %d", name, len(table), size)
	}

	seen := make([]bool, size)
	for i, v := range table {
		if int(v) >= size {
			return errors.Errorf("spn: %s[%d] = %d is out of range [0, %d)", name, i, v, size)
		}
		if seen[v] {
			return errors.Errorf("spn: %s[%d] = %d is a duplicate", name, i, v)
		}
		seen[v] = true
	}
	return nil
}
