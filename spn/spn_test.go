package spn

import (
	"bytes"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	helloWorld       = []byte("Hello world!")
	helloWorldCipher = []byte{158, 129, 162, 162, 147, 225, 15, 147, 60, 162, 163, 194}
)

func TestNibbleBijection(t *testing.T) {
	for x := byte(0); x < 16; x++ {
		assert.Equal(t, x, InvSubNibble(SubNibble(x)), "nibble %#x", x)
		assert.Equal(t, x, SubNibble(InvSubNibble(x)), "nibble %#x", x)
	}
}

func TestSubNibbleIgnoresHighBits(t *testing.T) {
	assert.Equal(t, SubNibble(0x3), SubNibble(0xf3))
	assert.Equal(t, InvSubNibble(0xc), InvSubNibble(0xac))
}

func TestBitTableInverse(t *testing.T) {
	p, rp := PBox(), RPBox()
	for j := 0; j < 8; j++ {
		assert.Equal(t, byte(j), rp[p[j]], "bit %d", j)
		assert.Equal(t, byte(j), p[rp[j]], "bit %d", j)
	}
}

func TestTableAccessorsReturnCopies(t *testing.T) {
	s := SBox()
	s[0] = 0xff
	assert.Equal(t, byte(0x9), SBox()[0])

	p := PBox()
	p[1] = 0
	assert.Equal(t, byte(4), PBox()[1])
}

func TestLiteralVectors(t *testing.T) {
	t.Run("first sbox entry", func(t *testing.T) {
		assert.Equal(t, byte(0x9), SubNibble(0x0))
		assert.Equal(t, byte(0x0), InvSubNibble(0x9))
	})

	t.Run("zero byte substitution", func(t *testing.T) {
		assert.Equal(t, []byte{0x99}, Substitute([]byte{0x00}))
		assert.Equal(t, []byte{0x00}, InverseSubstitute([]byte{0x99}))
	})

	t.Run("single bit permutation", func(t *testing.T) {
		// bit 1 moves to bit 4
		assert.Equal(t, byte(0x10), PermuteByte(0x02))
		assert.Equal(t, byte(0x02), InversePermuteByte(0x10))
		// low nibble spreads over the even bits
		assert.Equal(t, byte(0x33), PermuteByte(0x0f))
		assert.Equal(t, byte(0xcc), PermuteByte(0xf0))
	})
}

func TestHelloWorld(t *testing.T) {
	cipher := Permute(Substitute(helloWorld))
	require.Equal(t, helloWorldCipher, cipher)
	assert.Equal(t, cipher, Encrypt(helloWorld))

	recovered := InverseSubstitute(InversePermute(cipher))
	require.Equal(t, []byte{72, 101, 108, 108, 111, 32, 119, 111, 114, 108, 100, 33}, recovered)
	assert.Equal(t, recovered, Decrypt(cipher))
}

func TestInverseOrderMatters(t *testing.T) {
	wrong := InversePermute(InverseSubstitute(helloWorldCipher))
	assert.NotEqual(t, helloWorld, wrong)
	assert.Equal(t, []byte{81, 57, 73, 73, 69, 179, 220, 69, 218, 73, 77, 225}, wrong)
}

func TestEveryByteRoundTrips(t *testing.T) {
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}

	transforms := []struct {
		name    string
		forward func([]byte) []byte
		inverse func([]byte) []byte
	}{
		{"substitution", Substitute, InverseSubstitute},
		{"permutation", Permute, InversePermute},
		{"pipeline", Encrypt, Decrypt},
	}
	for _, tc := range transforms {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, all, tc.inverse(tc.forward(all)))
			assert.Equal(t, all, tc.forward(tc.inverse(all)))

			// every output value is hit exactly once
			seen := make(map[byte]bool, len(all))
			for _, b := range tc.forward(all) {
				require.False(t, seen[b], "byte %#x produced twice", b)
				seen[b] = true
			}
		})
	}
}

func TestRandomRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, size := range []int{1, 2, 15, 16, 17, 1024, 65537} {
		data := make([]byte, size)
		rng.Read(data)

		assert.Equal(t, data, InverseSubstitute(Substitute(data)), "size %d", size)
		assert.Equal(t, data, InversePermute(Permute(data)), "size %d", size)
		assert.Equal(t, data, Decrypt(Encrypt(data)), "size %d", size)
	}
}

func TestEmptyInput(t *testing.T) {
	for _, in := range [][]byte{nil, {}} {
		for name, fn := range map[string]func([]byte) []byte{
			"Substitute":        Substitute,
			"InverseSubstitute": InverseSubstitute,
			"Permute":           Permute,
			"InversePermute":    InversePermute,
			"Encrypt":           Encrypt,
			"Decrypt":           Decrypt,
		} {
			out := fn(in)
			assert.NotNil(t, out, name)
			assert.Len(t, out, 0, name)
		}
	}
}

func TestOutputIsFreshBuffer(t *testing.T) {
	src := []byte("do not touch")
	orig := append([]byte(nil), src...)

	for _, fn := range []func([]byte) []byte{Substitute, InverseSubstitute, Permute, InversePermute} {
		out := fn(src)
		require.Len(t, out, len(src))
		require.Equal(t, orig, src)

		out[0] ^= 0xff
		require.Equal(t, orig, src)

		again := fn(src)
		again[1] ^= 0xff
		assert.NotEqual(t, out[1], again[1])
	}
}

func TestConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			data := make([]byte, 4096)
			rng.Read(data)
			for k := 0; k < 32; k++ {
				if !bytes.Equal(data, Decrypt(Encrypt(data))) {
					t.Errorf("round trip failed in goroutine %d", seed)
					return
				}
			}
		}(int64(i))
	}
	wg.Wait()
}

func BenchmarkEncrypt(b *testing.B) {
	data := make([]byte, 4096)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Encrypt(data)
	}
}

func BenchmarkDecrypt(b *testing.B) {
	data := make([]byte, 4096)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Decrypt(data)
	}
}
