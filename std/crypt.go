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
	"github.com/rs/zerolog/log"
	kcp "github.com/xtaci/kcp-go/v5"

	"github.com/xtaci/spn/spn"
)

// SPNBlockCrypt implements kcp.BlockCrypt on top of the SPN transform.
// Every byte is transformed on its own, so packets of any size are accepted
// and dst may alias src.
type SPNBlockCrypt struct{}

// NewSPNBlockCrypt returns the SPN packet crypt. The transform is unkeyed.
func NewSPNBlockCrypt() (kcp.BlockCrypt, error) {
	return new(SPNBlockCrypt), nil
}

// Encrypt writes spn.Encrypt(src) into dst, which must hold len(src) bytes.
func (c *SPNBlockCrypt) Encrypt(dst, src []byte) { copy(dst, spn.Encrypt(src)) }

// Decrypt writes spn.Decrypt(src) into dst, which must hold len(src) bytes.
func (c *SPNBlockCrypt) Decrypt(dst, src []byte) { copy(dst, spn.Decrypt(src)) }

// cryptMethods is a lookup table for supported packet crypts.
var cryptMethods = map[string]func() (kcp.BlockCrypt, error){
	"null": func() (kcp.BlockCrypt, error) { return nil, nil },
	"none": func() (kcp.BlockCrypt, error) { return kcp.NewNoneBlockCrypt(nil) },
	"spn":  NewSPNBlockCrypt,
}

// SelectBlockCrypt translates a human readable crypt name into the concrete
// kcp.BlockCrypt implementation. It also reports the effective name after
// applying fallbacks so callers can log the final choice. "null" yields a nil
// BlockCrypt, meaning no packet crypt at all.
func SelectBlockCrypt(method string) (kcp.BlockCrypt, string) {
	if build, ok := cryptMethods[method]; ok {
		block, err := build()
		if err != nil {
			log.Warn().Err(err).Str("crypt", method).Msg("crypt: failed to create cipher, falling back to spn")
			block, _ = NewSPNBlockCrypt()
			return block, "spn"
		}
		return block, method
	}
	// Default to spn for unknown methods
	log.Warn().Str("crypt", method).Msg("crypt: unknown method, falling back to spn")
	block, _ := NewSPNBlockCrypt()
	return block, "spn"
}
