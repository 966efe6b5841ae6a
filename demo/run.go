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

package main

import (
	"bytes"
	"fmt"
	"io"
	"net"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/xtaci/spn/spn"
	"github.com/xtaci/spn/std"
)

var errNotRecovered = errors.New("inverse pipeline did not recover the input")

// run writes the three report lines to w, then runs the packet and, when
// enabled, the stream self-checks.
func run(w io.Writer, config *Config, logger zerolog.Logger) error {
	input := []byte(config.Input)

	// forward: substitute, then permute
	cipher := spn.Permute(spn.Substitute(input))
	// reverse: undo the permutation first
	recovered := spn.InverseSubstitute(spn.InversePermute(cipher))

	fmt.Fprintf(w, "Input: %v\n", input)
	fmt.Fprintf(w, "Cipher: %v\n", cipher)
	fmt.Fprintf(w, "Inversed: %v\n", recovered)

	if !bytes.Equal(recovered, input) {
		return errors.Wrapf(errNotRecovered, "got %v, want %v", recovered, input)
	}
	logger.Debug().Int("bytes", len(input)).Msg("pipeline round trip ok")

	if err := packetCheck(logger, config.Crypt, input, cipher); err != nil {
		return err
	}

	if config.Stream {
		if err := streamCheck(input); err != nil {
			return errors.Wrap(err, "stream check")
		}
		logger.Info().Int("bytes", len(input)).Msg("stream round trip ok")
	}
	return nil
}

// packetCheck pushes the input through the selected kcp.BlockCrypt in place.
// The spn crypt must reproduce the pipeline's cipher bytes.
func packetCheck(logger zerolog.Logger, method string, input, cipher []byte) error {
	block, effective := std.SelectBlockCrypt(method)
	if block == nil {
		logger.Info().Str("crypt", effective).Msg("packet crypt disabled")
		return nil
	}

	packet := append([]byte(nil), input...)
	block.Encrypt(packet, packet)
	if effective == "spn" && !bytes.Equal(packet, cipher) {
		return errors.Errorf("packet crypt %s disagrees with pipeline: %v != %v", effective, packet, cipher)
	}

	block.Decrypt(packet, packet)
	if !bytes.Equal(packet, input) {
		return errors.Wrapf(errNotRecovered, "packet crypt %s", effective)
	}
	logger.Info().Str("crypt", effective).Int("bytes", len(packet)).Msg("packet round trip ok")
	return nil
}

// streamCheck sends input through an SPN port over a snappy stream, across a
// relay that only ever sees the compressed ciphertext, and reads it back.
func streamCheck(input []byte) error {
	clientConn, relayIn := net.Pipe()
	relayOut, serverConn := net.Pipe()

	client := std.NewPort(std.NewCompStream(clientConn))
	server := std.NewPort(std.NewCompStream(serverConn))
	defer server.Close()

	relayDone := make(chan struct{})
	go func() {
		std.Relay(relayIn, relayOut)
		close(relayDone)
	}()

	writeErr := make(chan error, 1)
	go func() {
		_, err := client.Write(input)
		writeErr <- err
	}()

	var received bytes.Buffer
	if _, err := std.Copy(&received, io.LimitReader(server, int64(len(input)))); err != nil {
		client.Close()
		return errors.WithStack(err)
	}
	if err := <-writeErr; err != nil {
		client.Close()
		return err
	}

	client.Close()
	<-relayDone

	if !bytes.Equal(received.Bytes(), input) {
		return errors.Wrapf(errNotRecovered, "got %v, want %v", received.Bytes(), input)
	}
	return nil
}
