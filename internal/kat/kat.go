// Package kat holds RC5-32 known-answer vectors shared by the self-test and
// the package tests.
package kat

import "encoding/hex"

// Vector is one RC5-32 known-answer test: encrypting Plaintext under Key with
// Rounds rounds yields Ciphertext.
type Vector struct {
	Name       string
	Key        []byte
	Rounds     uint32
	Plaintext  []byte
	Ciphertext []byte
}

// Rivest lists the five chained RC5-32/12/16 examples published with the
// original RC5 description. Each ciphertext is the next plaintext.
var Rivest = []Vector{
	{
		Name:       "Rivest1",
		Key:        mustHex("00000000000000000000000000000000"),
		Rounds:     12,
		Plaintext:  mustHex("0000000000000000"),
		Ciphertext: mustHex("21A5DBEE154B8F6D"),
	},
	{
		Name:       "Rivest2",
		Key:        mustHex("915F4619BE41B2516355A50110A9CE91"),
		Rounds:     12,
		Plaintext:  mustHex("21A5DBEE154B8F6D"),
		Ciphertext: mustHex("F7C013AC5B2B8952"),
	},
	{
		Name:       "Rivest3",
		Key:        mustHex("783348E75AEB0F2FD7B169BB8DC16787"),
		Rounds:     12,
		Plaintext:  mustHex("F7C013AC5B2B8952"),
		Ciphertext: mustHex("2F42B3B70369FC92"),
	},
	{
		Name:       "Rivest4",
		Key:        mustHex("DC49DB1375A5584F6485B413B5F12BAF"),
		Rounds:     12,
		Plaintext:  mustHex("2F42B3B70369FC92"),
		Ciphertext: mustHex("65C178B284D197CC"),
	},
	{
		Name:       "Rivest5",
		Key:        mustHex("5269F149D41BA0152497574D7F153125"),
		Rounds:     12,
		Plaintext:  mustHex("65C178B284D197CC"),
		Ciphertext: mustHex("EB44E415DA319824"),
	},
}

// Extra covers key lengths and round counts outside the published set.
var Extra = []Vector{
	{
		Name:       "ASCIIKey12Rounds",
		Key:        []byte("my secret key"),
		Rounds:     12,
		Plaintext:  []byte("testtest"),
		Ciphertext: mustHex("8a2aaf8ba93ad227"),
	},
	{
		Name:       "OneByteKeyOneRound",
		Key:        []byte("k"),
		Rounds:     1,
		Plaintext:  mustHex("0000000000000000"),
		Ciphertext: mustHex("1253c1c8d5af7325"),
	},
	{
		Name:       "ZeroByteKeyOneRound",
		Key:        mustHex("00"),
		Rounds:     1,
		Plaintext:  mustHex("0000000000000000"),
		Ciphertext: mustHex("40a62ba43510c208"),
	},
	{
		Name:       "256BitKey20Rounds",
		Key:        mustHex("000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"),
		Rounds:     20,
		Plaintext:  mustHex("0001020304050607"),
		Ciphertext: mustHex("3095987609df0371"),
	},
	{
		Name:       "ASCIIKey255Rounds",
		Key:        []byte("my secret key"),
		Rounds:     255,
		Plaintext:  []byte("testtest"),
		Ciphertext: mustHex("371e7b30e7747685"),
	},
}

// All returns Rivest followed by Extra.
func All() []Vector {
	out := make([]Vector, 0, len(Rivest)+len(Extra))
	out = append(out, Rivest...)
	return append(out, Extra...)
}

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}
