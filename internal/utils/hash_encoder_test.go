package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashEncoderRoundTrip(t *testing.T) {
	encoder, err := NewHashEncoder("test salt")
	require.NoError(t, err)

	plaintext := "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
	ciphertext, err := encoder.Encryption(plaintext)
	require.NoError(t, err)
	assert.NotEqual(t, plaintext, ciphertext)

	decoded, err := encoder.Decryption(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decoded)
}

func TestHashEncoderSaltMatters(t *testing.T) {
	a, err := NewHashEncoder("salt a")
	require.NoError(t, err)
	b, err := NewHashEncoder("salt b")
	require.NoError(t, err)

	plaintext := "deadbeef"
	ca, err := a.Encryption(plaintext)
	require.NoError(t, err)
	cb, err := b.Encryption(plaintext)
	require.NoError(t, err)
	assert.NotEqual(t, ca, cb)
}
