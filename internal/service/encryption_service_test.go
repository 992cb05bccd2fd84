package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEncryptionKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func TestAESEncryptionService_RoundTrip(t *testing.T) {
	svc, err := NewAESEncryptionService(testEncryptionKey)
	require.NoError(t, err)

	keyMaterial := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0x11, 0x22, 0x33}
	ciphertext, err := svc.Encrypt(keyMaterial)
	require.NoError(t, err)
	assert.NotContains(t, ciphertext, "deadbeef")

	plaintext, err := svc.Decrypt(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, keyMaterial, plaintext)
}

func TestAESEncryptionService_NonDeterministicNonce(t *testing.T) {
	svc, err := NewAESEncryptionService(testEncryptionKey)
	require.NoError(t, err)

	a, err := svc.Encrypt([]byte("same input"))
	require.NoError(t, err)
	b, err := svc.Encrypt([]byte("same input"))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestAESEncryptionService_RejectsTamperedCiphertext(t *testing.T) {
	svc, err := NewAESEncryptionService(testEncryptionKey)
	require.NoError(t, err)

	ciphertext, err := svc.Encrypt([]byte("card keys"))
	require.NoError(t, err)

	flipped := "0"
	if strings.HasPrefix(ciphertext, "0") {
		flipped = "1"
	}
	_, err = svc.Decrypt(flipped + ciphertext[1:])
	assert.Error(t, err)
}

func TestAESEncryptionService_RejectsBadKey(t *testing.T) {
	_, err := NewAESEncryptionService("too-short")
	assert.Error(t, err)

	_, err = NewAESEncryptionService("0001")
	assert.Error(t, err)
}

func TestAESEncryptionService_RejectsShortCiphertext(t *testing.T) {
	svc, err := NewAESEncryptionService(testEncryptionKey)
	require.NoError(t, err)

	_, err = svc.Decrypt("0011")
	assert.Error(t, err)
}
