package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/subtle"
	"errors"
	"fmt"

	"boltcard-wallet/internal/core/domain"

	"github.com/aead/cmac"
)

// NTAG424 SUN message layout: the PICC payload is a single AES-128-CBC
// block (zero IV) under the card's piccDataKey. Decrypted:
//
//	byte 0     tag (0xC7 = UID + counter present)
//	bytes 1-7  card UID
//	bytes 8-10 tap counter, little-endian
//
// The 8-byte CMAC is verified with a session key derived from the
// cmacKey over SV2 = 3C C3 00 01 00 80 | uid | counter.
const piccDataTag = 0xC7

var (
	errPiccDataLength = errors.New("picc data is not a single AES block")
	errPiccDataTag    = errors.New("unexpected picc data tag byte")
	errCmacMismatch   = errors.New("cmac verification failed")
)

var sv2Prefix = []byte{0x3C, 0xC3, 0x00, 0x01, 0x00, 0x80}

// extractPiccDataInfo decrypts and authenticates one tag cryptogram
// against one card's key set. It is a pure function over its inputs.
func extractPiccDataInfo(piccData, mac []byte, keys domain.CardKeySet) (*domain.AuthenticatedTagInfo, error) {
	if len(piccData) != aes.BlockSize {
		return nil, errPiccDataLength
	}

	block, err := aes.NewCipher(keys.PiccDataKey)
	if err != nil {
		return nil, fmt.Errorf("picc data cipher: %w", err)
	}

	plain := make([]byte, aes.BlockSize)
	iv := make([]byte, aes.BlockSize)
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, piccData)

	if plain[0] != piccDataTag {
		return nil, errPiccDataTag
	}

	uid := make([]byte, 7)
	copy(uid, plain[1:8])
	counterBytes := plain[8:11]
	counter := uint32(counterBytes[0]) | uint32(counterBytes[1])<<8 | uint32(counterBytes[2])<<16

	expected, err := computeTagCmac(keys.CmacKey, uid, counterBytes)
	if err != nil {
		return nil, err
	}
	if subtle.ConstantTimeCompare(expected, mac) != 1 {
		return nil, errCmacMismatch
	}

	return &domain.AuthenticatedTagInfo{UID: uid, Counter: counter}, nil
}

// computeTagCmac derives the tap session key and returns the truncated
// 8-byte CMAC the tag should have produced.
func computeTagCmac(cmacKey, uid, counter []byte) ([]byte, error) {
	sv2 := make([]byte, 0, aes.BlockSize)
	sv2 = append(sv2, sv2Prefix...)
	sv2 = append(sv2, uid...)
	sv2 = append(sv2, counter...)

	keyCipher, err := aes.NewCipher(cmacKey)
	if err != nil {
		return nil, fmt.Errorf("cmac key cipher: %w", err)
	}
	sessionKey, err := cmac.Sum(sv2, keyCipher, aes.BlockSize)
	if err != nil {
		return nil, fmt.Errorf("session key derivation: %w", err)
	}

	sessionCipher, err := aes.NewCipher(sessionKey)
	if err != nil {
		return nil, fmt.Errorf("session cipher: %w", err)
	}
	full, err := cmac.Sum(nil, sessionCipher, aes.BlockSize)
	if err != nil {
		return nil, fmt.Errorf("session cmac: %w", err)
	}

	// The tag transmits only the odd-indexed bytes of the full CMAC.
	short := make([]byte, 8)
	for i := 0; i < 8; i++ {
		short[i] = full[i*2+1]
	}
	return short, nil
}
