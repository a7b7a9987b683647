// Package crypto implements the client-side field encryption for vault
// entries. The master secret never leaves the caller: the server stores
// and returns the opaque strings produced here without being able to
// read them.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"

	"golang.org/x/crypto/argon2"
)

const (
	// MinSecretLength is the minimum accepted master secret length.
	MinSecretLength = 8

	saltSize  = 16
	nonceSize = 12
	keySize   = 32
)

var (
	// ErrSecretTooShort is returned when the master secret is shorter
	// than MinSecretLength.
	ErrSecretTooShort = errors.New("master secret too short")

	// ErrDecryptionFailed is returned when a ciphertext cannot be
	// decrypted: wrong secret, truncated envelope or tampered data.
	ErrDecryptionFailed = errors.New("decryption failed")
)

// deriveKey stretches the master secret into an AES-256 key with
// argon2id over the given salt.
func deriveKey(secret string, salt []byte) []byte {
	return argon2.IDKey([]byte(secret), salt, 1, 64*1024, 4, keySize)
}

// Encrypt seals plaintext with a key derived from the master secret.
// Every call draws a fresh salt and nonce, so equal plaintexts under
// the same secret produce unrelated ciphertexts. The result is
// base64(salt || nonce || ciphertext).
func Encrypt(plaintext, secret string) (string, error) {
	if len(secret) < MinSecretLength {
		return "", ErrSecretTooShort
	}

	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	block, err := aes.NewCipher(deriveKey(secret, salt))
	if err != nil {
		return "", err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	sealed := aesgcm.Seal(nil, nonce, []byte(plaintext), nil)

	envelope := make([]byte, 0, saltSize+nonceSize+len(sealed))
	envelope = append(envelope, salt...)
	envelope = append(envelope, nonce...)
	envelope = append(envelope, sealed...)

	return base64.StdEncoding.EncodeToString(envelope), nil
}

// Decrypt opens a ciphertext produced by Encrypt using the same master
// secret. A wrong secret fails with ErrDecryptionFailed rather than
// returning garbage: the GCM tag authenticates the whole envelope.
func Decrypt(ciphertext, secret string) (string, error) {
	if len(secret) < MinSecretLength {
		return "", ErrSecretTooShort
	}

	envelope, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", ErrDecryptionFailed
	}
	if len(envelope) < saltSize+nonceSize {
		return "", ErrDecryptionFailed
	}

	salt := envelope[:saltSize]
	nonce := envelope[saltSize : saltSize+nonceSize]
	sealed := envelope[saltSize+nonceSize:]

	block, err := aes.NewCipher(deriveKey(secret, salt))
	if err != nil {
		return "", err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	plaintext, err := aesgcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", ErrDecryptionFailed
	}

	return string(plaintext), nil
}
