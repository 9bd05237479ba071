package cryptography

import (
	"bytes"
	"crypto/md5" //nolint:gosec // EVP_BytesToKey is defined over MD5
	"crypto/rand"
	"fmt"

	cryptoDomain "github.com/MGTheTrain/crypto-toolbox/internal/domain/crypto"
)

// saltedPrefix opens every OpenSSL passphrase container.
var saltedPrefix = []byte("Salted__")

// EncryptWithPassphrase encrypts with AES-256-CBC and PKCS#7 using a key and IV derived from the
// passphrase and a fresh random salt. The result is "Salted__" || salt || ciphertext.
func (a *aesProcessor) EncryptWithPassphrase(plaintext []byte, passphrase string) ([]byte, error) {
	salt := make([]byte, cryptoDomain.PassphraseSaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return a.encryptWithSalt(plaintext, passphrase, salt)
}

func (a *aesProcessor) encryptWithSalt(plaintext []byte, passphrase string, salt []byte) ([]byte, error) {
	key, iv := evpBytesToKey([]byte(passphrase), salt, cryptoDomain.AESKeySize256, 16)

	ciphertext, err := a.Encrypt(plaintext, passphraseParams(key, iv))
	if err != nil {
		return nil, err
	}

	container := make([]byte, 0, len(saltedPrefix)+len(salt)+len(ciphertext))
	container = append(container, saltedPrefix...)
	container = append(container, salt...)
	return append(container, ciphertext...), nil
}

// DecryptWithPassphrase opens a "Salted__" container. A wrong passphrase almost always surfaces as
// ErrDecryptionFailed through the padding check.
func (a *aesProcessor) DecryptWithPassphrase(container []byte, passphrase string) ([]byte, error) {
	headerLen := len(saltedPrefix) + cryptoDomain.PassphraseSaltSize
	if len(container) < headerLen || !bytes.HasPrefix(container, saltedPrefix) {
		return nil, fmt.Errorf("%w: input is not a salted passphrase container", cryptoDomain.ErrDecryptionFailed)
	}

	salt := container[len(saltedPrefix):headerLen]
	key, iv := evpBytesToKey([]byte(passphrase), salt, cryptoDomain.AESKeySize256, 16)

	return a.Decrypt(container[headerLen:], passphraseParams(key, iv))
}

func passphraseParams(key, iv []byte) cryptoDomain.CipherParams {
	return cryptoDomain.CipherParams{
		Key:     key,
		IV:      iv,
		Mode:    cryptoDomain.ModeCBC,
		Padding: cryptoDomain.PaddingPkcs7,
	}
}

// evpBytesToKey is OpenSSL's EVP_BytesToKey with MD5 and a single iteration:
// D_i = MD5(D_{i-1} || passphrase || salt), concatenated until keyLen+ivLen bytes are available.
func evpBytesToKey(passphrase, salt []byte, keyLen, ivLen int) ([]byte, []byte) {
	derived := make([]byte, 0, keyLen+ivLen+md5.Size)
	var prev []byte
	for len(derived) < keyLen+ivLen {
		h := md5.New() //nolint:gosec // see import
		h.Write(prev)
		h.Write(passphrase)
		h.Write(salt)
		prev = h.Sum(nil)
		derived = append(derived, prev...)
	}
	return derived[:keyLen], derived[keyLen : keyLen+ivLen]
}
