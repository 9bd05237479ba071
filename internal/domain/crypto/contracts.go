package crypto

import "io"

// AESProcessor handles AES symmetric encryption operations.
type AESProcessor interface {
	// GenerateKey generates a random AES key of the specified size.
	// Supported key sizes: 16 (AES-128), 24 (AES-192), 32 (AES-256) bytes.
	GenerateKey(keySize int) ([]byte, error)

	// Encrypt encrypts plaintext with the key, IV, mode and padding bundled in params.
	Encrypt(plaintext []byte, params CipherParams) ([]byte, error)

	// Decrypt reverses Encrypt. Inconsistent padding or length yields ErrDecryptionFailed.
	Decrypt(ciphertext []byte, params CipherParams) ([]byte, error)

	// EncryptWithPassphrase derives key and IV from the passphrase and a random salt (OpenSSL EVP_BytesToKey, MD5)
	// and returns the binary "Salted__" container.
	EncryptWithPassphrase(plaintext []byte, passphrase string) ([]byte, error)

	// DecryptWithPassphrase opens a container produced by EncryptWithPassphrase or `openssl enc -aes-256-cbc -md md5`.
	DecryptWithPassphrase(container []byte, passphrase string) ([]byte, error)
}

// MD5Processor computes optionally salted and iterated MD5 digests.
type MD5Processor interface {
	// Digest returns MD5(salt || data), re-digested Iterations-1 more times over the raw digest bytes.
	Digest(data []byte, opts DigestOptions) ([]byte, error)

	// DigestReader is Digest over a stream, used for file hashing.
	DigestReader(r io.Reader, opts DigestOptions) ([]byte, error)

	// Verify compares a hex digest against an expected value, ignoring case and surrounding whitespace.
	Verify(digestHex, expected string) bool
}

// Base64Processor encodes and decodes Base64 in its standard, URL-safe and MIME variants.
type Base64Processor interface {
	// Encode renders data as Base64 according to opts.
	Encode(data []byte, opts Base64Options) (string, error)

	// Decode parses Base64 text according to opts. Line breaks are ignored.
	Decode(encoded string, opts Base64Options) ([]byte, error)
}
