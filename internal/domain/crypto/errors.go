package crypto

import "errors"

// ErrDecryptionFailed is returned when ciphertext, key, IV and padding are inconsistent with each other.
// Decryption never returns partially recovered bytes alongside this error.
var ErrDecryptionFailed = errors.New("decryption failed")
