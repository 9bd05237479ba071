package app

import "io"

// Result is what every form operation returns: the rendered output and a human readable
// summary of the parameters that produced it.
type Result struct {
	Output string
	Info   string
}

// VerifyResult reports the outcome of comparing a freshly computed digest against an expected one.
type VerifyResult struct {
	Match     bool
	Generated string
	Provided  string
}

// AESService runs the AES forms: a passphrase based basic form and a parameterized advanced form.
type AESService interface {
	// EncryptBasic encrypts text into a Base64 encoded OpenSSL "Salted__" container.
	EncryptBasic(text, passphrase string) (*Result, error)

	// DecryptBasic opens a Base64 encoded "Salted__" container. The plaintext must be valid UTF-8.
	DecryptBasic(text, passphrase string) (*Result, error)

	// Encrypt runs the advanced form. An empty IV is replaced by a random one, reported in Info.
	Encrypt(req AESRequest) (*Result, error)

	// Decrypt runs the advanced form in reverse. Req.Format names the ciphertext encoding.
	Decrypt(req AESRequest) (*Result, error)

	// GenerateIV returns a random 16 character alphanumeric IV.
	GenerateIV() (string, error)
}

// Base64Service runs the Base64 forms.
type Base64Service interface {
	EncodeBasic(text string) (*Result, error)
	DecodeBasic(text string) (*Result, error)
	Encode(req Base64Request) (*Result, error)
	Decode(req Base64Request) (*Result, error)
}

// MD5Service runs the MD5 forms.
type MD5Service interface {
	// Hash returns the lowercase hex MD5 of the UTF-8 text.
	Hash(text string) (*Result, error)

	// HashAdvanced applies text encoding, salt, iterations and output format.
	HashAdvanced(req MD5Request) (*Result, error)

	// HashFile digests a stream. req.Text and req.Encoding are ignored.
	HashFile(r io.Reader, name string, size int64, req MD5Request) (*Result, error)

	// Verify hashes text and compares it against expected, ignoring case.
	Verify(text, expected string) (*VerifyResult, error)
}
