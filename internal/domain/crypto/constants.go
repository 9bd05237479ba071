package crypto

// AlgorithmAES represents the AES encryption algorithm
const AlgorithmAES = "AES"

// AlgorithmMD5 represents the MD5 digest algorithm
const AlgorithmMD5 = "MD5"

// AESKeySize128 is the 128-bit AES key size in bytes
const AESKeySize128 = 16

// AESKeySize192 is the 192-bit AES key size in bytes
const AESKeySize192 = 24

// AESKeySize256 is the 256-bit AES key size in bytes
const AESKeySize256 = 32

// Block cipher modes of operation
const (
	ModeCBC = "CBC"
	ModeECB = "ECB"
	ModeCFB = "CFB"
	ModeOFB = "OFB"
	ModeCTR = "CTR"
)

// Padding schemes
const (
	PaddingPkcs7       = "Pkcs7"
	PaddingAnsiX923    = "AnsiX923"
	PaddingIso10126    = "Iso10126"
	PaddingIso97971    = "Iso97971"
	PaddingZeroPadding = "ZeroPadding"
	PaddingNoPadding   = "NoPadding"
)

// Base64 variants
const (
	Base64Standard = "standard"
	Base64URLSafe  = "urlsafe"
	Base64MIME     = "mime"
)

// MIMELineLength is the maximum encoded line length mandated by RFC 2045.
const MIMELineLength = 76

// Text encodings accepted by the MD5 tool
const (
	TextEncodingUTF8   = "UTF-8"
	TextEncodingASCII  = "ASCII"
	TextEncodingLatin1 = "ISO-8859-1"
)

// Digest output formats. DigestFormatBinary renders the raw digest bytes as Latin-1 text.
const (
	DigestFormatHex    = "hex"
	DigestFormatBase64 = "base64"
	DigestFormatBinary = "binary"
)

// PassphraseSaltSize is the salt length of an OpenSSL "Salted__" container.
const PassphraseSaltSize = 8
