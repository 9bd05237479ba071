// Package codec converts between the textual representations of byte buffers used by the toolbox
// (UTF-8 text, hex, binary bit-strings and Base64) and normalizes user supplied secrets and
// initialization vectors to the exact byte lengths AES expects.
//
// Every function in this package is pure and safe for concurrent use.
package codec
