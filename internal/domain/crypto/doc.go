// Package crypto defines the contracts and parameter records shared by the toolbox's AES, Base64 and MD5
// processors. Implementations live in internal/infrastructure/cryptography.
package crypto
