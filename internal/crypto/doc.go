// Package crypto exposes the AES block-cipher primitive used by aesguard.
//
// Contents
//
//   - Key-schedule derivation with key-length validation (DeriveSchedule)
//   - Single-block forward and inverse transforms (EncryptBlock,
//     DecryptBlock, KeySchedule.Encrypt, KeySchedule.Decrypt)
//   - Schedule erasure and scoped use (KeySchedule.Erase, WithSchedule)
//   - Key check values for identifying a key without revealing it (CheckValue)
//   - Known-answer self-test (KnownAnswers, SelfTest)
//
// # Notes
//
// The round function and key expansion come from the standard library's
// crypto/aes; this package only adds the handling contract around it. There
// is no mode of operation, padding or chaining here: every call transforms
// exactly one Block.
//
// A KeySchedule is as sensitive as the key it came from. Callers erase it
// when done, preferably through WithSchedule so erasure happens on every exit
// path. Using a schedule after Erase panics.
package crypto
