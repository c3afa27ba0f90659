// Package commands defines the aesguard CLI and wires dependencies for subcommands.
//
// Commands
//
//   - encrypt    Encrypt exactly one 16-byte block
//   - decrypt    Decrypt exactly one 16-byte block
//   - kcv        Print the key check value of a key
//   - selftest   Run the FIPS-197 known-answer tests
//
// # Implementation
//
// The root command builds the app context (logger and primitive service)
// before any subcommand runs. Key material given on the command line is
// decoded straight into a secret.Buffer and the decoded heap copy is erased;
// the buffer is closed when the command returns.
package commands
