// Package digester computes MD5, SHA-1, SHA-256 and SHA-512 digests of a
// file in a single sequential pass. Each fixed-size chunk read from the
// file is fed to all four hash states before the next read, so every
// digest in a Result covers the same bytes.
//
// The zero Digester reads in DefaultChunkSize chunks. Failures to open or
// read the file are reported as *IOError and never yield a partial Result.
package digester
