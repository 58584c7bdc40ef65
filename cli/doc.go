// Package cli is a command-line host for the digest operations. It builds
// a cobra command tree with two commands, dig and multiply, and layers
// configuration with viper: flags, then MULTIDIGEST_* environment
// variables, then an optional config file, then defaults.
package cli
