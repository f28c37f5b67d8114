// Package cli wires the cobra command line and viper configuration for the
// hanki binary.
package cli
