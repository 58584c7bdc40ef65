// Package render formats a digester.Result for display. HTML reproduces
// the block shown by the desktop UI; Text, JSON and YAML serve terminal
// and machine consumers. Rendering never computes anything and only fails
// for an unknown format or an encoder error.
package render
