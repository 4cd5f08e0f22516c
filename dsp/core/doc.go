// Package core holds the small numeric helpers and the prepare-time stream
// description shared by the equalizer packages.
package core
