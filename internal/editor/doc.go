// Package editor opens a configuration in the user's text editor and reads
// it back.
package editor
