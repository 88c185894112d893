// Package document reads and writes wsbctl JSON documents and exported
// .wsb files through a system.FileSystem.
package document
