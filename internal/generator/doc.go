// Package generator renders Windows Sandbox (.wsb) configuration files.
//
// GenerateWSB turns a config.Configuration into the XML document read by
// Windows Sandbox:
//
//	wsb := generator.GenerateWSB(cfg)
//
// The transform is one-way and cannot fail. Elements are written in a fixed
// order so exported files diff cleanly:
//
//	VGpu                  only "Disable", when the GPU is off
//	Networking            only "Disable", when networking is off
//	AudioInput            always, Enable/Disable
//	VideoInput            always, Enable/Disable
//	ProtectedClient       always, Enable/Disable
//	PrinterRedirection    always, Enable/Disable
//	ClipboardRedirection  only "Disable", when the clipboard is off
//	MemoryInMB            only when not 4096
//	MappedFolders         only when a folder has both paths set
//	LogonCommand/Command  only when the trimmed command is non-empty
//	HostName              only when enabled and non-blank
//	WindowsAppTheme       only "Dark", when dark mode is forced
package generator
