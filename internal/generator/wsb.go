package generator

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/sandboxgui/wsbctl/internal/config"
)

const (
	valueEnable  = "Enable"
	valueDisable = "Disable"
	themeDark    = "Dark"
)

// wsbDocument mirrors the .wsb schema. Field order is the element order
// of the generated file; empty elements are omitted.
type wsbDocument struct {
	XMLName              xml.Name          `xml:"Configuration"`
	VGpu                 string            `xml:"VGpu,omitempty"`
	Networking           string            `xml:"Networking,omitempty"`
	AudioInput           string            `xml:"AudioInput"`
	VideoInput           string            `xml:"VideoInput"`
	ProtectedClient      string            `xml:"ProtectedClient"`
	PrinterRedirection   string            `xml:"PrinterRedirection"`
	ClipboardRedirection string            `xml:"ClipboardRedirection,omitempty"`
	MemoryInMB           string            `xml:"MemoryInMB,omitempty"`
	MappedFolders        *wsbMappedFolders `xml:"MappedFolders,omitempty"`
	LogonCommand         *wsbLogonCommand  `xml:"LogonCommand,omitempty"`
	HostName             string            `xml:"HostName,omitempty"`
	WindowsAppTheme      string            `xml:"WindowsAppTheme,omitempty"`
}

type wsbMappedFolders struct {
	Folders []wsbMappedFolder `xml:"MappedFolder"`
}

type wsbMappedFolder struct {
	HostFolder    string `xml:"HostFolder"`
	SandboxFolder string `xml:"SandboxFolder"`
	ReadOnly      string `xml:"ReadOnly"`
}

type wsbLogonCommand struct {
	Command string `xml:"Command"`
}

// GenerateWSB renders c as a Windows Sandbox configuration file.
//
// Settings that match the Windows Sandbox defaults (GPU, networking and
// clipboard enabled, 4096 MB) are left out so the host applies its own
// defaults. Audio, video, protected client and printer redirection are
// always written. Mapped folders missing either path are skipped.
// The output has no XML declaration and ends with a newline.
func GenerateWSB(c config.Configuration) string {
	out, err := xml.MarshalIndent(buildDocument(&c), "", "  ")
	if err != nil {
		// Only strings and fixed element names are marshalled.
		panic(fmt.Sprintf("generator: marshal wsb: %v", err))
	}
	return string(out) + "\n"
}

// WriteWSB writes the rendered configuration to w.
func WriteWSB(w io.Writer, c config.Configuration) error {
	_, err := io.WriteString(w, GenerateWSB(c))
	return err
}

func buildDocument(c *config.Configuration) *wsbDocument {
	doc := &wsbDocument{
		AudioInput:         enableDisable(c.AudioInputEnabled),
		VideoInput:         enableDisable(c.VideoInputEnabled),
		ProtectedClient:    enableDisable(c.ProtectedClientEnabled),
		PrinterRedirection: enableDisable(c.PrinterRedirectionEnabled),
		HostName:           c.EffectiveHostname(),
	}

	if !c.VGPUEnabled {
		doc.VGpu = valueDisable
	}
	if !c.NetworkingEnabled {
		doc.Networking = valueDisable
	}
	if !c.ClipboardRedirectionEnabled {
		doc.ClipboardRedirection = valueDisable
	}
	if c.MemoryMB != config.DefaultMemoryMB {
		doc.MemoryInMB = strconv.Itoa(c.MemoryMB)
	}

	if folders := c.UsableFolders(); len(folders) > 0 {
		doc.MappedFolders = &wsbMappedFolders{}
		for _, f := range folders {
			doc.MappedFolders.Folders = append(doc.MappedFolders.Folders, wsbMappedFolder{
				HostFolder:    f.HostFolder,
				SandboxFolder: f.SandboxFolder,
				ReadOnly:      strconv.FormatBool(f.ReadOnly),
			})
		}
	}

	if cmd := c.TrimmedLogonCommand(); cmd != "" {
		doc.LogonCommand = &wsbLogonCommand{Command: cmd}
	}

	if c.ForceDarkMode {
		doc.WindowsAppTheme = themeDark
	}

	return doc
}

func enableDisable(v bool) string {
	if v {
		return valueEnable
	}
	return valueDisable
}
