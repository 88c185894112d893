package editor

import (
	"context"
	"errors"
	"testing"

	"github.com/sandboxgui/wsbctl/internal/config"
	wsberrors "github.com/sandboxgui/wsbctl/internal/errors"
	"github.com/sandboxgui/wsbctl/internal/system"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		visual     string
		editor     string
		want       string
	}{
		{"configured wins", "code --wait", "vim", "nano", "code --wait"},
		{"visual", "", "vim", "nano", "vim"},
		{"editor", "", "", "nano", "nano"},
		{"blank configured", "   ", "", "nano", "nano"},
		{"fallback", "", "", "", FallbackEditor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("VISUAL", tt.visual)
			t.Setenv("EDITOR", tt.editor)

			if got := Resolve(tt.configured); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.configured, got, tt.want)
			}
		})
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		command  string
		wantProg string
		wantArgs []string
		wantErr  bool
	}{
		{"vi", "vi", nil, false},
		{"code --wait", "code", []string{"--wait"}, false},
		{`"/opt/My Editor/bin/edit" -n`, "/opt/My Editor/bin/edit", []string{"-n"}, false},
		{`emacsclient -a ''`, "emacsclient", []string{"-a", ""}, false},
		{`vim "unterminated`, "", nil, true},
		{"   ", "", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			prog, args, err := Split(tt.command)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Split(%q) error = %v, wantErr %v", tt.command, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if prog != tt.wantProg {
				t.Errorf("prog = %q, want %q", prog, tt.wantProg)
			}
			if len(args) != len(tt.wantArgs) {
				t.Fatalf("args = %q, want %q", args, tt.wantArgs)
			}
			for i := range args {
				if args[i] != tt.wantArgs[i] {
					t.Errorf("args[%d] = %q, want %q", i, args[i], tt.wantArgs[i])
				}
			}
		})
	}
}

func TestEdit(t *testing.T) {
	mockFS := system.NewMockFS()
	exec := system.NewMockExecutor()
	exec.OnInteractive = func(name string, args []string) error {
		path := args[len(args)-1]
		return mockFS.WriteFile(path, []byte(`{"memory_mb": 2048, "force_dark_mode": true}`), 0644)
	}

	ed := &Editor{Command: "code --wait", TempDir: "/tmp", FS: mockFS, Exec: exec}
	got, err := ed.Edit(context.Background(), "/docs/box.json", config.Default())
	if err != nil {
		t.Fatalf("Edit failed: %v", err)
	}

	if got.MemoryMB != 2048 || !got.ForceDarkMode {
		t.Errorf("Edit() = %+v", got)
	}

	cmd, ok := exec.LastCommand()
	if !ok {
		t.Fatal("editor was not launched")
	}
	if cmd.Name != "code" || len(cmd.Args) != 2 || cmd.Args[0] != "--wait" || cmd.Args[1] != "/tmp/wsbctl-edit-box.json" {
		t.Errorf("command = %+v", cmd)
	}
	if mockFS.Exists("/tmp/wsbctl-edit-box.json") {
		t.Error("scratch document should be removed")
	}
}

func TestEdit_UnchangedDocument(t *testing.T) {
	cfg := config.PresetTesting.Apply(config.Default())
	cfg.AddMappedFolder(config.NewMappedFolder(`C:\Tools`))

	ed := &Editor{Command: "true", TempDir: "/tmp", FS: system.NewMockFS(), Exec: system.NewMockExecutor()}
	got, err := ed.Edit(context.Background(), "box", cfg)
	if err != nil {
		t.Fatalf("Edit failed: %v", err)
	}
	if !got.Equal(cfg) {
		t.Errorf("Edit() = %+v, want %+v", got, cfg)
	}
}

func TestEdit_MalformedResult(t *testing.T) {
	mockFS := system.NewMockFS()
	exec := system.NewMockExecutor()
	exec.OnInteractive = func(name string, args []string) error {
		return mockFS.WriteFile(args[len(args)-1], []byte(`{"memory_mb": `), 0644)
	}

	ed := &Editor{Command: "vi", TempDir: "/tmp", FS: mockFS, Exec: exec}
	_, err := ed.Edit(context.Background(), "box.json", config.Default())
	if !errors.Is(err, wsberrors.ErrMalformedDocument) {
		t.Errorf("Edit error = %v, want ErrMalformedDocument", err)
	}
}

func TestEdit_EditorFails(t *testing.T) {
	exec := system.NewMockExecutor()
	exec.InteractiveErr = errors.New("exit status 1")

	ed := &Editor{Command: "vi", TempDir: "/tmp", FS: system.NewMockFS(), Exec: exec}
	if _, err := ed.Edit(context.Background(), "box.json", config.Default()); err == nil {
		t.Error("Edit should fail when the editor fails")
	}
}
