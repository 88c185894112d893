package system

import (
	"context"
	"errors"
	"io/fs"
	"testing"
)

func TestMockFS_ReadWriteFile(t *testing.T) {
	mockFS := NewMockFS()

	// Write a file
	content := []byte("hello world")
	err := mockFS.WriteFile("/test/file.txt", content, 0644)
	if err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	// Read it back
	data, err := mockFS.ReadFile("/test/file.txt")
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}

	if string(data) != "hello world" {
		t.Errorf("ReadFile = %q, want %q", string(data), "hello world")
	}
}

func TestMockFS_ReadFile_NotExists(t *testing.T) {
	mockFS := NewMockFS()

	_, err := mockFS.ReadFile("/nonexistent")
	if err != fs.ErrNotExist {
		t.Errorf("ReadFile error = %v, want fs.ErrNotExist", err)
	}
}

func TestMockFS_Stat(t *testing.T) {
	mockFS := NewMockFS()
	mockFS.AddFile("/test/file.txt", []byte("content"), 0644)
	mockFS.AddDir("/test/dir")

	// Stat file
	info, err := mockFS.Stat("/test/file.txt")
	if err != nil {
		t.Fatalf("Stat file error: %v", err)
	}
	if info.IsDir() {
		t.Error("File should not be a directory")
	}
	if info.Name() != "file.txt" {
		t.Errorf("Name = %q, want %q", info.Name(), "file.txt")
	}

	// Stat directory
	info, err = mockFS.Stat("/test/dir")
	if err != nil {
		t.Fatalf("Stat dir error: %v", err)
	}
	if !info.IsDir() {
		t.Error("Dir should be a directory")
	}
}

func TestMockFS_Exists(t *testing.T) {
	mockFS := NewMockFS()
	mockFS.AddFile("/file.txt", []byte("x"), 0644)
	mockFS.AddDir("/dir")

	if !mockFS.Exists("/file.txt") {
		t.Error("File should exist")
	}
	if !mockFS.Exists("/dir") {
		t.Error("Dir should exist")
	}
	if mockFS.Exists("/nonexistent") {
		t.Error("Nonexistent should not exist")
	}
}


func TestMockFS_Remove(t *testing.T) {
	mockFS := NewMockFS()
	mockFS.AddFile("/file.txt", []byte("x"), 0644)

	if err := mockFS.Remove("/file.txt"); err != nil {
		t.Fatalf("Remove error: %v", err)
	}

	if mockFS.Exists("/file.txt") {
		t.Error("File should be removed")
	}
	if err := mockFS.Remove("/file.txt"); err != fs.ErrNotExist {
		t.Errorf("second Remove error = %v, want fs.ErrNotExist", err)
	}
}

func TestMockFS_Rename(t *testing.T) {
	mockFS := NewMockFS()
	mockFS.AddFile("/a.tmp", []byte("content"), 0644)

	if err := mockFS.Rename("/a.tmp", "/a.json"); err != nil {
		t.Fatalf("Rename error: %v", err)
	}
	if mockFS.Exists("/a.tmp") {
		t.Error("old path should be gone")
	}
	data, ok := mockFS.GetFile("/a.json")
	if !ok || string(data) != "content" {
		t.Errorf("new path content = %q, %v", data, ok)
	}

	if err := mockFS.Rename("/missing", "/x"); err != fs.ErrNotExist {
		t.Errorf("Rename missing error = %v, want fs.ErrNotExist", err)
	}
}

func TestMockFS_MkdirAll(t *testing.T) {
	mockFS := NewMockFS()

	if err := mockFS.MkdirAll("/a/b/c", 0755); err != nil {
		t.Fatalf("MkdirAll error: %v", err)
	}

	for _, dir := range []string{"/a", "/a/b", "/a/b/c"} {
		info, err := mockFS.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Errorf("%s should be a directory", dir)
		}
	}
}

func TestMockFS_ReadDir(t *testing.T) {
	mockFS := NewMockFS()
	mockFS.AddFile("/p/b.json", []byte("{}"), 0644)
	mockFS.AddFile("/p/a.json", []byte("{}"), 0644)
	mockFS.AddDir("/p/sub")

	entries, err := mockFS.ReadDir("/p")
	if err != nil {
		t.Fatalf("ReadDir error: %v", err)
	}

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	if len(names) != 3 || names[0] != "a.json" || names[1] != "b.json" || names[2] != "sub" {
		t.Errorf("ReadDir names = %v", names)
	}
	if !entries[2].IsDir() {
		t.Error("sub should be a directory")
	}

	if _, err := mockFS.ReadDir("/missing"); err != fs.ErrNotExist {
		t.Errorf("ReadDir missing error = %v, want fs.ErrNotExist", err)
	}
}

func TestMockFS_ErrorInjection(t *testing.T) {
	mockFS := NewMockFS()
	mockFS.ReadFileErr = fs.ErrPermission

	_, err := mockFS.ReadFile("/anything")
	if err != fs.ErrPermission {
		t.Errorf("ReadFile error = %v, want ErrPermission", err)
	}
}

func TestWriteFileAtomic(t *testing.T) {
	mockFS := NewMockFS()

	if err := WriteFileAtomic(mockFS, "/cfg/doc.json", []byte("new"), 0644); err != nil {
		t.Fatalf("WriteFileAtomic error: %v", err)
	}

	data, ok := mockFS.GetFile("/cfg/doc.json")
	if !ok || string(data) != "new" {
		t.Errorf("content = %q, %v", data, ok)
	}
	if mockFS.Exists("/cfg/doc.json.tmp") {
		t.Error("temporary file should not remain")
	}
	if !mockFS.Exists("/cfg") {
		t.Error("parent directory should be created")
	}
}

func TestWriteFileAtomic_RenameFailureKeepsOriginal(t *testing.T) {
	mockFS := NewMockFS()
	mockFS.AddFile("/doc.json", []byte("old"), 0644)
	mockFS.RenameErr = fs.ErrPermission

	err := WriteFileAtomic(mockFS, "/doc.json", []byte("new"), 0644)
	if !errors.Is(err, fs.ErrPermission) {
		t.Fatalf("WriteFileAtomic error = %v, want ErrPermission", err)
	}

	data, _ := mockFS.GetFile("/doc.json")
	if string(data) != "old" {
		t.Errorf("original content = %q, want old", data)
	}
	if mockFS.Exists("/doc.json.tmp") {
		t.Error("temporary file should be cleaned up")
	}
}

func TestWriteFileAtomic_RealFS(t *testing.T) {
	path := t.TempDir() + "/nested/doc.json"

	if err := WriteFileAtomic(DefaultFS(), path, []byte("data"), 0644); err != nil {
		t.Fatalf("WriteFileAtomic error: %v", err)
	}
	data, err := DefaultFS().ReadFile(path)
	if err != nil || string(data) != "data" {
		t.Errorf("ReadFile = %q, %v", data, err)
	}
}

func TestMockExecutor_ExecuteInteractive(t *testing.T) {
	exec := NewMockExecutor()

	if err := exec.ExecuteInteractive(context.Background(), "vi", "/tmp/x.json"); err != nil {
		t.Fatalf("ExecuteInteractive error: %v", err)
	}

	cmd, ok := exec.LastCommand()
	if !ok {
		t.Fatal("No command recorded")
	}
	if cmd.Name != "vi" || len(cmd.Args) != 1 || cmd.Args[0] != "/tmp/x.json" {
		t.Errorf("Command = %+v", cmd)
	}
}

func TestMockExecutor_Hook(t *testing.T) {
	exec := NewMockExecutor()
	var seen string
	exec.OnInteractive = func(name string, args []string) error {
		seen = name
		return nil
	}

	_ = exec.ExecuteInteractive(context.Background(), "nano")
	if seen != "nano" {
		t.Errorf("hook saw %q, want nano", seen)
	}

	exec.InteractiveErr = fs.ErrPermission
	if err := exec.ExecuteInteractive(context.Background(), "nano"); err != fs.ErrPermission {
		t.Errorf("ExecuteInteractive error = %v, want ErrPermission", err)
	}
}

func TestMockExecutor_Reset(t *testing.T) {
	exec := NewMockExecutor()
	_ = exec.ExecuteInteractive(context.Background(), "cmd1")
	_ = exec.ExecuteInteractive(context.Background(), "cmd2")

	if len(exec.Commands) != 2 {
		t.Errorf("Commands length = %d, want 2", len(exec.Commands))
	}

	exec.Reset()

	if len(exec.Commands) != 0 {
		t.Errorf("Commands length after reset = %d, want 0", len(exec.Commands))
	}
}
