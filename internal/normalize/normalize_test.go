package normalize

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gyeh/unspsc/pkg/unspsc"
)

func TestCode(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"50201506", "50201506"},
		{"  50201506\n", "50201506"},
		{"50-20-15-06", "50201506"},
		{"5020 1506", "50201506"},
		{"50.20.15.06", "50201506"},
		{"5020150X", "5020150X"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Code(tt.in); got != tt.want {
			t.Errorf("Code(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCodes_KeepsEmpty(t *testing.T) {
	got := Codes([]string{"50-20-15-06", " ", "72101620"})
	if len(got) != 3 || got[0] != "50201506" || got[1] != "" || got[2] != "72101620" {
		t.Errorf("unexpected result: %v", got)
	}
}

func TestTableDigest(t *testing.T) {
	all := unspsc.All()
	if TableDigest(all) != TableDigest(unspsc.All()) {
		t.Fatal("digest is not stable")
	}

	swapped := unspsc.All()
	swapped[0], swapped[1] = swapped[1], swapped[0]
	if TableDigest(all) == TableDigest(swapped) {
		t.Error("digest ignores order")
	}

	reworded := unspsc.All()
	reworded[0].Description += "!"
	if TableDigest(all) == TableDigest(reworded) {
		t.Error("digest ignores description changes")
	}

	// Boundary shifts between code and description must not collide.
	a := []unspsc.Entry{{Code: "1", Description: "23"}}
	b := []unspsc.Entry{{Code: "12", Description: "3"}}
	if TableDigest(a) == TableDigest(b) {
		t.Error("digest collides on shifted boundary")
	}
}

func TestFileHash(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.bin")
	if err := os.WriteFile(path, []byte("abc"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := FileHash(path)
	if err != nil {
		t.Fatalf("FileHash: %v", err)
	}
	const want = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got != want {
		t.Errorf("FileHash = %s, want %s", got, want)
	}

	if _, err := FileHash(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing file")
	}
}
