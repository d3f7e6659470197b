package fonts

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadMissingDirFallsBack(t *testing.T) {
	r := Load(filepath.Join(t.TempDir(), "nope"))

	if !r.Fallback() {
		t.Fatal("Fallback() = false for missing directory")
	}
	for _, f := range r.Fonts() {
		if f.Family != FallbackFamily {
			t.Errorf("%s family = %q, want %q", f.Style, f.Family, FallbackFamily)
		}
		if f.Err == nil {
			t.Errorf("%s fallback has no reason", f.Style)
		}
		if len(f.Data()) == 0 {
			t.Errorf("%s fallback has no data", f.Style)
		}
	}
}

func TestLoadFromDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, RegularFile), goregular.TTF, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, BoldFile), []byte("not a font"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := Load(dir)

	reg := r.Face(Regular)
	if reg.Fallback || reg.Family != PreferredFamily {
		t.Errorf("regular = %q fallback=%v, want %q", reg.Family, reg.Fallback, PreferredFamily)
	}
	if reg.Source != filepath.Join(dir, RegularFile) {
		t.Errorf("regular source = %q", reg.Source)
	}

	bold := r.Face(Bold)
	if !bold.Fallback || bold.Family != FallbackFamily {
		t.Errorf("bold = %q fallback=%v, want built-in fallback", bold.Family, bold.Fallback)
	}
	if bold.Err == nil {
		t.Error("bold fallback has no reason")
	}
	if !r.Fallback() {
		t.Error("Fallback() = false with one fallback face")
	}
}

func TestBuiltinIsNotFallback(t *testing.T) {
	r := Builtin()
	if r.Fallback() {
		t.Error("Builtin registry reports fallback")
	}
	if r.Face(Bold).Style != Bold {
		t.Error("Face(Bold) returned the wrong style")
	}
}

func TestWidth(t *testing.T) {
	r := Builtin()

	if w := r.Width("", Regular, 12); w != 0 {
		t.Errorf("empty width = %v, want 0", w)
	}
	if w := r.Width("abc", Regular, 0); w != 0 {
		t.Errorf("zero size width = %v, want 0", w)
	}

	w10 := r.Width("Dynamic Motion", Regular, 10)
	w20 := r.Width("Dynamic Motion", Regular, 20)
	if w10 <= 0 {
		t.Fatalf("width = %v, want positive", w10)
	}
	if math.Abs(w20-2*w10) > 1e-6 {
		t.Errorf("width does not scale with size: %v at 10, %v at 20", w10, w20)
	}
	if r.Width("MMMM", Regular, 10) <= r.Width("M", Regular, 10) {
		t.Error("longer string is not wider")
	}
	if again := r.Width("Dynamic Motion", Regular, 10); again != w10 {
		t.Errorf("width not deterministic: %v then %v", w10, again)
	}
}

func TestBase64Cached(t *testing.T) {
	f := Builtin().Face(Regular)
	a := f.Base64()
	if a == "" {
		t.Fatal("Base64() is empty")
	}
	if b := f.Base64(); a != b {
		t.Error("Base64() changed between calls")
	}
}
