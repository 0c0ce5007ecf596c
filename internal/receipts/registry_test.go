package receipts

import (
	"bytes"
	"strings"
	"testing"

	"github.com/belezaclinic/clinic-manager/internal/httperr"
)

func TestRegistry_AddAndGet(t *testing.T) {
	r := NewRegistry()

	url, err := r.Add("comprovante.pdf", []byte("%PDF-1.4"))
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if !strings.HasPrefix(url, "/files/receipts/") {
		t.Fatalf("unexpected receipt URL %q", url)
	}

	id := strings.TrimPrefix(url, "/files/receipts/")
	f, ok := r.Get(id)
	if !ok {
		t.Fatal("expected file retrievable by id")
	}
	if f.ContentType != "application/pdf" {
		t.Errorf("expected application/pdf, got %q", f.ContentType)
	}
	if !bytes.Equal(f.Data, []byte("%PDF-1.4")) {
		t.Error("stored bytes differ from uploaded bytes")
	}
}

func TestRegistry_UppercaseExtension(t *testing.T) {
	r := NewRegistry()

	url, err := r.Add("NOTA.JPG", []byte{0xff, 0xd8})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	f, _ := r.Get(strings.TrimPrefix(url, "/files/receipts/"))
	if f.ContentType != "image/jpeg" {
		t.Errorf("expected image/jpeg, got %q", f.ContentType)
	}
}

func TestRegistry_RejectsInvalidType(t *testing.T) {
	r := NewRegistry()

	for _, name := range []string{"planilha.xlsx", "sem-extensao", "script.pdf.exe"} {
		_, err := r.Add(name, []byte("x"))
		if httperr.BusinessCode(err) != "invalid_file_type" {
			t.Errorf("%s: expected invalid_file_type, got %v", name, err)
		}
	}
}

func TestRegistry_RejectsOversizedFile(t *testing.T) {
	r := NewRegistry()

	_, err := r.Add("grande.png", make([]byte, MaxFileSize+1))
	if httperr.BusinessCode(err) != "file_too_large" {
		t.Errorf("expected file_too_large, got %v", err)
	}

	if _, err := r.Add("limite.png", make([]byte, MaxFileSize)); err != nil {
		t.Errorf("file at the size limit should be accepted: %v", err)
	}
}

func TestRegistry_GetUnknownID(t *testing.T) {
	if _, ok := NewRegistry().Get("inexistente"); ok {
		t.Error("expected miss for unknown id")
	}
}
