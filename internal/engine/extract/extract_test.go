package extract

import (
	"bytes"
	"strings"
	"testing"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		data     []byte
		want     fileFormat
	}{
		{"pdf magic", "resume.bin", []byte("%PDF-1.7 rest"), formatPDF},
		{"zip magic", "resume.docx", []byte("PK\x03\x04rest"), formatDOCX},
		{"pdf extension", "resume.pdf", []byte("not really"), formatPDF},
		{"docx extension", "Resume.DOCX", []byte("not really"), formatDOCX},
		{"plain text", "resume.txt", []byte("John Smith"), formatText},
		{"unknown extension", "resume", []byte("John Smith"), formatText},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectFormat(tt.filename, tt.data); got != tt.want {
				t.Errorf("detectFormat(%q) = %v, want %v", tt.filename, got, tt.want)
			}
		})
	}
}

func TestTextPlain(t *testing.T) {
	got, err := Text("resume.txt", []byte("John Smith\r\nEngineer  "))
	if err != nil {
		t.Fatalf("Text error: %v", err)
	}
	if got != "John Smith\nEngineer" {
		t.Errorf("Text = %q", got)
	}
}

func TestTextEmpty(t *testing.T) {
	if _, err := Text("resume.txt", nil); err != ErrEmptyFile {
		t.Errorf("err = %v, want ErrEmptyFile", err)
	}
}

func TestWordMLToText(t *testing.T) {
	in := `<w:p><w:r><w:t>John Smith</w:t></w:r></w:p><w:p><w:r><w:t>Engineer &amp; Writer</w:t></w:r></w:p>`
	want := "John Smith\nEngineer & Writer"
	if got := wordMLToText(in); got != want {
		t.Errorf("wordMLToText = %q, want %q", got, want)
	}
}

func TestReadAllLimited(t *testing.T) {
	t.Run("under limit", func(t *testing.T) {
		data, err := ReadAllLimited(bytes.NewReader([]byte("hello")), 10)
		if err != nil || string(data) != "hello" {
			t.Errorf("got %q, %v", data, err)
		}
	})
	t.Run("over limit", func(t *testing.T) {
		_, err := ReadAllLimited(strings.NewReader(strings.Repeat("a", 11)), 10)
		if err == nil {
			t.Error("expected error for oversized input")
		}
	})
}
