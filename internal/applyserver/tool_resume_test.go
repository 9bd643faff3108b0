package applyserver

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"
)

func TestReadUploadFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	if err := os.WriteFile(path, []byte("Jane Roe\njane@example.com"), 0600); err != nil {
		t.Fatal(err)
	}

	data, name, err := readUpload(ResumeUploadInput{Path: path})
	if err != nil {
		t.Fatalf("readUpload: %v", err)
	}
	if name != path {
		t.Errorf("name = %q", name)
	}
	if string(data) != "Jane Roe\njane@example.com" {
		t.Errorf("data = %q", data)
	}
}

func TestReadUploadFromBase64(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString([]byte("resume body"))

	data, name, err := readUpload(ResumeUploadInput{ContentBase64: encoded, FileName: "cv.docx"})
	if err != nil {
		t.Fatalf("readUpload: %v", err)
	}
	if name != "cv.docx" {
		t.Errorf("name = %q", name)
	}
	if string(data) != "resume body" {
		t.Errorf("data = %q", data)
	}

	_, name, err = readUpload(ResumeUploadInput{ContentBase64: encoded})
	if err != nil || name != "resume" {
		t.Errorf("default name = %q, err = %v", name, err)
	}
}

func TestReadUploadErrors(t *testing.T) {
	tests := []struct {
		name  string
		input ResumeUploadInput
	}{
		{"empty", ResumeUploadInput{}},
		{"both sources", ResumeUploadInput{Path: "x", ContentBase64: "eA=="}},
		{"bad base64", ResumeUploadInput{ContentBase64: "not base64!!"}},
		{"missing file", ResumeUploadInput{Path: filepath.Join(t.TempDir(), "nope.pdf")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := readUpload(tt.input); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestGenerateInputValidate(t *testing.T) {
	valid := GenerateInput{JobTitle: "Engineer", Company: "Acme", JobDescription: "Build things"}
	if err := valid.validate(); err != nil {
		t.Errorf("valid input rejected: %v", err)
	}

	for _, tt := range []struct {
		name   string
		mutate func(*GenerateInput)
	}{
		{"no title", func(in *GenerateInput) { in.JobTitle = "" }},
		{"no company", func(in *GenerateInput) { in.Company = "" }},
		{"no description", func(in *GenerateInput) { in.JobDescription = "" }},
	} {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			if err := in.validate(); err == nil {
				t.Error("expected error")
			}
		})
	}
}
