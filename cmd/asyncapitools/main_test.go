package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testDoc = `asyncapi: 2.6.0
info:
  title: Account Service
  version: 1.0.0
channels:
  user/signedup:
    subscribe:
      message:
        name: userSignedUp
`

func TestHandleConvertWritesJSON(t *testing.T) {
	dir := t.TempDir()
	specPath := filepath.Join(dir, "asyncapi.yaml")
	outPath := filepath.Join(dir, "asyncapi.json")
	if err := os.WriteFile(specPath, []byte(testDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := handleConvert([]string{"-t", "json", "-o", outPath, specPath}); err != nil {
		t.Fatalf("handleConvert() error = %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"asyncapi": "2.6.0"`) {
		t.Errorf("converted output missing asyncapi field: %s", data)
	}
	if !strings.Contains(string(data), "user/signedup") {
		t.Errorf("converted output missing channel: %s", data)
	}
}

func TestHandleConvertRequiresTarget(t *testing.T) {
	specPath := filepath.Join(t.TempDir(), "asyncapi.yaml")
	if err := os.WriteFile(specPath, []byte(testDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	err := handleConvert([]string{specPath})
	if err == nil || !strings.Contains(err.Error(), "target format is required") {
		t.Errorf("handleConvert() error = %v, want target format error", err)
	}
}

func TestHandleParseRequiresOneArg(t *testing.T) {
	err := handleParse(nil)
	if err == nil || !strings.Contains(err.Error(), "exactly one file path") {
		t.Errorf("handleParse() error = %v, want arg count error", err)
	}
}
