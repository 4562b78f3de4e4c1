package extract

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestJavaScriptExtract(t *testing.T) {
	content := `import React from 'react';
import { useState } from "react";
import './styles.css';
const fs = require('fs');

const MAX = 10;
let counter = 0;
var legacy = true;

function render(props) {}
const handler = async (event) => {};
const double = x => x * 2;

class Widget extends Base {}
`
	got := ForLanguage("javascript").Extract(content)
	want := Symbols{
		Imports:   []string{"./styles.css", "fs", "react"},
		Variables: []string{"MAX", "counter", "double", "fs", "handler", "legacy"},
		Functions: []string{"double", "handler", "render"},
		Classes:   []string{"Widget"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Extract mismatch (-want +got):\n%s", diff)
	}
}

func TestTypeScriptIncludesInterfaces(t *testing.T) {
	got := ForLanguage("TypeScript").Extract("interface Props { name: string }\nclass View {}\n")
	if diff := cmp.Diff([]string{"Props", "View"}, got.Classes); diff != "" {
		t.Fatalf("classes mismatch (-want +got):\n%s", diff)
	}
}

func TestPythonExtract(t *testing.T) {
	content := `import os
import collections.abc
from typing import List

LIMIT = 5
name: str = "x"

class Parser:
    def __init__(self):
        self.items = []

async def fetch(url):
    if url == "":
        return None
`
	got := ForLanguage("python").Extract(content)
	want := Symbols{
		Imports:   []string{"collections.abc", "os", "typing"},
		Variables: []string{"LIMIT", "name"},
		Functions: []string{"__init__", "fetch"},
		Classes:   []string{"Parser"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Extract mismatch (-want +got):\n%s", diff)
	}
}

func TestUnknownLanguageYieldsNothing(t *testing.T) {
	got := ForLanguage("cobol").Extract("MOVE 1 TO X.\nclass Foo {}\n")
	if diff := cmp.Diff(Symbols{}, got); diff != "" {
		t.Fatalf("expected empty symbols (-want +got):\n%s", diff)
	}
}

func TestIntroducesBinding(t *testing.T) {
	tests := []struct {
		language string
		text     string
		want     bool
	}{
		{language: "javascript", text: "const x = ", want: true},
		{language: "javascript", text: "  let ", want: true},
		{language: "javascript", text: "x = 1", want: false},
		{language: "python", text: "total = ", want: true},
		{language: "python", text: "count: int = ", want: true},
		{language: "python", text: "if total == ", want: false},
		{language: "ruby", text: "var y", want: true},
	}
	for _, tt := range tests {
		if got := ForLanguage(tt.language).IntroducesBinding(tt.text); got != tt.want {
			t.Errorf("%s IntroducesBinding(%q) = %v, want %v", tt.language, tt.text, got, tt.want)
		}
	}
}

func TestLanguages(t *testing.T) {
	if diff := cmp.Diff([]string{"javascript", "python", "typescript"}, Languages()); diff != "" {
		t.Fatalf("languages mismatch (-want +got):\n%s", diff)
	}
}

func TestLanguageForExtension(t *testing.T) {
	tests := map[string]string{".js": "javascript", "jsx": "javascript", ".TSX": "typescript", ".py": "python", ".pyi": "python"}
	for ext, want := range tests {
		if got, ok := LanguageForExtension(ext); !ok || got != want {
			t.Errorf("LanguageForExtension(%q) = %q, %v; want %q", ext, got, ok, want)
		}
	}
	if _, ok := LanguageForExtension(".go"); ok {
		t.Error("unexpected profile for .go")
	}
	if _, ok := LanguageForExtension(""); ok {
		t.Error("unexpected profile for empty extension")
	}
}
