package main

import (
	"testing"
)

func TestOnceString(t *testing.T) {
	var s string
	v := &onceString{p: &s}
	if v.Type() != "string" {
		t.Error("Wrong Type()", v.Type())
	}
	if err := v.Set("a"); err != nil {
		t.Fatal("First Set failed", err)
	}
	if s != "a" || v.String() != "a" {
		t.Error("Value not stored", s, v.String())
	}
	if err := v.Set("b"); err == nil {
		t.Error("Duplicate Set should fail")
	}
	if s != "a" {
		t.Error("Duplicate Set changed value", s)
	}

	v = &onceString{p: &s}
	if err := v.Set("  "); err == nil {
		t.Error("Blank value should fail")
	}
	if (&onceString{}).String() != "" {
		t.Error("Unbound onceString should be empty")
	}
}
