package log

import (
	"testing"

	"github.com/markdingo/dnsrecon/mock"
)

func TestLevels(t *testing.T) {
	var w mock.IOWriter
	SetOut(&w)
	if Out() != &w {
		t.Fatal("SetOut or Out failed")
	}

	SetLevel(SilentLevel)
	if Level() != SilentLevel {
		t.Error("Set Silent failed")
	}
	if IfMajor() || IfMinor() || IfDebug() {
		t.Error("Silent should not enable any level")
	}
	for _, tc := range []struct {
		l   logLevel
		exp string
	}{
		{SilentLevel, "Silent"}, {MajorLevel, "Major"}, {MinorLevel, "Minor"}, {DebugLevel, "Debug"},
	} {
		if tc.l.String() != tc.exp {
			t.Error("Wrong level string. Exp", tc.exp, "got", tc.l.String())
		}
	}

	Major("Should not log")
	Minor("Should not log")
	Debug("Should not log")
	Majorf("Should not log")
	Minorf("Should not log")
	Debugf("Should not log")
	if w.Len() > 0 {
		t.Error("Silent still logged", w.String())
	}

	w.Reset()
	SetLevel(MajorLevel)
	Major("a")
	Minor("b")
	Debug("c")
	Majorf("d")
	Minorf("e")
	Debugf("f")
	exp := "a\nd\n"
	if w.String() != exp {
		t.Error("Major Levels not working. Got:", w.String(), "Exp:", exp)
	}

	w.Reset()
	SetLevel(MinorLevel)
	Major("a")
	Minor("b")
	Debug("c")
	exp = "a\n  b\n"
	if w.String() != exp {
		t.Error("Minor Levels not working. Got:", w.String(), "Exp:", exp)
	}

	w.Reset()
	SetLevel(DebugLevel)
	Debugf("%d", 5)
	exp = "   Dbg:5\n"
	if w.String() != exp {
		t.Error("Debug Level not working. Got:", w.String(), "Exp:", exp)
	}
}

func TestFormat(t *testing.T) {
	var w mock.IOWriter
	SetOut(&w)
	SetLevel(MajorLevel)
	f := "%"
	f += "d a "
	Major(f, 5)       // Should not format
	Majorf("%d b", 5) // Should format
	exp := "%d a 5\n5 b\n"
	if exp != w.String() {
		t.Error("F and non-F not working", w.String(), exp)
	}
}

func TestMultiLine(t *testing.T) {
	var w mock.IOWriter
	SetOut(&w)
	SetLevel(MinorLevel)

	testCases := []struct{ in, exp string }{
		{"a", "a\n"},
		{"a\n", "a\n"},
		{"a\nb", "a\nb\n"},
		{"a\nb\n\n\n", "a\nb\n"},
		{"", "\n"}, // Blank line between report sections
	}
	for ix, tc := range testCases {
		w.Reset()
		Major(tc.in)
		if w.String() != tc.exp {
			t.Errorf("%d Exp %q got %q", ix, tc.exp, w.String())
		}
	}

	w.Reset()
	Minor("a\nb\n\n")
	exp := "  a\n  b\n"
	if exp != w.String() {
		t.Errorf("Prefix not added to each line. Exp %q got %q", exp, w.String())
	}
}

func TestNewLogger(t *testing.T) {
	var w mock.IOWriter
	l := New(&w, MinorLevel)
	l.Print(DebugLevel, "hidden")
	l.Print(MinorLevel, "shown")
	if w.String() != "  shown\n" {
		t.Errorf("Private Logger wrong. Got %q", w.String())
	}

	defer func() {
		if recover() == nil {
			t.Error("Expected panic with nil writer")
		}
	}()
	New(nil, MajorLevel)
}
