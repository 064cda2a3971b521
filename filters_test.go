package filefilter_test

import (
	"testing"

	"github.com/fardream/filefilter"
)

func TestExtensionFilter(t *testing.T) {
	cases := []struct {
		ext  string
		path string
		want bool
	}{
		{"png", "sprites/a.png", true},
		{".png", "sprites/a.PNG", true},
		{"PNG", "a.png", true},
		{"png", "a.png.bak", false},
		{"png", "png", false},
		{"png", "sprites.png/readme", false},
		{"", "Makefile", true},
		{"", "a.png", false},
	}

	for _, c := range cases {
		f := filefilter.NewExtensionFilter(c.ext)
		if got := f.Accept(filefilter.Entry{Path: c.path}); got != c.want {
			t.Errorf("extension %q on %s, want: %t, got: %t", c.ext, c.path, c.want, got)
		}
	}
}

func TestPrefixAndNameFilter(t *testing.T) {
	e := filefilter.Entry{Path: "assets/sprites/icon.png"}

	if !(filefilter.PrefixFilter{Prefix: "assets/"}).Accept(e) {
		t.Errorf("want prefix assets/ to accept %s", e.Path)
	}
	if (filefilter.PrefixFilter{Prefix: "sprites/"}).Accept(e) {
		t.Errorf("want prefix sprites/ to reject %s", e.Path)
	}
	if !(filefilter.NameFilter{Name: "icon.png"}).Accept(e) {
		t.Errorf("want name icon.png to accept %s", e.Path)
	}
	if (filefilter.NameFilter{Name: "sprites"}).Accept(e) {
		t.Errorf("want name sprites to reject %s", e.Path)
	}
}

func TestNotFilter(t *testing.T) {
	f := filefilter.NotFilter{Filter: filefilter.Always}
	if f.Accept(fileA) {
		t.Errorf("want not always to reject")
	}
	if !(filefilter.NotFilter{Filter: f}).Accept(fileA) {
		t.Errorf("want double negation to accept")
	}
	if (filefilter.NotFilter{}).Accept(fileA) {
		t.Errorf("want not filter without filter to reject")
	}
}

func TestAnyFilter(t *testing.T) {
	if filefilter.NewAnyFilter().Accept(fileA) {
		t.Errorf("want empty any filter to reject")
	}

	f := filefilter.NewAnyFilterForExtensions("png", "ogg")
	for _, e := range []filefilter.Entry{fileA, fileB} {
		if !f.Accept(e) {
			t.Errorf("want %s accepted", e.Path)
		}
	}
	if f.Accept(filefilter.Entry{Path: "bundle.properties"}) {
		t.Errorf("want properties file rejected")
	}

	p := filefilter.NewAnyFilterForPrefixes("sounds/")
	if p.Accept(fileA) || !p.Accept(fileB) {
		t.Errorf("prefix any filter, want only %s accepted", fileB.Path)
	}
}

func TestAllFilter(t *testing.T) {
	if !filefilter.NewAllFilter().Accept(fileA) {
		t.Errorf("want empty all filter to accept")
	}
	if !filefilter.NewAllFilter(nil, (*filefilter.CachedFilter)(nil), filefilter.Always).Accept(fileA) {
		t.Errorf("want nil filters dropped")
	}

	f := filefilter.NewAllFilter(filefilter.NewExtensionFilter("png"), filefilter.NotFilter{Filter: filefilter.NameFilter{Name: "fileA.png"}})
	if f.Accept(fileA) {
		t.Errorf("want %s rejected", fileA.Path)
	}
	if !f.Accept(filefilter.Entry{Path: "sprites/fileC.png"}) {
		t.Errorf("want fileC accepted")
	}
}

func TestCachedFilter(t *testing.T) {
	called := 0
	f := filefilter.NewCachedFilter(filefilter.Func(func(e filefilter.Entry) bool {
		called++
		return e.Path == fileA.Path
	}))

	for i := 0; i < 3; i++ {
		if !f.Accept(fileA) {
			t.Errorf("want %s accepted", fileA.Path)
		}
		if f.Accept(fileB) {
			t.Errorf("want %s rejected", fileB.Path)
		}
	}
	if called != 2 {
		t.Errorf("want 2 calls to underlying filter, got %d", called)
	}

	f.Reset()
	f.Accept(fileA)
	if called != 3 {
		t.Errorf("want underlying filter called after reset, got %d calls", called)
	}
}
