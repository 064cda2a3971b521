package filefilter_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/fardream/filefilter"
)

func TestWalkDir(t *testing.T) {
	fsys := newTestFS(t)

	cases := []struct {
		name   string
		filter filefilter.Filter
		want   []string
	}{
		{
			"always",
			filefilter.Always,
			[]string{
				"assets/bundle.properties",
				"assets/empty",
				"assets/sounds",
				"assets/sounds/boom.ogg",
				"assets/sprites",
				"assets/sprites/README.md",
				"assets/sprites/icon.png",
			},
		},
		{
			"png",
			filefilter.NewSet(filefilter.NewExtensionFilter("png")),
			[]string{"assets/sprites/icon.png"},
		},
		{
			"dirs",
			filefilter.NewSet(filefilter.KindFilter{Kind: filefilter.KindDir}),
			[]string{"assets/empty", "assets/sounds", "assets/sprites"},
		},
		{
			"files not in sprites",
			filefilter.NewSet(
				filefilter.KindFilter{Kind: filefilter.KindRegular},
				filefilter.NotFilter{Filter: filefilter.PrefixFilter{Prefix: "assets/sprites/"}},
			),
			[]string{"assets/bundle.properties", "assets/sounds/boom.ogg"},
		},
		{
			"reject all",
			filefilter.NewSet(rejectAll),
			nil,
		},
	}

	for _, c := range cases {
		var got []string
		err := filefilter.WalkDir(context.Background(), fsys, "assets", c.filter, func(e filefilter.Entry) error {
			got = append(got, e.Path)
			return nil
		})
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		if !cmp.Equal(got, c.want) {
			t.Errorf("%s: %s", c.name, cmp.Diff(c.want, got))
		}
	}
}

func TestWalkDir_errors(t *testing.T) {
	fsys := newTestFS(t)

	if err := filefilter.WalkDir(context.Background(), fsys, "missing", filefilter.Always, func(filefilter.Entry) error { return nil }); err == nil {
		t.Errorf("want error walking missing dir")
	}
	if err := filefilter.WalkDir(context.Background(), fsys, "assets/bundle.properties", filefilter.Always, func(filefilter.Entry) error { return nil }); err == nil {
		t.Errorf("want error walking a regular file")
	}

	stop := errors.New("stop")
	err := filefilter.WalkDir(context.Background(), fsys, "assets", filefilter.Always, func(filefilter.Entry) error { return stop })
	if !errors.Is(err, stop) {
		t.Errorf("want callback error returned, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = filefilter.WalkDir(ctx, fsys, "assets", filefilter.Always, func(filefilter.Entry) error { return nil })
	if !errors.Is(err, context.Canceled) {
		t.Errorf("want canceled, got %v", err)
	}
}

func TestDumpDir(t *testing.T) {
	fsys := newTestFS(t)

	var buf bytes.Buffer
	filter := filefilter.NewAnyFilterForExtensions("ogg", "md")
	if err := filefilter.DumpDir(context.Background(), fsys, "assets", filter, &buf); err != nil {
		t.Fatal(err)
	}

	got := strings.Split(strings.TrimSpace(buf.String()), "\n")
	want := []string{"assets/sounds/boom.ogg", "assets/sprites/README.md"}
	if !cmp.Equal(got, want) {
		t.Errorf("dump dir: %s", cmp.Diff(want, got))
	}
}
