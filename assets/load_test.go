package assets

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/charmbracelet/log"
	"github.com/milk9111/catburglar/component"
)

func pngBytes(t *testing.T, w int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func actorFS(t *testing.T, names ...string) fstest.MapFS {
	t.Helper()
	fsys := fstest.MapFS{}
	for i, name := range names {
		fsys["cop/"+name] = &fstest.MapFile{Data: pngBytes(t, i+1)}
	}
	return fsys
}

func quietLogger() Option {
	return WithLogger(log.New(io.Discard))
}

func TestLoadAnimationTable(t *testing.T) {
	fsys := actorFS(t,
		"still_right_0.png",
		"still_left_0.png",
		"walk_right_1.png",
		"walk_right_0.png",
		"walk_left_0.png",
		"walk_left_1.png",
		"walk_left_2.png",
		"notes.txt",
		"dance_left_0.png",
	)

	table, err := LoadAnimationTable(fsys, "cop", component.ActorStates, quietLogger())
	if err != nil {
		t.Fatalf("LoadAnimationTable: %v", err)
	}

	cases := []struct {
		state component.AnimState
		want  int
	}{
		{component.StillRight, 1},
		{component.StillLeft, 1},
		{component.WalkRight, 2},
		{component.WalkLeft, 3},
	}
	for _, c := range cases {
		t.Run(c.state.String(), func(t *testing.T) {
			if got := len(table[c.state]); got != c.want {
				t.Fatalf("%s frames = %d, want %d", c.state, got, c.want)
			}
		})
	}
	if len(table) != 4 {
		t.Fatalf("unknown subgroups should be skipped, got states %v", table.States())
	}

	// walk_right_0 was written third, walk_right_1 fourth; order follows the index.
	if w := table[component.WalkRight][0].Bounds().Dx(); w != 4 {
		t.Fatalf("walk_right frame 0 width = %d, want 4", w)
	}
}

func TestLoadAnimationTableGaps(t *testing.T) {
	names := []string{
		"still_right_0.png",
		"still_left_0.png",
		"walk_right_0.png",
		"walk_left_0.png",
		"walk_left_2.png",
	}

	t.Run("strict", func(t *testing.T) {
		_, err := LoadAnimationTable(actorFS(t, names...), "cop", component.ActorStates, quietLogger())
		var gap *MissingSequenceMemberError
		if !errors.As(err, &gap) {
			t.Fatalf("expected MissingSequenceMemberError, got %v", err)
		}
		if gap.Subgroup != "walk_left" || gap.Index != 1 {
			t.Fatalf("gap = %+v, want walk_left index 1", gap)
		}
		if !errors.Is(err, ErrMissingSequenceMember) {
			t.Fatal("expected errors.Is match on sentinel")
		}
	})

	t.Run("lenient", func(t *testing.T) {
		table, err := LoadAnimationTable(actorFS(t, names...), "cop", component.ActorStates, quietLogger(), WithStrict(false))
		if err != nil {
			t.Fatalf("lenient load failed: %v", err)
		}
		if got := len(table[component.WalkLeft]); got != 2 {
			t.Fatalf("walk_left frames = %d, want 2", got)
		}
	})
	t.Run("lenient_wide_gap_logs_once", func(t *testing.T) {
		var logs bytes.Buffer
		wide := append([]string(nil), names[:4]...)
		wide = append(wide, "walk_left_1000000.png")
		table, err := LoadAnimationTable(actorFS(t, wide...), "cop", component.ActorStates,
			WithLogger(log.New(&logs)), WithStrict(false))
		if err != nil {
			t.Fatalf("lenient load failed: %v", err)
		}
		if got := len(table[component.WalkLeft]); got != 2 {
			t.Fatalf("walk_left frames = %d, want 2", got)
		}
		out := logs.String()
		if n := strings.Count(out, "frame sequence gap"); n != 1 {
			t.Fatalf("logged %d gap lines, want 1:\n%s", n, out)
		}
		if !strings.Contains(out, "999999") {
			t.Fatalf("gap log should report the missing range:\n%s", out)
		}
	})
}

func TestLoadAnimationTableMissingSubgroup(t *testing.T) {
	fsys := actorFS(t, "still_right_0.png", "still_left_0.png", "walk_right_0.png")
	_, err := LoadAnimationTable(fsys, "cop", component.ActorStates, quietLogger())
	var missing *component.MissingSubgroupError
	if !errors.As(err, &missing) || missing.State != component.WalkLeft {
		t.Fatalf("expected missing walk_left, got %v", err)
	}
}

func TestLoadAnimationTableConvert(t *testing.T) {
	fsys := actorFS(t, "still_right_0.png", "still_left_0.png", "walk_right_0.png", "walk_left_0.png")
	calls := 0
	_, err := LoadAnimationTable(fsys, "cop", component.ActorStates, quietLogger(), WithConvert(func(img image.Image) image.Image {
		calls++
		return img
	}))
	if err != nil {
		t.Fatal(err)
	}
	if calls != 4 {
		t.Fatalf("convert called %d times, want 4", calls)
	}
}

func TestLoadLibraryEmbedded(t *testing.T) {
	DiskDir = t.TempDir()
	t.Cleanup(func() { DiskDir = "assets" })

	lib, err := LoadLibrary(FS(), DefaultTables, quietLogger())
	if err != nil {
		t.Fatalf("LoadLibrary: %v", err)
	}
	for _, spec := range DefaultTables {
		table, ok := lib.Table(spec.Dir)
		if !ok {
			t.Fatalf("missing table %s", spec.Dir)
		}
		for _, s := range spec.Required {
			if !table.Has(s) {
				t.Fatalf("%s lacks %s", spec.Dir, s)
			}
		}
	}
	if got := len(lib.Names()); got != len(DefaultTables) {
		t.Fatalf("names = %d, want %d", got, len(DefaultTables))
	}
}
