// Package assets loads animation frames named <subgroup>_<index>.png into animation
// tables.
package assets

import (
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/milk9111/catburglar/component"
)

var frameName = regexp.MustCompile(`^(.+)_([0-9]+)\.png$`)

type loadOptions struct {
	strict  bool
	convert func(image.Image) image.Image
	logger  *log.Logger
}

type Option func(*loadOptions)

// WithStrict controls numbering gaps: an error when strict (the default), a warning and
// a skipped index otherwise.
func WithStrict(strict bool) Option {
	return func(o *loadOptions) { o.strict = strict }
}

// WithConvert runs every decoded frame through fn, e.g. to upload it to the GPU.
func WithConvert(fn func(image.Image) image.Image) Option {
	return func(o *loadOptions) { o.convert = fn }
}

func WithLogger(l *log.Logger) Option {
	return func(o *loadOptions) { o.logger = l }
}

func newOptions(opts []Option) loadOptions {
	o := loadOptions{strict: true}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.Default()
	}
	return o
}

// LoadAnimationTable reads every frame file directly inside dir and groups them by
// subgroup. Files that don't follow the naming pattern, or name an unknown subgroup, are
// skipped.
func LoadAnimationTable(fsys fs.FS, dir string, required []component.AnimState, opts ...Option) (component.AnimationTable, error) {
	o := newOptions(opts)

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", dir, err)
	}

	indexed := make(map[component.AnimState]map[int]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		m := frameName.FindStringSubmatch(entry.Name())
		if m == nil {
			o.logger.Debug("skipping asset", "dir", dir, "file", entry.Name())
			continue
		}
		state, ok := component.ParseAnimState(m[1])
		if !ok {
			o.logger.Debug("skipping unknown subgroup", "dir", dir, "subgroup", m[1])
			continue
		}
		idx, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, fmt.Errorf("assets: %s: frame index %q: %w", dir, m[2], err)
		}
		if indexed[state] == nil {
			indexed[state] = make(map[int]string)
		}
		indexed[state][idx] = path.Join(dir, entry.Name())
	}

	frames := make(map[component.AnimState][]image.Image, len(indexed))
	for state, files := range indexed {
		ordered, err := orderFrames(dir, state, files, o)
		if err != nil {
			return nil, err
		}
		seq := make([]image.Image, 0, len(ordered))
		for _, name := range ordered {
			img, err := decode(fsys, name)
			if err != nil {
				return nil, err
			}
			if o.convert != nil {
				img = o.convert(img)
			}
			seq = append(seq, img)
		}
		frames[state] = seq
	}

	return component.NewAnimationTable(frames, required, dir)
}

func orderFrames(dir string, state component.AnimState, files map[int]string, o loadOptions) ([]string, error) {
	indices := make([]int, 0, len(files))
	for idx := range files {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	out := make([]string, 0, len(indices))
	want := 0
	for _, idx := range indices {
		if want < idx {
			gap := &MissingSequenceMemberError{Dir: dir, Subgroup: state.String(), Index: want}
			if o.strict {
				return nil, gap
			}
			o.logger.Warn("frame sequence gap", "dir", dir, "subgroup", state, "first", want, "last", idx-1, "missing", idx-want)
		}
		out = append(out, files[idx])
		want = idx + 1
	}
	return out, nil
}

func decode(fsys fs.FS, name string) (image.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("assets: open %s: %w", name, err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", name, err)
	}
	return img, nil
}
