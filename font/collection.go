package font

import "io/fs"
import "sort"
import "path/filepath"

// A font file to be loaded at one or more pixel sizes.
type FamilySpec struct {
	Family string
	Path string // relative to the assets directory, slash separated
	Sizes []int
}

// The fonts used by the demo. Paths are relative to the assets directory.
var DefaultFamilies = []FamilySpec {
	{ Family: "B612 Mono", Path: "B612_Mono/B612Mono-Regular.ttf", Sizes: []int{18, 24, 30, 42} },
	{ Family: "VT323", Path: "VT323/VT323-Regular.ttf", Sizes: []int{18, 24, 30} },
	{ Family: "Share Tech Mono", Path: "Share_Tech_Mono/ShareTechMono-Regular.ttf", Sizes: []int{14, 30} },
}

// A Collection maps each font family to its faces by pixel size.
// Collections are immutable once built and are only valid while
// the [Context] used to build them remains open.
type Collection struct {
	families []string
	faces map[string]map[int]*Face
}

// Loads every family and size listed in the table, with font paths
// relative to assetsDir. Building is all or nothing: on the first
// failure, faces loaded so far are closed and the [*LoadError] is
// returned. Loading is never retried.
func Build(ctx *Context, assetsDir string, table []FamilySpec) (*Collection, error) {
	return build(ctx, table, func(spec FamilySpec, size int) (*Face, error) {
		path := filepath.Join(assetsDir, filepath.FromSlash(spec.Path))
		return Load(ctx, spec.Family, path, size)
	})
}

// Same as [Build](), but loading the fonts from the given filesystem.
func BuildFS(ctx *Context, filesys fs.FS, table []FamilySpec) (*Collection, error) {
	return build(ctx, table, func(spec FamilySpec, size int) (*Face, error) {
		return LoadFS(ctx, filesys, spec.Family, spec.Path, size)
	})
}

func build(ctx *Context, table []FamilySpec, loadFn func(FamilySpec, int) (*Face, error)) (*Collection, error) {
	collection := &Collection {
		families: make([]string, 0, len(table)),
		faces: make(map[string]map[int]*Face, len(table)),
	}

	var loaded []*Face
	rollback := func() {
		for _, face := range loaded { _ = ctx.release(face) }
	}

	for _, spec := range table {
		sizes, found := collection.faces[spec.Family]
		if !found {
			sizes = make(map[int]*Face, len(spec.Sizes))
			collection.faces[spec.Family] = sizes
			collection.families = append(collection.families, spec.Family)
		}
		for _, size := range spec.Sizes {
			if _, dup := sizes[size]; dup {
				rollback()
				return nil, &LoadError{ Family: spec.Family, Path: spec.Path, Size: size, Err: ErrDuplicateSize }
			}
			face, err := loadFn(spec, size)
			if err != nil {
				rollback()
				return nil, err
			}
			loaded = append(loaded, face)
			sizes[size] = face
		}
	}
	return collection, nil
}

// Returns the face for the given family and pixel size, or nil
// if the collection doesn't contain it.
func (self *Collection) Get(family string, size int) *Face {
	sizes, found := self.faces[family]
	if !found { return nil }
	return sizes[size]
}

// Like [Collection.Get](), but returning a [*LoadError] wrapping
// [ErrNotInCollection] instead of nil.
func (self *Collection) MustHave(family string, size int) (*Face, error) {
	face := self.Get(family, size)
	if face == nil {
		return nil, &LoadError{ Family: family, Size: size, Err: ErrNotInCollection }
	}
	return face, nil
}

// Returns the families in the order they were listed when building.
func (self *Collection) Families() []string {
	return append([]string(nil), self.families...)
}

// Returns the loaded sizes for the given family in increasing order.
func (self *Collection) Sizes(family string) []int {
	sizes := make([]int, 0, len(self.faces[family]))
	for size := range self.faces[family] {
		sizes = append(sizes, size)
	}
	sort.Ints(sizes)
	return sizes
}

// Returns the total number of faces in the collection.
func (self *Collection) Len() int {
	n := 0
	for _, sizes := range self.faces { n += len(sizes) }
	return n
}
