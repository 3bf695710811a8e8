package font

import "os"
import "errors"
import "io/fs"
import "testing"

import "github.com/google/go-cmp/cmp"

func TestBuildDefaultFamilies(t *testing.T) {
	dir := writeTestAssets(t)
	ctx := NewContext()
	defer ctx.Close()

	fonts, err := Build(ctx, dir, DefaultFamilies)
	if err != nil { t.Fatal(err) }

	wantFamilies := []string{"B612 Mono", "VT323", "Share Tech Mono"}
	if diff := cmp.Diff(wantFamilies, fonts.Families()); diff != "" {
		t.Fatalf("families mismatch (-want +got):\n%s", diff)
	}

	total := 0
	for _, spec := range DefaultFamilies {
		for _, size := range spec.Sizes {
			face := fonts.Get(spec.Family, size)
			if face == nil { t.Fatalf("missing %s at %dpx", spec.Family, size) }
			if face.Size() != size {
				t.Fatalf("%s: requested %dpx, got %dpx", spec.Family, size, face.Size())
			}
			if face.Family() != spec.Family { t.Fatalf("unexpected family '%s'", face.Family()) }
			total += 1
		}
	}
	if fonts.Len() != total { t.Fatalf("expected %d faces, got %d", total, fonts.Len()) }
	if ctx.NumFiles() != len(DefaultFamilies) {
		t.Fatalf("expected %d parsed files, got %d", len(DefaultFamilies), ctx.NumFiles())
	}

	if diff := cmp.Diff([]int{18, 24, 30, 42}, fonts.Sizes("B612 Mono")); diff != "" {
		t.Fatalf("sizes mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectionAbsentLookups(t *testing.T) {
	fonts, err := BuildFS(NewContext(), os.DirFS(writeTestAssets(t)), DefaultFamilies)
	if err != nil { t.Fatal(err) }

	absent := []struct { family string; size int }{
		{ "B612 Mono", 14 },
		{ "VT323", 42 },
		{ "Share Tech Mono", 0 },
		{ "Share Tech Mono", -30 },
		{ "Comic Sans", 30 },
		{ "", 18 },
	}
	for _, key := range absent {
		if fonts.Get(key.family, key.size) != nil {
			t.Fatalf("expected no face for %q at %d", key.family, key.size)
		}
		_, err := fonts.MustHave(key.family, key.size)
		if !errors.Is(err, ErrNotInCollection) {
			t.Fatalf("expected ErrNotInCollection, got '%v'", err)
		}
	}
	if len(fonts.Sizes("Comic Sans")) != 0 { t.Fatal("expected no sizes") }
}

func TestBuildIsAllOrNothing(t *testing.T) {
	dir := writeTestAssets(t)
	writeTestFile(t, dir, "Share_Tech_Mono/ShareTechMono-Regular.ttf", []byte{})

	ctx := NewContext()
	defer ctx.Close()
	fonts, err := Build(ctx, dir, DefaultFamilies)
	if fonts != nil { t.Fatal("expected no collection") }
	var loadErr *LoadError
	if !errors.As(err, &loadErr) { t.Fatalf("expected *LoadError, got '%v'", err) }
	if loadErr.Family != "Share Tech Mono" || loadErr.Size != 14 {
		t.Fatalf("unexpected failing entry %s/%d", loadErr.Family, loadErr.Size)
	}
	if ctx.NumFaces() != 0 {
		t.Fatalf("expected partially loaded faces to be released, got %d", ctx.NumFaces())
	}

	// missing files fail the same way
	missing := []FamilySpec{ { Family: "Nope", Path: "Nope/Nope.ttf", Sizes: []int{12} } }
	_, err = Build(ctx, dir, missing)
	if !errors.Is(err, ErrLoad) || !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected load error for missing file, got '%v'", err)
	}
}

func TestBuildRejectsDuplicatedSizes(t *testing.T) {
	ctx := NewContext()
	defer ctx.Close()
	table := []FamilySpec{
		{ Family: "VT323", Path: "VT323/VT323-Regular.ttf", Sizes: []int{18, 24, 18} },
	}
	_, err := Build(ctx, writeTestAssets(t), table)
	if !errors.Is(err, ErrDuplicateSize) { t.Fatalf("expected ErrDuplicateSize, got '%v'", err) }
	if ctx.NumFaces() != 0 { t.Fatal("expected rollback") }
}
