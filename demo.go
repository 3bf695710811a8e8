package ttfslots

import "io/fs"
import "log/slog"

import "github.com/tinne26/ttfslots/font"
import "github.com/tinne26/ttfslots/scene"
import "github.com/tinne26/ttfslots/texture"

// A Demo bundles everything created at startup: the fonts, the
// cached textures and the render loop that draws them.
type Demo struct {
	Fonts *font.Collection
	Textures *texture.Cache
	Loop *scene.Loop
	ctx *font.Context
}

// Loads [font.DefaultFamilies] from assetsDir, rasterizes [DefaultTexts]
// and uploads them through the given creator. The creator must outlive
// the returned demo. On error, everything created so far is released.
func Setup(assetsDir string, creator texture.Creator) (*Demo, error) {
	return setup(creator, func(ctx *font.Context) (*font.Collection, error) {
		return font.Build(ctx, assetsDir, font.DefaultFamilies)
	})
}

// Same as [Setup](), but loading the fonts from the given filesystem.
func SetupFS(filesys fs.FS, creator texture.Creator) (*Demo, error) {
	return setup(creator, func(ctx *font.Context) (*font.Collection, error) {
		return font.BuildFS(ctx, filesys, font.DefaultFamilies)
	})
}

func setup(creator texture.Creator, buildFn func(*font.Context) (*font.Collection, error)) (*Demo, error) {
	logger := Logger()
	ctx := font.NewContext()
	fonts, err := buildFn(ctx)
	if err != nil {
		_ = ctx.Close()
		return nil, err
	}
	logger.Info("fonts loaded", slog.Int("faces", fonts.Len()), slog.Int("files", ctx.NumFiles()))

	textures := texture.NewCache(creator)
	err = LoadTexts(textures, fonts, DefaultTexts)
	if err != nil {
		textures.Dispose()
		_ = ctx.Close()
		return nil, err
	}
	logger.Info("textures uploaded", slog.Int("count", textures.Len()),
		slog.Int("bytes", textures.ApproxByteSize()))

	return &Demo {
		Fonts: fonts,
		Textures: textures,
		Loop: scene.NewLoop(textures, scene.DefaultSlots),
		ctx: ctx,
	}, nil
}

// Rasterizes each text with its face from the collection and inserts
// the result in the cache. Stops at the first error.
func LoadTexts(textures *texture.Cache, fonts *font.Collection, texts []Text) error {
	for _, text := range texts {
		face, err := fonts.MustHave(text.Family, text.Size)
		if err != nil { return err }
		surface, err := face.Render(text.Text, text.Color)
		if err != nil { return err }
		err = textures.Insert(text.ID, surface)
		if err != nil { return err }
		Logger().Debug("texture uploaded", slog.Int("id", text.ID), slog.String("text", text.Text),
			slog.Int("width", surface.Rect.Dx()), slog.Int("height", surface.Rect.Dy()))
	}
	return nil
}

// Releases the textures and then the fonts. The texture creator can be
// released after this.
func (self *Demo) Close() error {
	self.Textures.Dispose()
	err := self.ctx.Close()
	if err != nil {
		Logger().Warn("closing fonts", slog.Any("error", err))
	} else {
		Logger().Info("demo closed", slog.Int("frames", self.Loop.Frames()))
	}
	return err
}
