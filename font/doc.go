// The font subpackage loads TrueType and OpenType fonts at fixed pixel
// sizes and turns strings into RGBA surfaces that can later be uploaded
// as textures.
//
// The main types are:
//  - [Context], which owns the parsed font files and every [Face]
//    created through it. Closing the context closes all its faces.
//  - [Face], a font file loaded at a single pixel size.
//  - [Collection], a fixed set of faces indexed by family and size,
//    built from a table of [FamilySpec] entries.
//
// A typical startup sequence looks like this:
//   ctx := font.NewContext()
//   defer ctx.Close()
//   fonts, err := font.Build(ctx, "assets", font.DefaultFamilies)
//   if err != nil { ... }
//   surface, err := fonts.Get("VT323", 30).Render("Hello", color.Black)
package font
