// The texture subpackage uploads pixel surfaces as textures through a
// [Creator] and keeps the results in a [Cache] indexed by small integer
// slots.
//
// The cache borrows its creator: whoever owns the render target that
// backs the creator must keep it alive until the cache is disposed.
// There's no eviction, no capacity limit and no locking; a cache has a
// single owner.
package texture
