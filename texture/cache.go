package texture

import "image"
import "sort"

// A Cache maps integer ids to uploaded textures.
type Cache struct {
	creator Creator // borrowed, must outlive the cache
	entries map[int]*Entry
	byteSize int
	peakSize int
}

// Creates a new cache that will upload surfaces through the given
// creator. The creator is not owned by the cache.
func NewCache(creator Creator) *Cache {
	if creator == nil { panic("nil texture creator") }
	return &Cache {
		creator: creator,
		entries: make(map[int]*Entry, 8),
	}
}

// Uploads the surface as a new texture and stores it under the given
// id, releasing any previous entry with the same id. If the upload
// fails, an [*UploadError] is returned and the previous entry (if any)
// is kept.
func (self *Cache) Insert(id int, surface image.Image) error {
	if surface == nil || surface.Bounds().Empty() {
		return &UploadError{ ID: id, Err: ErrEmptySurface }
	}

	texture, err := self.creator.NewTexture(surface)
	if err != nil { return &UploadError{ ID: id, Err: err } }
	if texture == nil { return &UploadError{ ID: id, Err: ErrEmptySurface } }

	bounds := texture.Bounds()
	entry := &Entry{ Texture: texture, Width: bounds.Dx(), Height: bounds.Dy() }

	prev, found := self.entries[id]
	if found {
		self.byteSize -= prev.ByteSize()
		dispose(prev.Texture)
	}
	self.entries[id] = entry
	self.byteSize += entry.ByteSize()
	if self.byteSize > self.peakSize { self.peakSize = self.byteSize }
	return nil
}

// Returns the entry for the given id, or nil if there's none.
func (self *Cache) Get(id int) *Entry {
	return self.entries[id]
}

// Returns the number of entries in the cache.
func (self *Cache) Len() int { return len(self.entries) }

// Returns the cached ids in increasing order.
func (self *Cache) IDs() []int {
	ids := make([]int, 0, len(self.entries))
	for id := range self.entries { ids = append(ids, id) }
	sort.Ints(ids)
	return ids
}

// Returns an approximation of the cache size in bytes.
func (self *Cache) ApproxByteSize() int { return self.byteSize }

// Returns the highest [Cache.ApproxByteSize]() observed.
func (self *Cache) PeakSize() int { return self.peakSize }

// Releases all the entries. The cache can still be used afterwards.
func (self *Cache) Dispose() {
	for id, entry := range self.entries {
		dispose(entry.Texture)
		delete(self.entries, id)
	}
	self.byteSize = 0
}
