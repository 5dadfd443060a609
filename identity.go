package mount

import (
	"hash/fnv"
	"strconv"
)

// discriminator separates the outputs a single node can emit.
type discriminator string

const (
	discContent    discriminator = "content"
	discHost       discriminator = "host"
	discBackground discriminator = "background"
	discForeground discriminator = "foreground"
	discBorder     discriminator = "border"
	discVisibility discriminator = "visibility"
)

// RootHostID is the stable id of the root host output.
const RootHostID uint64 = 0

// localKey is a component's key among its siblings before disambiguation.
func localKey(c *Component) string {
	if c.key != "" {
		return c.key
	}
	return c.name
}

func childKey(parent, local string) string {
	return parent + "/" + local
}

// siblingKeys returns the global key of every child. Implicit keys that
// collide get a "!N" suffix in order of appearance. Explicit keys are taken
// as given, so duplicates surface as id collisions.
func siblingKeys(parent string, children []*Component) []string {
	keys := make([]string, len(children))
	seen := make(map[string]int, len(children))
	for i, c := range children {
		local := localKey(c)
		if c.key == "" {
			if n := seen[local]; n > 0 {
				seen[local] = n + 1
				local += "!" + strconv.Itoa(n)
			} else {
				seen[local] = 1
			}
		}
		keys[i] = childKey(parent, local)
	}
	return keys
}

// stableID hashes a global key and discriminator. It never returns
// RootHostID.
func stableID(key string, d discriminator) uint64 {
	h := fnv.New64a()
	h.Write([]byte(key))
	h.Write([]byte{0})
	h.Write([]byte(d))
	if id := h.Sum64(); id != RootHostID {
		return id
	}
	return 1
}

// rehash derives a replacement id after a collision.
func rehash(id uint64, attempt int) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	for i := range buf {
		buf[i] = byte(id >> (8 * i))
	}
	h.Write(buf[:])
	h.Write([]byte("!" + strconv.Itoa(attempt)))
	if next := h.Sum64(); next != RootHostID {
		return next
	}
	return 1
}
