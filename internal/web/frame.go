package web

import (
	"encoding/binary"

	"sand-ca/internal/core"
	"sand-ca/internal/sims/sand"
)

// EncodeFrame packs one tick of world state into a binary message: an
// 8-byte little-endian header carrying width and height as uint32,
// followed by width*height material bytes and width*height tint bytes.
func EncodeFrame(size core.Size, materials []sand.Material, tints []sand.Tint) []byte {
	total := size.W * size.H
	buf := make([]byte, 8+2*total)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(size.W))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(size.H))
	for i, m := range materials {
		buf[8+i] = byte(m)
	}
	for i, t := range tints {
		buf[8+total+i] = byte(t)
	}
	return buf
}
