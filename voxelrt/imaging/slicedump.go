// Package imaging renders a debug visualization of one chunk: a single
// Z-slice of its bitvoxel occupancy as a PNG, with the chunk's Morton
// scalar stamped in the corner for identification in a dump directory.
//
// Follows text_renderer.go's use of golang.org/x/image/font for on-image
// labels, applied here to a debug slice dump rather than in-engine text.
package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/voxelcore/bvxcore/voxelrt/bvx"
	"github.com/voxelcore/bvxcore/voxelrt/voxelidx"
)

// sliceDim is a chunk's extent along one axis in bitvoxels (C*C = 16).
const sliceDim = 16

var (
	occupied = color.RGBA{0, 0, 0, 255}
	empty    = color.RGBA{255, 255, 255, 255}
	label    = color.RGBA{220, 30, 30, 255}
)

// DumpSlice renders the Z-slice at bitvoxel depth z (0..15) of chunk's
// occupancy as a sliceDim x sliceDim PNG and writes it to w. z is split
// into the voxel-z and bitvoxel-z components the same way any other
// bitvoxel coordinate would be.
func DumpSlice(w io.Writer, chunk bvx.Chunk, z int) error {
	img := image.NewRGBA(image.Rect(0, 0, sliceDim, sliceDim))
	vz, bz := z/4, z%4

	for vx := 0; vx < 4; vx++ {
		for bx := 0; bx < 4; bx++ {
			for vy := 0; vy < 4; vy++ {
				for by := 0; by < 4; by++ {
					idx := voxelidx.New(vx, vy, vz, bx, by, bz)
					px, py := vx*4+bx, vy*4+by
					c := empty
					if chunk.Layer().Get(idx) == 1 {
						c = occupied
					}
					img.Set(px, py, c)
				}
			}
		}
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(label),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(0, 10),
	}
	d.DrawString(fmt.Sprintf("%d", chunk.Key().Scalar()))

	return png.Encode(w, img)
}
