// Command bvxinspect loads a scripted list of bitvoxel edits into a
// single chunk, runs the face solver against it, and reports basic
// stats — optionally dumping a debug PNG of one Z-slice.
//
// Edit script format: one edit per line, whitespace-separated:
//
//	set vx vy vz bx by bz
//
// Blank lines and lines starting with # are ignored.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	voxelcore "github.com/voxelcore/bvxcore"
	"github.com/voxelcore/bvxcore/voxelrt/bvx"
	"github.com/voxelcore/bvxcore/voxelrt/geometry"
	"github.com/voxelcore/bvxcore/voxelrt/imaging"
	"github.com/voxelcore/bvxcore/voxelrt/spatialkey"
	"github.com/voxelcore/bvxcore/voxelrt/voxelidx"
	"github.com/voxelcore/bvxcore/voxelrt/world"
)

func main() {
	script := flag.String("script", "", "path to an edit script (required)")
	pngOut := flag.String("png", "", "optional path to write a debug Z-slice PNG to")
	slice := flag.Int("slice", 0, "Z-slice (0-15) to dump when -png is set")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	log := voxelcore.NewDefaultLogger("bvxinspect", *debug)

	if *script == "" {
		log.Errorf("missing required -script flag")
		flag.Usage()
		os.Exit(2)
	}

	c := bvx.NewChunk0(spatialkey.NewMortonKey(0, 0, 0))
	if err := applyScript(*script, c); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}

	w := world.New(0, log)
	w.Insert(c)

	solver := geometry.NewSolver()
	mask := solver.Solve(c, w)

	visibleFaces := 0
	for _, m := range mask {
		visibleFaces += popcount(m)
	}

	fmt.Printf("chunk length: %d bitvoxels set\n", c.Length())
	fmt.Printf("visible faces: %d\n", visibleFaces)

	if *pngOut != "" {
		f, err := os.Create(*pngOut)
		if err != nil {
			log.Errorf("creating %s: %v", *pngOut, err)
			os.Exit(1)
		}
		defer f.Close()
		if err := imaging.DumpSlice(f, c, *slice); err != nil {
			log.Errorf("writing PNG: %v", err)
			os.Exit(1)
		}
		fmt.Printf("wrote slice %d to %s\n", *slice, *pngOut)
	}
}

func popcount(b byte) int {
	n := 0
	for b != 0 {
		n += int(b & 1)
		b >>= 1
	}
	return n
}

func applyScript(path string, c *bvx.Chunk0) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening script: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 7 || fields[0] != "set" {
			return fmt.Errorf("line %d: want \"set vx vy vz bx by bz\", got %q", lineNo, line)
		}
		comps := make([]int, 6)
		for i, tok := range fields[1:] {
			v, err := strconv.Atoi(tok)
			if err != nil {
				return fmt.Errorf("line %d: %q is not an integer", lineNo, tok)
			}
			comps[i] = v
		}
		c.SetBitVoxel(voxelidx.New(comps[0], comps[1], comps[2], comps[3], comps[4], comps[5]))
	}
	return scanner.Err()
}
