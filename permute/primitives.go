package permute

import (
	"sync"

	"github.com/stagedcube/cube96/bitcube"
)

var (
	primitivesOnce sync.Once
	primitiveAlpha [36]Permutation
)

// Primitives returns the fixed 36-permutation alphabet in its documented
// index order:
//
//	 0..17  z-slice face rotation (CW, CCW, 180°) for z = 0..5
//	18..29  in-slice row/column cycle for z = 0..3 (row up, row down, column right)
//	30..32  whole-cube z-shift on fixed x, for x = 0, 1, 2
//	33..35  whole-cube z-shift on fixed y, for y = 0, 1, 2
//
// The table is built once and never mutated; it is safe to share across all
// callers.
func Primitives() [36]Permutation {
	primitivesOnce.Do(buildPrimitives)
	return primitiveAlpha
}

func buildPrimitives() {
	idx := 0
	for z := byte(0); z < 6; z++ {
		primitiveAlpha[idx] = faceRotation(z, 0)
		idx++
		primitiveAlpha[idx] = faceRotation(z, 1)
		idx++
		primitiveAlpha[idx] = faceRotation(z, 2)
		idx++
	}
	for z := byte(0); z < 4; z++ {
		primitiveAlpha[idx] = rowCycle(z, true)
		idx++
		primitiveAlpha[idx] = rowCycle(z, false)
		idx++
		primitiveAlpha[idx] = columnCycle(z, true)
		idx++
	}
	primitiveAlpha[idx] = xSliceShift(0)
	idx++
	primitiveAlpha[idx] = xSliceShift(1)
	idx++
	primitiveAlpha[idx] = xSliceShift(2)
	idx++
	primitiveAlpha[idx] = ySliceShift(0)
	idx++
	primitiveAlpha[idx] = ySliceShift(1)
	idx++
	primitiveAlpha[idx] = ySliceShift(2)
	idx++
}

// faceRotation rotates the 16 bits of z-slice z as a 4x4 matrix.
// variant: 0 = CW 90°, 1 = CCW 90°, 2 = 180°.
func faceRotation(z byte, variant int) Permutation {
	p := Identity()
	for y := byte(0); y < 4; y++ {
		for x := byte(0); x < 4; x++ {
			var nx, ny byte
			switch variant {
			case 0:
				nx, ny = 3-y, x
			case 1:
				nx, ny = y, 3-x
			default:
				nx, ny = 3-x, 3-y
			}
			src := bitcube.IdxOf(x, y, z)
			dst := bitcube.IdxOf(nx, ny, z)
			p[src] = dst
		}
	}
	return p
}

func rowCycle(z byte, up bool) Permutation {
	p := Identity()
	shift := byte(3)
	if up {
		shift = 1
	}
	for y := byte(0); y < 4; y++ {
		ny := (y + shift) & 3
		for x := byte(0); x < 4; x++ {
			src := bitcube.IdxOf(x, y, z)
			dst := bitcube.IdxOf(x, ny, z)
			p[src] = dst
		}
	}
	return p
}

func columnCycle(z byte, right bool) Permutation {
	p := Identity()
	shift := byte(3)
	if right {
		shift = 1
	}
	for x := byte(0); x < 4; x++ {
		nx := (x + shift) & 3
		for y := byte(0); y < 4; y++ {
			src := bitcube.IdxOf(x, y, z)
			dst := bitcube.IdxOf(nx, y, z)
			p[src] = dst
		}
	}
	return p
}

func xSliceShift(x byte) Permutation {
	p := Identity()
	for y := byte(0); y < 4; y++ {
		for z := byte(0); z < 6; z++ {
			nz := (z + 1) % 6
			src := bitcube.IdxOf(x, y, z)
			dst := bitcube.IdxOf(x, y, nz)
			p[src] = dst
		}
	}
	return p
}

func ySliceShift(y byte) Permutation {
	p := Identity()
	for x := byte(0); x < 4; x++ {
		for z := byte(0); z < 6; z++ {
			nz := (z + 1) % 6
			src := bitcube.IdxOf(x, y, z)
			dst := bitcube.IdxOf(x, y, nz)
			p[src] = dst
		}
	}
	return p
}
