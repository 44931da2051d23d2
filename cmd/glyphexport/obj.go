package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Faultbox/quiver3d/pkg/scene"
)

// WriteOBJ writes all surfaces of the groups as Wavefront OBJ quad meshes.
// Each vertex carries its ring color using the common "v x y z r g b"
// extension.
func WriteOBJ(w io.Writer, groups []*scene.Group) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintln(bw, "# exported by quiver3d"); err != nil {
		return err
	}

	base := 1 // OBJ indices are 1-based
	for gi, g := range groups {
		for si, s := range g.Surfaces() {
			fmt.Fprintf(bw, "o group%d_surface%d\n", gi, si)

			for row := 0; row < s.Rows; row++ {
				c := s.RowColors[row]
				for col := 0; col < s.Cols; col++ {
					p := s.At(row, col)
					fmt.Fprintf(bw, "v %g %g %g %g %g %g\n",
						p.X, p.Y, p.Z, c[0], c[1], c[2])
				}
			}

			// One quad per facet; the wrap column closes the surface.
			for row := 0; row < s.Rows-1; row++ {
				for col := 0; col < s.Cols; col++ {
					next := (col + 1) % s.Cols
					fmt.Fprintf(bw, "f %d %d %d %d\n",
						base+row*s.Cols+col,
						base+row*s.Cols+next,
						base+(row+1)*s.Cols+next,
						base+(row+1)*s.Cols+col,
					)
				}
			}
			base += s.Rows * s.Cols
		}
	}

	return bw.Flush()
}
