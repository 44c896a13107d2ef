package blackhole

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
)

// SaveRawRGB64 dumps the film as a little-endian header Nx, Ny, Nz (int32)
// followed by Nx*Ny*Nz*3 float64 values in buffer order.
func (f *Film) SaveRawRGB64(path string) error {
	if f.Nx < 0 || f.Ny < 0 || f.Nz < 0 {
		return fmt.Errorf("negative dimensions: Nx=%d Ny=%d Nz=%d", f.Nx, f.Ny, f.Nz)
	}
	exp64 := int64(f.Nx) * int64(f.Ny) * int64(f.Nz) * 3
	if int64(len(f.Buf)) != exp64 {
		return fmt.Errorf("buffer length mismatch: got %d, expected %d (Nx*Ny*Nz*3)", len(f.Buf), exp64)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	for _, n := range []int{f.Nx, f.Ny, f.Nz} {
		if err := binary.Write(w, binary.LittleEndian, int32(n)); err != nil {
			return err
		}
	}
	if exp64 > 0 {
		if err := binary.Write(w, binary.LittleEndian, f.Buf); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return out.Close()
}
