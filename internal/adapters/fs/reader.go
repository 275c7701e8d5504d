package fs

import (
	"io"
	"os"
)

const readChunkSize = 32 * 1024

// readAll consumes the file in chunks so progress can be reported as a
// fraction of the file size.
func readAll(f *os.File, size int64, onProgress func(float64)) ([]byte, error) {
	if size <= 0 {
		return io.ReadAll(f)
	}

	buf := make([]byte, 0, size)
	chunk := make([]byte, readChunkSize)
	var total int64

	for {
		n, err := f.Read(chunk)
		if n > 0 {
			buf = append(buf, chunk[:n]...)
			total += int64(n)
			if onProgress != nil {
				p := float64(total) / float64(size)
				if p > 1 {
					p = 1
				}
				onProgress(p)
			}
		}
		if err == io.EOF {
			return buf, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
