package genomos

import (
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/krolaw/zipstream"
	"github.com/xi2/xz"
)

// Compression identifies the compression applied to an input stream, if any.
type Compression byte

const (
	CompressionInvalid Compression = iota
	CompressionNone
	CompressionGzip
	CompressionZip
	CompressionXZ
	CompressionZ
	CompressionBZip2
)

// Byte code signatures from https://stackoverflow.com/a/19127748/199475
var compressionSigs = map[Compression][]byte{
	CompressionGzip:  {0x1f, 0x8b, 0x08},
	CompressionZip:   {0x50, 0x4b, 0x03, 0x04},
	CompressionXZ:    {0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00},
	CompressionZ:     {0x1f, 0x9d},
	CompressionBZip2: {0x42, 0x5a, 0x68},
}

// DetectCompression attempts to detect the compression of a stream by
// checking against a set of known signatures. An empty stream detects as
// uncompressed so the caller can report the lack of content itself.
func DetectCompression(r io.Reader) (Compression, error) {
	buff := make([]byte, 6)
	if _, err := r.Read(buff); err != nil && err != io.EOF {
		return CompressionInvalid, err
	}

Outer:
	for c, sig := range compressionSigs {
		for position := range sig {
			if buff[position] != sig[position] {
				continue Outer
			}
		}
		return c, nil
	}

	return CompressionNone, nil
}

// MaybeDecompress wraps the file with the appropriate decompressor when it
// starts with a known compression signature, so that text sample sheets can
// be consumed whether or not they were compressed for transfer.
func MaybeDecompress(f *os.File) (io.ReadCloser, error) {
	c, err := DetectCompression(f)
	if err != nil {
		return nil, err
	}

	// Reset your original reader before handing it to a decompressor
	if _, err := f.Seek(0, 0); err != nil {
		return nil, err
	}

	switch c {
	case CompressionGzip:
		return gzip.NewReader(f)
	case CompressionZip:
		// A zip archive holds named entries; advance to the first one so
		// reads return its contents.
		zr := zipstream.NewReader(f)
		if _, err := zr.Next(); err != nil {
			return nil, err
		}
		return io.NopCloser(zr), nil
	case CompressionBZip2:
		return io.NopCloser(bzip2.NewReader(f)), nil
	case CompressionXZ:
		reader, err := xz.NewReader(f, 0)
		if err != nil {
			return nil, err
		}
		return io.NopCloser(reader), nil
	case CompressionZ:
		// Unix compress uses LZW with code widths the stdlib reader does
		// not speak; refuse it clearly rather than hand zlib a stream it
		// will reject as corrupt.
		return nil, fmt.Errorf("el archivo está comprimido con compress (.Z), formato no soportado")
	}

	// No compression detected. For now, we assume this is plain text.
	return f, nil
}
