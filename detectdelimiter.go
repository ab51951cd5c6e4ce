package genomos

import (
	"io"

	"github.com/csimplestring/go-csv/detector"
)

// DetectDelimiter returns the single most likely rune that would delimit the
// values in the reader. Sample sheets exported from plate readers come as
// comma-, semicolon- or tab-separated text depending on the instrument, so
// the delimiter is sniffed rather than configured.
func DetectDelimiter(r io.Reader) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(r, '"')

	if len(delimiters) > 0 {
		return rune(delimiters[0][0])
	}

	return ','
}
