package watchlog

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// ReadText reads the whole content of a file, typically one being appended by an external program, as text.
// Content is expected to be UTF-8. An invalid sequence anywhere in the file fails the read with
// encoding.ErrInvalidUTF8 instead of being replaced, so callers never emit garbled text.
// Line endings are normalized: "\r\n" and a lone "\r" both read as "\n".
func ReadText(fs afero.Fs, filename string) (string, error) {
	file, err := fs.Open(filename)
	if err != nil {
		return "", err
	}
	defer file.Close()

	text := transform.NewReader(file, transform.Chain(encoding.UTF8Validator, newlineNormalizer{}))
	contents, err := io.ReadAll(text)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", filename, err)
	}
	return string(contents), nil
}

// newlineNormalizer rewrites "\r\n" and "\r" as "\n".
type newlineNormalizer struct {
	transform.NopResetter
}

func (newlineNormalizer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c := src[nSrc]
		if c == '\r' && nSrc+1 == len(src) && !atEOF {
			// can't tell "\r" from "\r\n" yet
			return nDst, nSrc, transform.ErrShortSrc
		}
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nSrc++
		if c == '\r' {
			c = '\n'
			if nSrc < len(src) && src[nSrc] == '\n' {
				nSrc++
			}
		}
		dst[nDst] = c
		nDst++
	}
	return nDst, nSrc, nil
}
