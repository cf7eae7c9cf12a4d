// Package textio reads plain-text files of unknown encoding and hands
// the engine normalized UTF-8. Chinese novel files in the wild arrive as
// UTF-8, GBK/GB2312, Big5 or UTF-16 with roughly that frequency, so
// detection is a BOM sniff followed by strict trial decodes in that
// order.
package textio

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// sniffLimit bounds how much of the file the trial decoders look at.
// Heading conventions show up early; decoding errors do too.
const sniffLimit = 64 * 1024

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// candidate pairs an encoding name with its decoder, in trial order.
// GB18030 supersets GBK and GB2312, which is why neither appears
// separately.
var candidates = []struct {
	name string
	enc  encoding.Encoding
}{
	{"GB18030", simplifiedchinese.GB18030},
	{"Big5", traditionalchinese.Big5},
}

// DetectEncoding names the encoding the file content appears to use.
// It never fails; undetectable content reports "UTF-8" and the caller
// gets a lossy decode.
func DetectEncoding(data []byte) string {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return "UTF-8"
	case bytes.HasPrefix(data, bomUTF16LE):
		return "UTF-16LE"
	case bytes.HasPrefix(data, bomUTF16BE):
		return "UTF-16BE"
	}
	sample := data
	if len(sample) > sniffLimit {
		sample = sample[:sniffLimit]
	}
	if utf8.Valid(sample) {
		return "UTF-8"
	}
	for _, c := range candidates {
		if _, err := decodeStrict(sample, c.enc); err == nil {
			return c.name
		}
	}
	return "UTF-8"
}

// Decode converts raw file bytes to a normalized UTF-8 string: BOM
// stripped, newlines folded to \n. Content that fits no known encoding
// degrades to a lossy UTF-8 interpretation rather than failing.
func Decode(data []byte) string {
	var text string
	switch DetectEncoding(data) {
	case "UTF-16LE":
		text = decodeLossy(data, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM))
	case "UTF-16BE":
		text = decodeLossy(data, unicode.UTF16(unicode.BigEndian, unicode.UseBOM))
	case "GB18030":
		text = decodeLossy(data, simplifiedchinese.GB18030)
	case "Big5":
		text = decodeLossy(data, traditionalchinese.Big5)
	default:
		text = string(bytes.TrimPrefix(data, bomUTF8))
		if !utf8.ValidString(text) {
			text = strings.ToValidUTF8(text, "�")
		}
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// ReadFile loads and decodes one text file.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("textio: read %s: %w", path, err)
	}
	return Decode(data), nil
}

func decodeStrict(data []byte, enc encoding.Encoding) (string, error) {
	dec := enc.NewDecoder()
	out, _, err := transform.Bytes(transform.Chain(dec, errorOnReplacement{}), data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func decodeLossy(data []byte, enc encoding.Encoding) string {
	out, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return strings.ToValidUTF8(string(data), "�")
	}
	return string(out)
}

// errorOnReplacement turns a decoder's replacement runes into hard errors
// so trial decodes reject encodings that "succeed" by mangling text.
type errorOnReplacement struct{ transform.NopResetter }

func (errorOnReplacement) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size == 1 {
			if !atEOF {
				return nDst, nSrc, transform.ErrShortSrc
			}
			return nDst, nSrc, fmt.Errorf("textio: invalid byte sequence")
		}
		if r == '�' {
			return nDst, nSrc, fmt.Errorf("textio: replacement rune emitted")
		}
		if nDst+size > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		copy(dst[nDst:], src[nSrc:nSrc+size])
		nDst += size
		nSrc += size
	}
	return nDst, nSrc, nil
}
