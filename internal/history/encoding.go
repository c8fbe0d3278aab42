package history

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// DefaultEncodings is the order in which a history file is decoded.
var DefaultEncodings = []string{
	"utf-8",
	"latin-1",
	"windows-1252",
	"cp1252",
	"iso-8859-1",
}

// utf8Encoding is the encoding that needs no transcoding and is not reported.
const utf8Encoding = "utf-8"

var decoders = map[string]func() transform.Transformer{
	"utf-8":        func() transform.Transformer { return encoding.UTF8Validator },
	"latin-1":      func() transform.Transformer { return charmap.ISO8859_1.NewDecoder() },
	"iso-8859-1":   func() transform.Transformer { return charmap.ISO8859_1.NewDecoder() },
	"windows-1252": func() transform.Transformer { return charmap.Windows1252.NewDecoder() },
	"cp1252":       func() transform.Transformer { return charmap.Windows1252.NewDecoder() },
}

// IsSupportedEncoding reports whether name can be used in an encoding list.
func IsSupportedEncoding(name string) bool {
	_, ok := decoders[strings.ToLower(name)]
	return ok
}

// decode converts b to UTF-8 text under the named encoding.
// A strict decoder error means the bytes are not valid in that encoding.
func decode(name string, b []byte) ([]byte, error) {
	newDecoder, ok := decoders[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
	out, _, err := transform.Bytes(newDecoder(), b)
	if err != nil {
		return nil, err
	}
	return out, nil
}
