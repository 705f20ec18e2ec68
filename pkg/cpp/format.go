package cpp

import (
	"bytes"
	"fmt"

	"github.com/samber/lo"

	"image2cpp/pkg/convert"
)

const hexDigits = "0123456789ABCDEF"

func appendTotal(buf *bytes.Buffer, total int) {
	fmt.Fprintf(buf, "// Total bitmap data size: %d bytes\n\n", total)
}

// appendArray writes one declaration. Every value is followed by ", " and a
// line break comes after each perLine values.
func appendArray(buf *bytes.Buffer, name string, res *convert.Result, progmem bool, perLine int) {
	fmt.Fprintf(buf, "// %s\n", res.Source)
	fmt.Fprintf(buf, "// Size: %dx%d (%d bytes)\n", res.Width, res.Height, res.Size())
	fmt.Fprintf(buf, "const uint16_t %s[%d]%s = {\n", name, len(res.Pixels), lo.Ternary(progmem, " PROGMEM", ""))

	buf.Grow(len(res.Pixels)*8 + len(res.Pixels)/perLine + 4)
	lit := []byte("0x0000, ")
	for i, v := range res.Pixels {
		lit[2] = hexDigits[v>>12&0xF]
		lit[3] = hexDigits[v>>8&0xF]
		lit[4] = hexDigits[v>>4&0xF]
		lit[5] = hexDigits[v&0xF]
		buf.Write(lit)
		if (i+1)%perLine == 0 {
			buf.WriteByte('\n')
		}
	}

	buf.WriteString("\n};\n")
}
