package canvas

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// ppmMaxLineLength is the longest line the plain PPM format allows.
const ppmMaxLineLength = 70

// WritePPM serializes the canvas in plain PPM (P3): a header with the
// dimensions and maximum channel value, then one clamped 0-255 value per
// channel, with lines wrapped at 70 characters and a trailing newline.
func (c *Canvas) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", c.width, c.height); err != nil {
		return err
	}

	for y := 0; y < c.height; y++ {
		lineLen := 0
		for x := 0; x < c.width; x++ {
			p := c.pixels[y*c.width+x]
			for _, v := range []float64{p.R, p.G, p.B} {
				value := strconv.Itoa(int(clampChannel(v)))
				if lineLen == 0 {
					if _, err := bw.WriteString(value); err != nil {
						return err
					}
					lineLen = len(value)
					continue
				}
				if lineLen+1+len(value) > ppmMaxLineLength {
					if err := bw.WriteByte('\n'); err != nil {
						return err
					}
					if _, err := bw.WriteString(value); err != nil {
						return err
					}
					lineLen = len(value)
					continue
				}
				if err := bw.WriteByte(' '); err != nil {
					return err
				}
				if _, err := bw.WriteString(value); err != nil {
					return err
				}
				lineLen += 1 + len(value)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
