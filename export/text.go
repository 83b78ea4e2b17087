package export

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-wavetable/dsp/wavetable"
)

// DefaultValuesPerLine is the number of samples per output line.
const DefaultValuesPerLine = 20

// TextWriter renders tables as C float literals, "v0f, v1f, ...", wrapping
// lines every ValuesPerLine values.
type TextWriter struct {
	ValuesPerLine int
}

// NewTextWriter returns a writer with the default line width.
func NewTextWriter() *TextWriter {
	return &TextWriter{ValuesPerLine: DefaultValuesPerLine}
}

// FormatSample returns the shortest decimal form of v that always reads as
// a floating point literal, e.g. "-0.785398", "1.0", "1e-06".
func FormatSample(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eIN") {
		s += ".0"
	}
	return s
}

func (tw *TextWriter) perLine() int {
	if tw == nil || tw.ValuesPerLine <= 0 {
		return DefaultValuesPerLine
	}
	return tw.ValuesPerLine
}

func (tw *TextWriter) writeValues(bw *bufio.Writer, samples []float64) {
	perLine := tw.perLine()
	for j, v := range samples {
		bw.WriteString(FormatSample(v))
		if (j+1)%perLine == 0 {
			bw.WriteString("f,\n")
		} else {
			bw.WriteString("f, ")
		}
	}
}

// WriteTable writes the samples of a single table without braces.
func (tw *TextWriter) WriteTable(w io.Writer, t wavetable.Wavetable) error {
	bw := bufio.NewWriter(w)
	tw.writeValues(bw, t.Samples)
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("export: write table %v Hz: %w", t.BaseFrequency, err)
	}
	return nil
}

// WriteBank writes every table as a braced initializer, suitable for the
// body of a two-dimensional C array.
func (tw *TextWriter) WriteBank(w io.Writer, tables []wavetable.Wavetable) error {
	bw := bufio.NewWriter(w)
	for _, t := range tables {
		bw.WriteString("\n{\n")
		tw.writeValues(bw, t.Samples)
		bw.WriteString("\n},\n")
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("export: write bank: %w", err)
	}
	return nil
}

// TableFileName returns "<name>_<int(base)><ext>".
func TableFileName(name string, base float64, ext string) string {
	return fmt.Sprintf("%s_%d%s", name, int(base), ext)
}

// BankFileName returns "<name>_full<ext>".
func BankFileName(name, ext string) string {
	return name + "_full" + ext
}
