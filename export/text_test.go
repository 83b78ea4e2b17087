package export

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-wavetable/dsp/wavetable"
)

func TestFormatSample(t *testing.T) {
	tests := map[float64]string{
		-0.785398: "-0.785398",
		0.5:       "0.5",
		1:         "1.0",
		-2:        "-2.0",
		0:         "0.0",
		1e-06:     "1e-06",
		-1.5e-05:  "-1.5e-05",
	}
	for v, want := range tests {
		require.Equal(t, want, FormatSample(v), "value %v", v)
	}
	require.Equal(t, "-0.0", FormatSample(math.Copysign(0, -1)))
}

func TestWriteTable(t *testing.T) {
	table := wavetable.Wavetable{BaseFrequency: 20, Samples: []float64{0, -0.5, 0.25, 1, -1}}

	var buf bytes.Buffer
	tw := &TextWriter{ValuesPerLine: 2}
	require.NoError(t, tw.WriteTable(&buf, table))
	require.Equal(t, "0.0f, -0.5f,\n0.25f, 1.0f,\n-1.0f, ", buf.String())
}

func TestWriteBank(t *testing.T) {
	tables := []wavetable.Wavetable{
		{BaseFrequency: 20, Samples: []float64{0.1, 0.2}},
		{BaseFrequency: 40, Samples: []float64{0.3}},
	}

	var buf bytes.Buffer
	require.NoError(t, NewTextWriter().WriteBank(&buf, tables))
	require.Equal(t, "\n{\n0.1f, 0.2f, \n},\n\n{\n0.3f, \n},\n", buf.String())
}

func TestDefaultLineWidth(t *testing.T) {
	samples := make([]float64, 45)
	var buf bytes.Buffer
	var tw *TextWriter
	require.NoError(t, tw.WriteTable(&buf, wavetable.Wavetable{Samples: samples}))

	lines := strings.Split(buf.String(), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, 20, strings.Count(lines[0], "f,"))
	require.Equal(t, 5, strings.Count(lines[2], "f,"))
}

func TestFileNames(t *testing.T) {
	require.Equal(t, "SQR_20.txt", TableFileName("SQR", 20, ".txt"))
	require.Equal(t, "SQR_20480.png", TableFileName("SQR", 20480, ".png"))
	require.Equal(t, "SQR_27.png", TableFileName("SQR", 27.5, ".png"))
	require.Equal(t, "SQR_full.txt", BankFileName("SQR", ".txt"))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteErrors(t *testing.T) {
	table := wavetable.Wavetable{BaseFrequency: 20, Samples: []float64{1}}
	require.Error(t, NewTextWriter().WriteTable(failingWriter{}, table))
	require.Error(t, NewTextWriter().WriteBank(failingWriter{}, []wavetable.Wavetable{table}))
}
