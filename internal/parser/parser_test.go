package parser_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/tabkit-cli/internal/dataset"
	"github.com/KaramelBytes/tabkit-cli/internal/parser"
)

func TestDetectFormat(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want dataset.Format
	}{
		{"csv", "data/iris.csv", dataset.FormatCSV},
		{"csv upper", "IRIS.CSV", dataset.FormatCSV},
		{"arff", "robot.arff", dataset.FormatARFF},
		{"no extension", "wall-robot-navigation", dataset.FormatARFF},
		{"dotted dir without extension", "./data.d/robot", dataset.FormatARFF},
	}
	for _, c := range cases {
		got, err := parser.DetectFormat(c.in)
		require.NoError(t, err, c.name)
		require.Equal(t, c.want, got, c.name)
	}
}

func TestDetectFormatUnsupported(t *testing.T) {
	_, err := parser.DetectFormat("sheet.xlsx")
	var fe *dataset.FormatError
	require.True(t, errors.As(err, &fe), "expected FormatError, got %v", err)
	require.Equal(t, "sheet.xlsx", fe.Path)
}

func TestStrictRowLength(t *testing.T) {
	lines := []string{"a,b,c", "1,2,3", "4,5"}
	_, err := parser.Parse(lines, dataset.FormatCSV, parser.DefaultOptions())
	var rl *dataset.RowLengthError
	require.True(t, errors.As(err, &rl), "expected RowLengthError, got %v", err)
	require.Equal(t, 3, rl.Line)
	require.Equal(t, 2, rl.Got)
	require.Equal(t, 3, rl.Want)
}

func TestLenientRowLength(t *testing.T) {
	lines := []string{"a,b,c", "1,2", "4,5,6,7"}
	d, err := parser.Parse(lines, dataset.FormatCSV, parser.Options{Strict: false})
	require.NoError(t, err)
	require.Equal(t, []string{"1", "2", ""}, d.Row(0))
	require.Equal(t, []string{"4", "5", "6"}, d.Row(1))
	require.NoError(t, d.Validate())
}
