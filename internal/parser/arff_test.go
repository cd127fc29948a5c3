package parser_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/tabkit-cli/internal/dataset"
	"github.com/KaramelBytes/tabkit-cli/internal/parser"
)

var robotARFF = []string{
	"@relation wall-following",
	"",
	"@attribute V1 numeric",
	"@attribute 'V2' numeric",
	"@attribute Class {1,2,3,4}",
	"",
	"@data",
	"0.9,1.1,1",
	"% a comment",
	"0.8,?,2",
	"",
	"0.7,1.3,1",
}

func TestParseARFF(t *testing.T) {
	d, err := parser.Parse(robotARFF, dataset.FormatARFF, parser.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []string{"V1", "V2", "Class"}, d.Columns)
	require.Equal(t, robotARFF[:7], d.Meta)
	require.Equal(t, 3, d.RowCount())
	require.Equal(t, []string{"1.1", "?", "1.3"}, d.Values["V2"])
	require.Equal(t, []string{"1", "2", "1"}, d.Values["Class"])
}

func TestParseARFFUppercaseMarkers(t *testing.T) {
	lines := []string{"@RELATION r", "@ATTRIBUTE x REAL", "@DATA", "1"}
	d, err := parser.Parse(lines, dataset.FormatARFF, parser.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []string{"x"}, d.Columns)
	require.Equal(t, []string{"1"}, d.Values["x"])
}

func TestParseARFFQuotedNames(t *testing.T) {
	lines := []string{
		"@relation r",
		"@attribute 'my attr' real",
		`@attribute "other one" {a,b}`,
		"@attribute 'open real",
		"@data",
		"1,a,2",
	}
	d, err := parser.Parse(lines, dataset.FormatARFF, parser.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []string{"my attr", "other one", "'open"}, d.Columns)
	require.Equal(t, []string{"a"}, d.Values["other one"])
}

func TestParseARFFWithoutData(t *testing.T) {
	_, err := parser.Parse([]string{"@relation r", "@attribute x real"}, dataset.FormatARFF, parser.DefaultOptions())
	var fe *dataset.FormatError
	require.True(t, errors.As(err, &fe))
}

func TestARFFRoundTrip(t *testing.T) {
	d, err := parser.Parse(robotARFF, dataset.FormatARFF, parser.DefaultOptions())
	require.NoError(t, err)
	out, err := parser.Serialize(d, dataset.FormatARFF)
	require.NoError(t, err)

	want := append(append([]string{}, robotARFF[:7]...), "0.9,1.1,1", "0.8,?,2", "0.7,1.3,1")
	require.Equal(t, want, out)
}

func TestARFFToCSV(t *testing.T) {
	d, err := parser.Parse(robotARFF, dataset.FormatARFF, parser.DefaultOptions())
	require.NoError(t, err)
	out, err := parser.Serialize(d, dataset.FormatCSV)
	require.NoError(t, err)
	require.Equal(t, `"V1","V2","Class"`, out[0])
	require.Len(t, out, 4)
}

func TestSplitARFF(t *testing.T) {
	meta, rows, err := parser.SplitARFF(robotARFF)
	require.NoError(t, err)
	require.Len(t, meta, 7)
	require.Equal(t, []string{"0.9,1.1,1", "0.8,?,2", "0.7,1.3,1"}, rows)
}
