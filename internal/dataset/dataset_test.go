package dataset_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/tabkit-cli/internal/dataset"
)

func TestNewRejectsDuplicateColumns(t *testing.T) {
	_, err := dataset.New(dataset.FormatCSV, []string{"a", "b", "a"}, nil)
	var ve *dataset.ValidationError
	require.True(t, errors.As(err, &ve), "duplicate column must be a ValidationError")
	require.Equal(t, "a", ve.Value)
}

func TestAppendRowAndAccessors(t *testing.T) {
	d, err := dataset.New(dataset.FormatCSV, []string{"x", "Class"}, nil)
	require.NoError(t, err)
	require.NoError(t, d.AppendRow([]string{"1.5", "1"}))
	require.NoError(t, d.AppendRow([]string{"?", "2"}))
	require.Error(t, d.AppendRow([]string{"only-one"}))

	require.Equal(t, 2, d.RowCount())
	require.Equal(t, []string{"?", "2"}, d.Row(1))
	require.NoError(t, d.Validate())

	x, ok := d.Column("x")
	require.True(t, ok)
	require.Equal(t, 1, dataset.CountMissing(x, "?"))

	labels, err := d.ClassLabels("Class")
	require.NoError(t, err)
	require.Equal(t, []string{"1", "2"}, labels)
}

func TestSetColumnKeepsRowCount(t *testing.T) {
	d, err := dataset.New(dataset.FormatCSV, []string{"x"}, nil)
	require.NoError(t, err)
	require.NoError(t, d.AppendRow([]string{"1"}))

	require.Error(t, d.SetColumn("x", []string{"1", "2"}))
	require.Error(t, d.SetColumn("nope", []string{"1"}))
	require.NoError(t, d.SetColumn("x", []string{"?"}))
	require.Equal(t, []string{"?"}, d.Values["x"])
}

func TestClassLabelsMissingColumn(t *testing.T) {
	d, err := dataset.New(dataset.FormatARFF, []string{"x"}, []string{"@data"})
	require.NoError(t, err)
	_, err = d.ClassLabels("Class")
	var mc *dataset.MissingClassColumnError
	require.True(t, errors.As(err, &mc))
	require.Equal(t, "Class", mc.Column)
}

func TestParseFormat(t *testing.T) {
	f, err := dataset.ParseFormat("ARFF")
	require.NoError(t, err)
	require.Equal(t, dataset.FormatARFF, f)
	require.Equal(t, "arff", f.String())

	_, err = dataset.ParseFormat("xlsx")
	var ve *dataset.ValidationError
	require.True(t, errors.As(err, &ve))
}

func TestUnsupportedConversionUnwrapsToFormatError(t *testing.T) {
	var err error = &dataset.UnsupportedConversionError{
		FormatError: &dataset.FormatError{Reason: "no ARFF header captured"},
		From:        dataset.FormatCSV,
		To:          dataset.FormatARFF,
	}
	var fe *dataset.FormatError
	require.True(t, errors.As(err, &fe))
	require.Contains(t, err.Error(), "csv")
}
