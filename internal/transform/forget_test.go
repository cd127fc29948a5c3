package transform_test

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KaramelBytes/tabkit-cli/internal/dataset"
	"github.com/KaramelBytes/tabkit-cli/internal/transform"
)

// ForgetSuite groups tests for missingness injection.
type ForgetSuite struct {
	suite.Suite
	values []string
}

func (s *ForgetSuite) SetupTest() {
	s.values = make([]string, 20)
	for i := range s.values {
		s.values[i] = fmt.Sprintf("v%d", i)
	}
}

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// TestExactCount: the number of sentinels follows the ceil rule on both sides of 0.5.
func (s *ForgetSuite) TestExactCount() {
	n := float64(len(s.values))
	for _, f := range []float64{0, 0.05, 0.25, 0.5, 0.55, 0.8, 1} {
		out, err := transform.Forget(s.values, f, "?", seeded(7))
		require.NoError(s.T(), err)
		want := int(math.Ceil(f * n))
		if f > 0.5 {
			want = len(s.values) - int(math.Ceil((1-f)*n))
		}
		require.Equal(s.T(), want, dataset.CountMissing(out, "?"), "fraction %v", f)
	}
}

// TestKeptValuesStayInPlace: surviving entries are the originals at the same index.
func (s *ForgetSuite) TestKeptValuesStayInPlace() {
	for _, f := range []float64{0.3, 0.7} {
		out, err := transform.Forget(s.values, f, "?", seeded(11))
		require.NoError(s.T(), err)
		require.Len(s.T(), out, len(s.values))
		for i, v := range out {
			if v != "?" {
				require.Equal(s.T(), s.values[i], v)
			}
		}
	}
}

// TestInputNotMutated: the source slice is left untouched.
func (s *ForgetSuite) TestInputNotMutated() {
	orig := append([]string(nil), s.values...)
	_, err := transform.Forget(s.values, 0.5, "?", seeded(3))
	require.NoError(s.T(), err)
	require.Equal(s.T(), orig, s.values)
}

// TestSeedReproducible: identical seeds give identical patterns.
func (s *ForgetSuite) TestSeedReproducible() {
	a, err := transform.Forget(s.values, 0.4, "?", seeded(42))
	require.NoError(s.T(), err)
	b, err := transform.Forget(s.values, 0.4, "?", seeded(42))
	require.NoError(s.T(), err)
	require.Equal(s.T(), a, b)
}

// TestForgetAll: fraction 1 takes the complement path with nothing kept.
func (s *ForgetSuite) TestForgetAll() {
	out, err := transform.Forget(s.values, 1, `"?"`, seeded(1))
	require.NoError(s.T(), err)
	for _, v := range out {
		require.Equal(s.T(), `"?"`, v)
	}
}

// TestInvalidFraction yields ValidationError.
func (s *ForgetSuite) TestInvalidFraction() {
	for _, f := range []float64{-0.1, 1.5, math.NaN()} {
		_, err := transform.Forget(s.values, f, "?", seeded(1))
		var ve *dataset.ValidationError
		require.True(s.T(), errors.As(err, &ve), "fraction %v", f)
	}
}

// TestEmptyColumn: nothing to draw from.
func (s *ForgetSuite) TestEmptyColumn() {
	out, err := transform.Forget(nil, 0.9, "?", seeded(1))
	require.NoError(s.T(), err)
	require.Empty(s.T(), out)
}

func TestForgetSuite(t *testing.T) {
	suite.Run(t, new(ForgetSuite))
}

func sampleDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	d, err := dataset.New(dataset.FormatCSV, []string{"a", "b", "Class"}, nil)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		require.NoError(t, d.AppendRow([]string{fmt.Sprint(i), fmt.Sprint(i * 10), fmt.Sprint(i%2 + 1)}))
	}
	return d
}

func TestForgetColumnsAllByDefault(t *testing.T) {
	d := sampleDataset(t)
	counts, err := transform.ForgetColumns(d, nil, 0.2, "?", seeded(5))
	require.NoError(t, err)
	require.Len(t, counts, 3)
	for _, c := range d.Columns {
		require.Equal(t, 2, counts[c], c)
	}
	require.NoError(t, d.Validate())
}

func TestForgetColumnsSelected(t *testing.T) {
	d := sampleDataset(t)
	counts, err := transform.ForgetColumns(d, []string{"b"}, 0.5, "?", seeded(5))
	require.NoError(t, err)
	require.Equal(t, map[string]int{"b": 5}, counts)
	require.Zero(t, dataset.CountMissing(d.Values["a"], "?"))
	require.Zero(t, dataset.CountMissing(d.Values["Class"], "?"))
}

func TestForgetColumnsUnknownAttribute(t *testing.T) {
	d := sampleDataset(t)
	_, err := transform.ForgetColumns(d, []string{"a", "zzz"}, 0.5, "?", seeded(5))
	var ve *dataset.ValidationError
	require.True(t, errors.As(err, &ve))
	require.Equal(t, "zzz", ve.Value)
	require.Zero(t, dataset.CountMissing(d.Values["a"], "?"), "no column is touched on error")
}
