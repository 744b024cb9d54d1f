package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/pricestats/internal/domain/models"
)

func TestAlign_TableDriven(t *testing.T) {
	cases := []struct {
		name     string
		a, b     models.Series
		wantLen  int
		droppedA int
		droppedB int
		wantErr  error
	}{
		{
			name:    "identical days",
			a:       seriesFrom(models.Bitcoin, 0, 1, 2, 3),
			b:       seriesFrom(models.Snp500, 0, 4, 5, 6),
			wantLen: 3,
		},
		{
			name:     "larger side trimmed",
			a:        seriesFrom(models.Bitcoin, 0, 1, 2, 3, 4, 5),
			b:        seriesFrom(models.Snp500, 1, 4, 5, 6),
			wantLen:  3,
			droppedA: 2,
		},
		{
			name:     "larger right side trimmed",
			a:        seriesFrom(models.Bitcoin, 2, 1, 2),
			b:        seriesFrom(models.Snp500, 0, 1, 2, 3, 4, 5, 6),
			wantLen:  2,
			droppedB: 4,
		},
		{
			name:     "equal sizes, partial overlap",
			a:        seriesFrom(models.Bitcoin, 0, 1, 2, 3),
			b:        seriesFrom(models.Snp500, 1, 4, 5, 6),
			wantLen:  2,
			droppedA: 1,
			droppedB: 1,
		},
		{
			name:    "disjoint ranges",
			a:       seriesFrom(models.Bitcoin, 0, 1, 2, 3),
			b:       seriesFrom(models.Snp500, 10, 1, 2),
			wantErr: ErrNoOverlap,
		},
		{
			name:    "empty side",
			a:       seriesFrom(models.Bitcoin, 0, 1, 2, 3),
			b:       models.NewSeries(models.Snp500),
			wantErr: ErrNoOverlap,
		},
		{
			name:    "smaller not nested in larger",
			a:       seriesFrom(models.Bitcoin, 0, 1, 2, 3),
			b:       seriesFrom(models.Snp500, 1, 1, 2, 3, 4),
			wantErr: ErrAlignmentInconsistency,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := Align(tc.a, tc.b)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantLen, p.Len())
			assert.Equal(t, tc.wantLen, p.A.Len())
			assert.Equal(t, tc.wantLen, p.B.Len())
			assert.Equal(t, tc.droppedA, p.DroppedA)
			assert.Equal(t, tc.droppedB, p.DroppedB)
			for i, d := range p.Dates {
				assert.True(t, p.A.Has(d) && p.B.Has(d), "date %s missing", d)
				if i > 0 {
					assert.True(t, p.Dates[i-1].Before(d), "dates not sorted")
				}
			}
		})
	}
}

func TestAlign_DoesNotMutateInputs(t *testing.T) {
	a := seriesFrom(models.Bitcoin, 0, 1, 2, 3, 4)
	b := seriesFrom(models.Snp500, 0, 1, 2)
	_, err := Align(a, b)
	require.NoError(t, err)
	assert.Equal(t, 4, a.Len())
	assert.Equal(t, 2, b.Len())
}

func TestAlign_ErrorNamesInstruments(t *testing.T) {
	a := seriesFrom(models.Ethereum, 0, 1, 2, 3)
	b := seriesFrom(models.Solana, 1, 1, 2, 3, 4)
	_, err := Align(a, b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Ethereum")
	assert.Contains(t, err.Error(), "Solana")
}
