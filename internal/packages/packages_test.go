package packages

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewMemoryStoreReturnsDefaultBatch(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()

	got, err := store.List()
	require.NoError(t, err)
	require.Equal(t, Default(), got)

	// ensure mutation safety
	got[0].Data[0] = 999
	got[1].Code = "XYZ"
	again, err := store.List()
	require.NoError(t, err)
	require.Equal(t, 720.0, again[0].Data[0])
	require.Equal(t, "RUN", again[1].Code)
}

func TestDefaultOrder(t *testing.T) {
	t.Parallel()

	got := Default()
	require.Len(t, got, 3)
	require.Equal(t, "SWM", got[0].Code)
	require.Equal(t, "RUN", got[1].Code)
	require.Equal(t, "WLK", got[2].Code)
}

func TestReplaceUpdatesState(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	batch := []Package{
		{Code: "RUN", Data: []float64{1000, 1, 60}},
		{Code: "XYZ", Data: []float64{1}},
	}
	require.NoError(t, store.Replace(batch))

	batch[0].Data[0] = 5
	got, err := store.List()
	require.NoError(t, err)
	require.Equal(t, []Package{
		{Code: "RUN", Data: []float64{1000, 1, 60}},
		{Code: "XYZ", Data: []float64{1}},
	}, got)
}

func TestReplaceRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		batch   []Package
		wantErr error
	}{
		{batch: nil, wantErr: ErrEmptyBatch},
		{batch: []Package{}, wantErr: ErrEmptyBatch},
		{batch: []Package{{Code: " ", Data: []float64{1}}}, wantErr: ErrInvalidPackage},
	}

	for idx, tc := range testCases {
		t.Run(fmt.Sprintf("case_%d", idx), func(t *testing.T) {
			store := NewMemoryStore()
			err := store.Replace(tc.batch)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v for %v, got %v", tc.wantErr, tc.batch, err)
			}
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		got, err := Parse(" RUN:15000, 1 ,75 ; WLK:9000,1,75,180;")
		require.NoError(t, err)
		require.Equal(t, []Package{
			{Code: "RUN", Data: []float64{15000, 1, 75}},
			{Code: "WLK", Data: []float64{9000, 1, 75, 180}},
		}, got)
	})

	t.Run("keeps unknown codes for the dispatcher", func(t *testing.T) {
		got, err := Parse("XYZ:1,2")
		require.NoError(t, err)
		require.Equal(t, []Package{{Code: "XYZ", Data: []float64{1, 2}}}, got)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := Parse(" ; ")
		require.ErrorIs(t, err, ErrEmptyBatch)

		_, err = Parse("RUN")
		require.ErrorIs(t, err, ErrInvalidPackage)

		_, err = Parse("RUN:1,a")
		require.ErrorIs(t, err, ErrInvalidPackage)

		_, err = Parse(":1,2")
		require.ErrorIs(t, err, ErrInvalidPackage)
	})
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	store := NewMemoryStore()
	var wg sync.WaitGroup

	for i := 0; i < 32; i++ {
		wg.Add(2)

		go func(offset int) {
			defer wg.Done()
			batch := []Package{{Code: "RUN", Data: []float64{float64(1000 + offset), 1, 70}}}
			if err := store.Replace(batch); err != nil {
				t.Errorf("Replace failed: %v", err)
			}
		}(i)

		go func() {
			defer wg.Done()
			if _, err := store.List(); err != nil {
				t.Errorf("List failed: %v", err)
			}
		}()
	}

	wg.Wait()

	if _, err := store.List(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
