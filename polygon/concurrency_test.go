package polygon_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/ngon/polygon"
	"github.com/stretchr/testify/require"
)

// TestConcurrentMeasurements hammers one shared instance from many
// goroutines; run with -race. Every reader must observe the same bits,
// whether it raced the first computation or hit the memo.
func TestConcurrentMeasurements(t *testing.T) {
	p, err := polygon.New(17, 3.25)
	require.NoError(t, err)

	const goroutines = 32
	results := make([][5]float64, goroutines)

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func(g int) {
			defer wg.Done()
			results[g] = [5]float64{
				p.SideLength(), p.Apothem(), p.Area(), p.Perimeter(), p.InteriorAngle(),
			}
		}(g)
	}
	wg.Wait()

	for g := 1; g < goroutines; g++ {
		if results[g] != results[0] {
			t.Errorf("goroutine %d observed %v; goroutine 0 observed %v", g, results[g], results[0])
		}
	}
}
