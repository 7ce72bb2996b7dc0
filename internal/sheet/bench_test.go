package sheet

import (
	"fmt"
	"testing"

	"github.com/vogtb/go-calctree/internal/position"
)

func mustAddr(text string) position.Position {
	p, err := position.Parse(text)
	if err != nil {
		panic(err)
	}
	return p
}

func BenchmarkLargeCellPopulation(b *testing.B) {
	for i := 0; i < b.N; i++ {
		s := New()
		for row := 1; row <= 100; row++ {
			for col := 1; col <= 26; col++ {
				addr := mustAddr(fmt.Sprintf("%c%d", 'A'+col-1, row))
				s.SetCell(addr, fmt.Sprintf("%d", row*col))
			}
		}
	}
}

// BenchmarkFormulaDependencyChain measures a long linear reference chain:
// each cell adds one to the previous, so GetValue on the last cell walks
// the whole chain every call since nothing here caches evaluation.
func BenchmarkFormulaDependencyChain(b *testing.B) {
	s := New()
	s.SetCell(mustAddr("A1"), "1")
	for i := 2; i <= 100; i++ {
		s.SetCell(mustAddr(fmt.Sprintf("A%d", i)), fmt.Sprintf("=A%d+1", i-1))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.GetValue(mustAddr("A100"))
	}
}

// BenchmarkWideDependencyFanOut measures many cells that all reference
// the same source cell.
func BenchmarkWideDependencyFanOut(b *testing.B) {
	s := New()
	s.SetCell(mustAddr("A1"), "100")
	for i := 2; i <= 500; i++ {
		s.SetCell(mustAddr(fmt.Sprintf("B%d", i)), "=A1*2")
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.SetCell(mustAddr("A1"), fmt.Sprintf("%d", i))
		for row := 2; row <= 500; row++ {
			s.GetValue(mustAddr(fmt.Sprintf("B%d", row)))
		}
	}
}
