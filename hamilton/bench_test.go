package hamilton_test

import (
	"testing"

	"github.com/katalvlaran/hamviz/adjacency"
	"github.com/katalvlaran/hamviz/hamilton"
)

// BenchmarkRun_Complete10 measures an unpaced search over K_10, which
// succeeds on the first descent: the cost is pure event/suspension
// plumbing over 10 frames.
func BenchmarkRun_Complete10(b *testing.B) {
	m, err := adjacency.Build(buildComplete(10))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		eng := hamilton.NewEngine()
		if _, err = eng.Run(m); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRun_K23Exhaustive measures a full exhaustive failure over
// K_{2,3}: 37 events, 12 dead-end descents, verdict NoCycle.
func BenchmarkRun_K23Exhaustive(b *testing.B) {
	m, err := adjacency.Build(buildK23())
	if err != nil {
		b.Fatal(err)
	}

	rec := &hamilton.Recorder{}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rec.Reset()
		eng := hamilton.NewEngine(hamilton.WithOnEvent(rec.Record))
		if _, err = eng.Run(m); err != nil {
			b.Fatal(err)
		}
	}
}
