package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/typeforge/dynrec"
	"github.com/typeforge/dynrec/registry"
	"github.com/typeforge/dynrec/shared"
)

func main() {
	var (
		iters       = flag.Int("iters", 100000, "Iterations per access strategy")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *interactive {
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*iters); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// payload stands in for an externally owned resource behind a shared
// field.
type payload struct {
	tag uint64
}

// benchLayout mirrors the benchmark schema field for field; Consume
// reinterprets the record's storage as this struct.
type benchLayout struct {
	O uint8
	K uint8
	A int32
	B float32
	C string
	D []int32
	E shared.Shared[payload]
}

type results struct {
	iters   int
	byName  time.Duration
	byIndex time.Duration
	cast    time.Duration
}

func buildSchema(reg *registry.Registry) *dynrec.Schema {
	schema := dynrec.NewSchema("bench", []dynrec.FieldSpec{
		{Name: "o", Desc: registry.Layout[uint8](reg)},
		{Name: "k", Desc: registry.Layout[uint8](reg)},
		{Name: "a", Desc: registry.Layout[int32](reg)},
		{Name: "b", Desc: registry.Layout[float32](reg)},
		{Name: "c", Desc: registry.Layout[string](reg)},
		{Name: "d", Desc: registry.Layout[[]int32](reg)},
		{Name: "e", Desc: registry.Layout[shared.Shared[payload]](reg)},
	})
	reg.AddSchema(schema)
	return schema
}

// Accumulators the timed loops write into so the reads cannot be
// optimized away.
var (
	sinkInt   int32
	sinkFloat float32
	sinkLen   int
)

func runBench(iters int) results {
	reg := registry.New()
	buildSchema(reg)

	rec := reg.Instantiate("bench")

	dynrec.MustSet(rec, "a", int32(1337))
	dynrec.MustSet(rec, "b", float32(5))
	dynrec.MustSet(rec, "c", "Hello World")
	dynrec.MustSet(rec, "d", []int32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	dynrec.MustSet(rec, "e", shared.New(payload{tag: 7}))

	start := time.Now()
	for n := 0; n < iters; n++ {
		sinkInt += *dynrec.MustRef[int32](rec, "a")
		sinkFloat += *dynrec.MustRef[float32](rec, "b")
		sinkLen += len(*dynrec.MustRef[string](rec, "c"))
		sinkLen += len(*dynrec.MustRef[[]int32](rec, "d"))
	}
	byName := time.Since(start)

	start = time.Now()
	for n := 0; n < iters; n++ {
		sinkInt += *dynrec.RefUnchecked[int32](rec, 2)
		sinkFloat += *dynrec.RefUnchecked[float32](rec, 3)
		sinkLen += len(*dynrec.RefUnchecked[string](rec, 4))
		sinkLen += len(*dynrec.RefUnchecked[[]int32](rec, 5))
	}
	byIndex := time.Since(start)

	data := dynrec.Consume[benchLayout](rec)
	rec.Destroy() // no-op after consume; teardown belongs to data now

	start = time.Now()
	for n := 0; n < iters; n++ {
		sinkInt += data.A
		sinkFloat += data.B
		sinkLen += len(data.C)
		sinkLen += len(data.D)
	}
	cast := time.Since(start)

	data.E.Release()

	return results{iters: iters, byName: byName, byIndex: byIndex, cast: cast}
}

var (
	reportTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FAFAFA")).
				Background(lipgloss.Color("#7D56F4")).
				Padding(0, 1)

	reportLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#87CEEB"))

	reportValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#98FB98"))

	reportRuleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

func renderReport(r results) string {
	width := 48
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && w < width {
			width = w
		}
	}

	perOp := func(d time.Duration) string {
		return fmt.Sprintf("%8.1f ns/op", float64(d.Nanoseconds())/float64(r.iters))
	}

	var b strings.Builder
	b.WriteString(reportTitleStyle.Render("dynrec bench"))
	b.WriteString(fmt.Sprintf("  %d iterations\n", r.iters))
	b.WriteString(reportRuleStyle.Render(strings.Repeat("─", width)))
	b.WriteString("\n")

	rows := []struct {
		label string
		d     time.Duration
	}{
		{"checked, by name ", r.byName},
		{"raw, by index    ", r.byIndex},
		{"consumed struct  ", r.cast},
	}
	for _, row := range rows {
		b.WriteString("  ")
		b.WriteString(reportLabelStyle.Render(row.label))
		b.WriteString(reportValueStyle.Render(perOp(row.d)))
		b.WriteString(fmt.Sprintf("  (total %v)\n", row.d.Round(time.Microsecond)))
	}

	return b.String()
}

func run(iters int) error {
	if iters <= 0 {
		return fmt.Errorf("iterations must be positive, got %d", iters)
	}
	fmt.Print(renderReport(runBench(iters)))
	return nil
}
