package benchmarks

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/klytics/sheetpick/internal/formats/xlsx"
	"github.com/klytics/sheetpick/internal/table"
)

func buildTable(rows int) *table.Table {
	t := table.New([]string{"ID", "Name", "Email", "Amount", "Active"})
	for i := 0; i < rows; i++ {
		t.AppendRow([]table.Cell{
			table.Number(float64(i)),
			table.Text(fmt.Sprintf("User %d", i)),
			table.Text(fmt.Sprintf("user%d@example.com", i)),
			table.Number(float64(i) * 1.5),
			table.Bool(i%2 == 0),
		})
	}
	return t
}

func BenchmarkProject(b *testing.B) {
	t := buildTable(10000)
	selection := []string{"Name", "Email"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		t.Project(selection)
	}
}

func BenchmarkXlsxWrite(b *testing.B) {
	t := buildTable(1000)
	dir := b.TempDir()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		path := filepath.Join(dir, fmt.Sprintf("bench-%d.xlsx", i))
		if err := xlsx.WriteFile(t, path); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkXlsxRead(b *testing.B) {
	t := buildTable(1000)
	path := filepath.Join(b.TempDir(), "bench.xlsx")
	if err := xlsx.WriteFile(t, path); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := xlsx.ReadFile(path, ""); err != nil {
			b.Fatal(err)
		}
	}
}
