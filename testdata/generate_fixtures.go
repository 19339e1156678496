//go:build ignore

// This program generates the sample spreadsheet used for manual testing:
//
//	go run testdata/generate_fixtures.go
package main

import (
	"fmt"
	"os"

	"github.com/klytics/sheetpick/internal/formats/xlsx"
	"github.com/klytics/sheetpick/internal/table"
)

func main() {
	t := table.New([]string{"Name", "Age", "City", "Signup", "Active"})
	t.AppendRow([]table.Cell{table.Text("Alice"), table.Number(30), table.Text("NYC"), table.Text("2024-01-15"), table.Bool(true)})
	t.AppendRow([]table.Cell{table.Text("Bob"), table.Number(25), table.Text("LA"), table.Text("2024-03-02"), table.Bool(false)})
	t.AppendRow([]table.Cell{table.Text("Carol"), table.Number(41), table.Text("Chicago"), table.Text("2023-11-20"), table.Bool(true)})

	if err := xlsx.WriteFile(t, "testdata/sample.xlsx"); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating sample.xlsx: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Test fixtures generated successfully.")
}
