package main

import "github.com/klytics/sheetpick/cmd"

func main() {
	cmd.Execute()
}
