package main

import "github.com/OpenTraceLab/OpenTraceSAR/cmd/sar/cmd"

func main() {
	cmd.Execute()
}
