package main

import "github.com/oshokin/air-raid-monitor/cmd/air-raid-monitor/cmd"

func main() {
	cmd.Execute()
}
