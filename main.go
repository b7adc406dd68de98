package main

import "github.com/ecomet/investor-dashboard/cmd"

func main() {
	cmd.Execute()
}
