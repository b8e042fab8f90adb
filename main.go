package main

import "github.com/AGTechathon/Agriminds/cmd"

func main() {
	cmd.Execute()
}
