package main

import (
	"github.com/JadeHarbert/CourseProject/app/cmd"
)

func main() {
	cmd.RunCli()
}
