package main

import "github.com/naka-gawa/devsalary/cmd"

func main() {
	cmd.Execute()
}
