package main

import "payroll/cmd"

func main() {
	cmd.Execute()
}
