// Package main is the entry point for the allure-analysis CLI.
package main

import "github.com/huixin2022/allure-analysis-mcp/cmd"

func main() {
	cmd.Execute()
}
