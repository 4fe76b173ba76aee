package main

import "github.com/Inha-Lost-Found-Center/ILFC-Front-Admin-Web/cmd"

func main() {
	cmd.Execute()
}
