package main

import "github.com/Manu343726/rvdecode/cmd"

func main() {
	cmd.Execute()
}
