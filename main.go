package main

import "storage-provider/cmd"

func main() {
	cmd.Execute()
}
