package main

import "github.com/dbsmedya/plandiff/cmd/plandiff/cmd"

func main() {
	cmd.Execute()
}
