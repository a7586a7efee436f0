package main

import "news-forum-api/cmd"

func main() {
	cmd.Execute()
}
