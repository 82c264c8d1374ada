package main

import "github.com/aliskhannn/periodic-quiz-bot/internal/cli"

func main() {
	cli.Execute()
}
