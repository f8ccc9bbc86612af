package main

import "github.com/corinthian/voiceattack-vap-builder/cmd/vapcli/cmd"

func main() {
	cmd.Execute()
}
