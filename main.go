package main

import "github.com/caretab/clinic_backend/cmd"

func main() {
	cmd.Execute()
}
