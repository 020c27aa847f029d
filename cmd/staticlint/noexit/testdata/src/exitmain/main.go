package main

import "os"

func main() {
	run()
	os.Exit(0) // want "вызов os.Exit в пакете main запрещён"
}

func run() {
	os.Exit(1) // want "вызов os.Exit в пакете main запрещён"
}
