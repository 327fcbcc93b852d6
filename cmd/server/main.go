package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// грузим .env из нескольких мест: текущая папка, родительская, корень репо
	_ = godotenv.Overload(".env", "../.env", "../../.env")

	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
