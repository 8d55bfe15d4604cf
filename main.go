package main

import (
	"github.com/learnhub/course-backend/server"
)

func main() {
	server.Init()
}
