package main

import "github.com/soypat/dbgprint"

func main() {
	dbgprint.DebugF("ZZELIDEMARKERQQ")
	dbgprint.PrintF("\n")
}
