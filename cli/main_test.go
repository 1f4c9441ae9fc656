package main

import (
	"testing"

	"github.com/etrid/etrcli/internal/testcli"
)

func TestCLIVersion(t *testing.T) {
	e := testcli.NewExecutor(t)
	e.Run(t, "etrcli", "--version")
	e.CheckNextLine(t, "^etrcli$")
	e.CheckNextLine(t, "^Version: dev$")
	e.CheckNextLine(t, "^GoVersion: ")
	e.CheckEOF(t)
}
