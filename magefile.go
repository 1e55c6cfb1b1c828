//go:build mage
// +build mage

package main

import (
	"context"
	"os"
	"os/exec"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default is the default build target.
var Default = Build

// Build builds the wait-until CLI
func Build(ctx context.Context) error {
	args := []string{"-o", "wait-until", "./cmd/wait-until"}

	if ldflags := os.Getenv("LDFLAGS"); ldflags != "" {
		args = append([]string{"-ldflags", ldflags}, args...)
	}

	if cgoEnabled := os.Getenv("CGO_ENABLED"); cgoEnabled == "0" {
		args = append([]string{"-a"}, args...)
	}

	return sh.RunV("go", append([]string{"build"}, args...)...)
}

// Clean removes any generated artifacts from the repository.
func Clean(ctx context.Context) error {
	return sh.Rm("./wait-until")
}

// Lint runs the linter & performs static-analysis checks.
func Lint(ctx context.Context) error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Test executes the unit tests of the wait-until CLI.
func Test(ctx context.Context) error {
	if report := os.Getenv("REPORT"); report != "" {
		return sh.RunV("ginkgo", "--junit-report=report.xml", "./...")
	}

	if _, err := exec.LookPath("ginkgo"); err != nil {
		return sh.RunV("go", "test", "./...")
	}

	return sh.RunV("ginkgo", "./...")
}

// IntegrationTest builds the binary and runs it against real sub-processes & a pseudo terminal.
func IntegrationTest(ctx context.Context) error {
	mg.CtxDeps(ctx, Build)

	return sh.RunV("go", "test", "-tags", "integration", "./test/...")
}
