//go:build mage

// Package main provides build targets for the cmyk project using Mage.
//
// Usage:
//
//	mage build      Compile the cmyk binary to bin/
//	mage test       Run all tests
//	mage cover      Run all tests with a coverage profile
//	mage lint       Run golangci-lint
//	mage clean      Remove build artifacts
//	mage install    Install cmyk to GOPATH/bin
//	mage stats      Print Go lines of code
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo        = "go"
	binLint      = "golangci-lint"
	binaryName   = "cmyk"
	binaryDir    = "bin"
	cmdDir       = "./cmd/cmyk"
	coverProfile = "coverage.out"
)

// Build compiles the cmyk binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests.
func Test() error {
	return sh.RunV(binGo, "test", "./...")
}

// Cover runs all tests and prints per-function coverage.
func Cover() error {
	if err := sh.RunV(binGo, "test", "-coverprofile="+coverProfile, "./..."); err != nil {
		return err
	}
	return sh.RunV(binGo, "tool", "cover", "-func="+coverProfile)
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV(binLint, "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	for _, p := range []string{binaryDir, coverProfile} {
		if err := os.RemoveAll(p); err != nil {
			return err
		}
	}
	return sh.RunV(binGo, "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}

// Stats prints Go lines of code, split into production and test code.
func Stats() error {
	var prodLines, testLines int

	err := filepath.Walk(".", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if path == "vendor" || path == ".git" || path == binaryDir || strings.HasPrefix(path, "_") {
				return filepath.SkipDir
			}
			return nil
		}
		// Skip magefiles; they are build tooling, not project code.
		if !strings.HasSuffix(path, ".go") || strings.HasPrefix(path, "magefiles") {
			return nil
		}
		count, countErr := countLines(path)
		if countErr != nil {
			return nil
		}
		if strings.HasSuffix(path, "_test.go") {
			testLines += count
		} else {
			prodLines += count
		}
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Printf("Lines of code (Go, production): %d\n", prodLines)
	fmt.Printf("Lines of code (Go, tests):      %d\n", testLines)
	fmt.Printf("Lines of code (Go, total):      %d\n", prodLines+testLines)
	return nil
}

func countLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	count := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		count++
	}
	return count, scanner.Err()
}
