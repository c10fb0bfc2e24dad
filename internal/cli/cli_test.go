package cli

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mesh-intelligence/cmyk/pkg/cmyk"
)

var _ = Describe("cmyk command", func() {
	var configDir string

	// cmd runs the command against an isolated configuration directory.
	cmd := func(args ...string) result {
		return run(append([]string{"--config-dir", configDir}, args...)...)
	}

	BeforeEach(func() {
		dir, err := os.MkdirTemp("", "cmyk-cli-")
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(os.RemoveAll, dir)
		configDir = filepath.Join(dir, "config")
	})

	Describe("new", func() {
		It("constructs a color from percentages", func() {
			r := cmd("new", "20%", "40%", "60%", "70%")
			Expect(r.err).NotTo(HaveOccurred())
			Expect(r.stdout).To(Equal("cmyk(20%,40%,60%,70%)\n"))
			Expect(r.code).To(Equal(exitSuccess))
		})

		It("reads bare numbers as fractions", func() {
			r := cmd("new", "0.2", "0.4", "0", "1")
			Expect(r.err).NotTo(HaveOccurred())
			Expect(r.stdout).To(Equal("cmyk(20%,40%,0%,100%)\n"))
		})

		It("rejects non-whole percentages", func() {
			r := cmd("new", "12.5%", "0", "0", "0")
			Expect(r.err).To(MatchError(cmyk.ErrValidation))
			Expect(r.code).To(Equal(exitUserError))
			Expect(r.stdout).To(BeEmpty())
		})

		It("rejects text that is not a number", func() {
			r := cmd("new", "cyan", "0", "0", "0")
			Expect(r.err).To(MatchError(cmyk.ErrValidation))
		})

		It("requires four arguments", func() {
			r := cmd("new", "10%", "20%", "30%")
			Expect(r.err).To(HaveOccurred())
			Expect(r.code).To(Equal(exitUserError))
		})
	})

	Describe("mix", func() {
		It("saturates and normalizes", func() {
			r := cmd("mix", "cmyk(75%,50%,0%,0%)", "cmyk(30%,0%,20%,0%)")
			Expect(r.err).NotTo(HaveOccurred())
			Expect(r.stdout).To(Equal("cmyk(80%,30%,0%,20%)\n"))
		})

		It("requires two colors", func() {
			r := cmd("mix", "cmyk(75%,50%,0%,0%)", "10%")
			Expect(r.err).To(MatchError(cmyk.ErrValidation))
			Expect(r.code).To(Equal(exitUserError))
		})
	})

	Describe("scale", func() {
		It("scales by a percentage", func() {
			r := cmd("scale", "cmyk(20%,40%,60%,70%)", "50%")
			Expect(r.err).NotTo(HaveOccurred())
			Expect(r.stdout).To(Equal("cmyk(0%,10%,20%,45%)\n"))
		})

		It("refuses to push a component over 100%", func() {
			r := cmd("scale", "cmyk(20%,40%,60%,70%)", "150%")
			Expect(r.err).To(MatchError(cmyk.ErrRange))
			Expect(r.code).To(Equal(exitUserError))
		})

		It("requires a percentage", func() {
			r := cmd("scale", "cmyk(20%,40%,60%,70%)", "0.5")
			Expect(r.err).To(MatchError(cmyk.ErrValidation))
		})
	})

	Describe("normalize", func() {
		It("moves the gray component into black", func() {
			r := cmd("normalize", "cmyk(20%,40%,60%,70%)")
			Expect(r.err).NotTo(HaveOccurred())
			Expect(r.stdout).To(Equal("cmyk(0%,20%,40%,90%)\n"))
		})

		It("rejects malformed colors", func() {
			r := cmd("normalize", "cmyk(20%, 40%, 60%, 70%)")
			Expect(r.err).To(MatchError(cmyk.ErrValidation))
		})
	})

	Describe("call", func() {
		It("dispatches by function name", func() {
			r := cmd("call", "cmyk-mix", "cmyk(25%,50%,0%,0%)", "cmyk(10%,10%,0%,0%)")
			Expect(r.err).NotTo(HaveOccurred())
			Expect(r.stdout).To(Equal("cmyk(35%,60%,0%,0%)\n"))
		})

		It("rejects unknown functions", func() {
			r := cmd("call", "cmyk_minus", "cmyk(25%,50%,0%,0%)", "cmyk(10%,10%,0%,0%)")
			Expect(r.err).To(MatchError(cmyk.ErrValidation))
			Expect(r.code).To(Equal(exitUserError))
		})

		It("checks arity", func() {
			r := cmd("call", "cmyk", "10%")
			Expect(r.err).To(MatchError(ContainSubstring("takes 4 arguments")))
		})
	})

	It("lists the declared functions", func() {
		r := cmd("functions")
		Expect(r.err).NotTo(HaveOccurred())
		Expect(r.stdout).To(Equal("cmyk($cyan, $magenta, $yellow, $black)\n" +
			"cmyk_mix($cmyk1, $cmyk2)\n" +
			"cmyk_scale($cmyk, $percent)\n"))
	})

	Describe("output formats", func() {
		It("writes JSON", func() {
			r := cmd("--output", "json", "new", "20%", "40%", "60%", "70%")
			Expect(r.err).NotTo(HaveOccurred())

			var got struct {
				Value      string         `json:"value"`
				Components map[string]int `json:"components"`
			}
			Expect(json.Unmarshal([]byte(r.stdout), &got)).To(Succeed())
			Expect(got.Value).To(Equal("cmyk(20%,40%,60%,70%)"))
			Expect(got.Components).To(Equal(map[string]int{"cyan": 20, "magenta": 40, "yellow": 60, "black": 70}))
		})

		It("writes YAML", func() {
			r := cmd("-o", "yaml", "normalize", "cmyk(20%,40%,60%,70%)")
			Expect(r.err).NotTo(HaveOccurred())
			Expect(r.stdout).To(ContainSubstring("value: cmyk(0%,20%,40%,90%)\n"))
			Expect(r.stdout).To(ContainSubstring("black: 90"))
		})

		It("rejects unknown formats", func() {
			r := cmd("-o", "xml", "normalize", "cmyk(20%,40%,60%,70%)")
			Expect(r.err).To(MatchError(ContainSubstring("unknown output format")))
			Expect(r.code).To(Equal(exitUserError))
		})
	})

	Describe("configuration", func() {
		It("writes a default config once", func() {
			r := cmd("init")
			Expect(r.err).NotTo(HaveOccurred())
			Expect(r.stdout).To(HavePrefix("Wrote "))

			data, err := os.ReadFile(filepath.Join(configDir, "config.yaml"))
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(Equal("output: text\nverbose: false\n"))

			r = cmd("init")
			Expect(r.err).NotTo(HaveOccurred())
			Expect(r.stdout).To(HavePrefix("Config already exists: "))
		})

		It("uses the output format from config.yaml", func() {
			Expect(os.MkdirAll(configDir, 0o755)).To(Succeed())
			Expect(os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte("output: yaml\n"), 0o644)).To(Succeed())

			r := cmd("new", "1%", "2%", "3%", "4%")
			Expect(r.err).NotTo(HaveOccurred())
			Expect(r.stdout).To(ContainSubstring("value: cmyk(1%,2%,3%,4%)"))

			r = cmd("--output", "text", "new", "1%", "2%", "3%", "4%")
			Expect(r.stdout).To(Equal("cmyk(1%,2%,3%,4%)\n"), "flags override the config file")
		})

		It("reports an unreadable config as a system error", func() {
			Expect(os.MkdirAll(configDir, 0o755)).To(Succeed())
			Expect(os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte("output: [\n"), 0o644)).To(Succeed())

			r := cmd("new", "1%", "2%", "3%", "4%")
			Expect(r.err).To(HaveOccurred())
			Expect(r.code).To(Equal(exitSysError))
		})
	})

	It("logs calls when verbose", func() {
		r := cmd("--verbose", "mix", "cmyk(75%,50%,0%,0%)", "cmyk(30%,0%,20%,0%)")
		Expect(r.err).NotTo(HaveOccurred())
		Expect(r.stderr).To(ContainSubstring("cmyk_mix"))
		Expect(r.stderr).To(ContainSubstring("cmyk(80%,30%,0%,20%)"))
	})

	It("stays quiet by default", func() {
		r := cmd("mix", "cmyk(75%,50%,0%,0%)", "cmyk(30%,0%,20%,0%)")
		Expect(r.err).NotTo(HaveOccurred())
		Expect(r.stderr).To(BeEmpty())
	})

	It("prints the version", func() {
		r := cmd("version")
		Expect(r.err).NotTo(HaveOccurred())
		Expect(r.stdout).To(Equal("cmyk v" + Version + "\nmodule: github.com/mesh-intelligence/cmyk\n"))
	})
})

var _ = Describe("exitCode", func() {
	It("maps errors to exit codes", func() {
		Expect(exitCode(nil)).To(Equal(exitSuccess))
		Expect(exitCode(cmyk.ErrRange)).To(Equal(exitUserError))
		Expect(exitCode(errors.New("unknown flag"))).To(Equal(exitUserError))
		Expect(exitCode(sysError(errors.New("disk full")))).To(Equal(exitSysError))
	})
})
