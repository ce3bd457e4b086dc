package converter_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frherrer/atomic-docgen/internal/converter"
	"github.com/frherrer/atomic-docgen/internal/domain"
)

var _ = Describe("Converter", func() {
	Describe("FenceLang", func() {
		It("should map known executors to their fence tags", func() {
			Expect(converter.FenceLang("powershell")).To(Equal("powershell"))
			Expect(converter.FenceLang("pwsh")).To(Equal("powershell"))
			Expect(converter.FenceLang("command_prompt")).To(Equal("cmd"))
			Expect(converter.FenceLang("cmd")).To(Equal("cmd"))
			Expect(converter.FenceLang("bash")).To(Equal("bash"))
			Expect(converter.FenceLang("sh")).To(Equal("sh"))
		})

		It("should map the manual executor to an untagged fence", func() {
			Expect(converter.FenceLang("manual")).To(Equal(""))
		})

		It("should fall back to text for unknown executors", func() {
			Expect(converter.FenceLang("cobolscript")).To(Equal("text"))
			Expect(converter.FenceLang("")).To(Equal("text"))
		})

		It("should ignore case and surrounding whitespace", func() {
			Expect(converter.FenceLang("  PowerShell ")).To(Equal("powershell"))
		})
	})

	Describe("Substitute", func() {
		args := []domain.InputArgument{
			{Name: "file", Default: `C:\temp\x.exe`},
			{Name: "port", Default: "8080"},
		}

		It("should replace placeholders with argument defaults", func() {
			Expect(converter.Substitute("Run #{file}", args)).To(Equal(`Run C:\temp\x.exe`))
		})

		It("should replace every occurrence", func() {
			out := converter.Substitute("start #{port}; stop #{port}", args)
			Expect(out).To(Equal("start 8080; stop 8080"))
		})

		It("should leave unknown placeholders untouched", func() {
			Expect(converter.Substitute("Run #{missing}", args)).To(Equal("Run #{missing}"))
		})

		It("should not resolve placeholders recursively", func() {
			nested := []domain.InputArgument{
				{Name: "outer", Default: "#{inner}"},
				{Name: "inner", Default: "surprise"},
			}
			Expect(converter.Substitute("echo #{outer}", nested)).To(Equal("echo #{inner}"))
		})

		It("should pass text through when no arguments are declared", func() {
			Expect(converter.Substitute("Run #{file}", nil)).To(Equal("Run #{file}"))
		})
	})

	Describe("Convert", func() {
		It("should normalize tests into render-ready views", func() {
			tech := &domain.Technique{
				ID:          "T1234",
				DisplayName: "Demo",
				Tests: []domain.Test{
					{
						Name:               "first",
						SupportedPlatforms: []string{"windows"},
						InputArguments: []domain.InputArgument{
							{Name: "path", Default: `C:\x`},
						},
						Executor: domain.Executor{
							Name:           "command_prompt",
							Command:        "del #{path}",
							CleanupCommand: "copy nul #{path}",
						},
					},
					{
						Name:     "second",
						Executor: domain.Executor{Name: "sh", Command: "ls"},
					},
				},
			}

			views := converter.Convert(tech)
			Expect(views).To(HaveLen(2))

			Expect(views[0].Ordinal).To(Equal(1))
			Expect(views[0].FenceLang).To(Equal("cmd"))
			Expect(views[0].Command).To(Equal(`del C:\x`))
			Expect(views[0].CleanupCommand).To(Equal(`copy nul C:\x`))
			Expect(views[0].HasCleanup).To(BeTrue())
			// The inputs table keeps the raw default, untouched by substitution.
			Expect(views[0].Inputs[0].Default).To(Equal(`C:\x`))

			Expect(views[1].Ordinal).To(Equal(2))
			Expect(views[1].HasCleanup).To(BeFalse())
			Expect(views[1].SupportedPlatforms).To(BeEmpty())
			Expect(views[1].Inputs).To(BeEmpty())
		})

		It("should name an unnamed test by its ordinal", func() {
			tech := &domain.Technique{
				ID:          "T1234",
				DisplayName: "Demo",
				Tests:       []domain.Test{{Executor: domain.Executor{Name: "sh"}}},
			}
			views := converter.Convert(tech)
			Expect(views[0].Name).To(Equal("Atomic Test #1"))
		})

		It("should keep a missing command as an empty string", func() {
			tech := &domain.Technique{
				ID:          "T1234",
				DisplayName: "Demo",
				Tests:       []domain.Test{{Name: "no command", Executor: domain.Executor{Name: "manual"}}},
			}
			views := converter.Convert(tech)
			Expect(views[0].Command).To(Equal(""))
			Expect(views[0].FenceLang).To(Equal(""))
		})
	})
})
