package uploads

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestSanitizeFilenameProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("idempotent", prop.ForAll(
		func(name string) bool {
			once := SanitizeFilename(name)
			return SanitizeFilename(once) == once
		},
		gen.AnyString(),
	))

	properties.Property("output only contains allowed characters", prop.ForAll(
		func(name string) bool {
			for _, r := range SanitizeFilename(name) {
				switch {
				case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
					r == '.', r == '_', r == '-':
				default:
					return false
				}
			}
			return true
		},
		gen.AnyString(),
	))

	properties.Property("rune count is preserved", prop.ForAll(
		func(name string) bool {
			in := []rune(name)
			out := []rune(SanitizeFilename(name))
			return len(in) == len(out)
		},
		gen.AnyString(),
	))

	properties.Property("never produces a path separator", prop.ForAll(
		func(name string) bool {
			out := SanitizeFilename(name)
			for _, r := range out {
				if r == '/' || r == '\\' {
					return false
				}
			}
			return true
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
