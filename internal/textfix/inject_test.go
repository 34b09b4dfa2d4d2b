package textfix

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testInjector() DeclarationInject {
	return DeclarationInject{
		Line:       "using AiDotNet.Interpretability;",
		Introducer: "using ",
		Terminator: ";",
	}
}

func TestDeclarationInject(t *testing.T) {
	fix := testInjector()

	t.Run("Inserts After Last Declaration", func(t *testing.T) {
		in := "using System;\n" +
			"using System.Linq;\n" +
			"\n" +
			"namespace X {}\n"
		out, changed := fix.Apply(in)
		assert.True(t, changed)
		assert.Equal(t, "using System;\n"+
			"using System.Linq;\n"+
			"using AiDotNet.Interpretability;\n"+
			"\n"+
			"namespace X {}\n", out)
	})

	t.Run("Present Line Is A No-Op", func(t *testing.T) {
		in := "using AiDotNet.Interpretability;\nnamespace X {}\n"
		out, changed := fix.Apply(in)
		assert.False(t, changed)
		assert.Equal(t, in, out)
	})

	t.Run("Idempotent Across Two Runs", func(t *testing.T) {
		in := "using System;\nnamespace X {}\n"
		once, changed := fix.Apply(in)
		assert.True(t, changed)
		twice, changedAgain := fix.Apply(once)
		assert.False(t, changedAgain)
		assert.Equal(t, 1, strings.Count(twice, fix.Line))
	})

	t.Run("Fallback Inserts As First Line", func(t *testing.T) {
		in := "namespace X {}\n"
		out, changed := fix.Apply(in)
		assert.True(t, changed)
		assert.Equal(t, "using AiDotNet.Interpretability;\nnamespace X {}\n", out)
	})

	t.Run("Fallback On Empty Document", func(t *testing.T) {
		out, changed := fix.Apply("")
		assert.True(t, changed)
		assert.Equal(t, "using AiDotNet.Interpretability;\n", out)
	})

	t.Run("Anchor Without Trailing Newline", func(t *testing.T) {
		in := "using System;"
		out, changed := fix.Apply(in)
		assert.True(t, changed)
		assert.Equal(t, "using System;\nusing AiDotNet.Interpretability;\n", out)
	})

	t.Run("Indented Declaration Is Still An Anchor", func(t *testing.T) {
		in := "    using System;\nclass Y {}\n"
		out, changed := fix.Apply(in)
		assert.True(t, changed)
		assert.Equal(t, "    using System;\nusing AiDotNet.Interpretability;\nclass Y {}\n", out)
	})
}
