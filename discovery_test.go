package kosdex_test

import (
	"testing"

	"github.com/kspcapcom/kosdex"
	"github.com/stretchr/testify/assert"
)

func TestKindForURL(t *testing.T) {
	t.Parallel()

	base := "https://ksp-kos.github.io/KOS/"

	tests := []struct {
		name string
		url  string
		want kosdex.PageKind
	}{
		{"vessel structure", base + "structures/vessels/vessel.html", kosdex.PageKindStructures},
		{"celestial body structure", base + "structures/celestial_bodies/body.html", kosdex.PageKindStructures},
		{"collection structure", base + "structures/collections/list.html", kosdex.PageKindStructures},
		{"gui structure", base + "structures/gui/button.html", kosdex.PageKindStructures},
		{"structures index is not a structure page", base + "structures/reference.html", kosdex.PageKindGeneral},
		{"math page", base + "math/basic.html", kosdex.PageKindMath},
		{"direction page", base + "math/direction.html", kosdex.PageKindMath},
		{"language page", base + "language/flow.html", kosdex.PageKindLanguage},
		{"commands page", base + "commands/ship.html", kosdex.PageKindCommands},
		{"bindings page", base + "bindings.html", kosdex.PageKindGeneral},
		{"bindings directory page", base + "bindings/terminal.html", kosdex.PageKindBindings},
		{"tutorial page", base + "tutorials/quickstart.html", kosdex.PageKindGeneral},
		{"home page", base + "index.html", kosdex.PageKindGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, kosdex.KindForURL(tt.url))
		})
	}
}
