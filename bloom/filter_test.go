package bloom_test

import (
	"fmt"
	"testing"

	"github.com/kspcapcom/kosdex/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter_AddAndTest(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	url := "https://ksp-kos.github.io/KOS/structures/vessels/vessel.html"

	assert.False(t, f.Test(url))

	f.Add(url)

	assert.True(t, f.Test(url))
	assert.False(t, f.Test("https://ksp-kos.github.io/KOS/math/basic.html"))
}

func TestFilter_AddIsIdempotent(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	url := "https://ksp-kos.github.io/KOS/language/flow.html"

	f.Add(url)
	countAfterFirst := f.EstimatedCount()

	f.Add(url)
	f.Add(url)

	assert.Equal(t, countAfterFirst, f.EstimatedCount())
	assert.True(t, f.Test(url))
}

func TestFilter_FalsePositiveRate(t *testing.T) {
	t.Parallel()

	const (
		numItems   = 10000
		fpRate     = 0.01
		testProbes = 10000
	)

	f := bloom.NewFilter(numItems, fpRate)

	for i := range numItems {
		f.Add(fmt.Sprintf("https://example.test/added/%d", i))
	}

	falsePositives := 0
	for i := range testProbes {
		if f.Test(fmt.Sprintf("https://example.test/notadded/%d", i)) {
			falsePositives++
		}
	}

	// Allow up to 2% to absorb statistical variance around the
	// configured 1% rate.
	actualRate := float64(falsePositives) / float64(testProbes)
	assert.Less(t, actualRate, 0.02, "false positive rate %f exceeds 2%%", actualRate)
}
