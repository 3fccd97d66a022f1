package trafilatura_test

import (
	"testing"

	"github.com/kspcapcom/kosdex"
	"github.com/kspcapcom/kosdex/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements kosdex.Extractor at compile time.
var _ kosdex.Extractor = (*trafilatura.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title from meta tags", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Vessel — kOS documentation</title>
<meta property="og:title" content="Vessel Structure">
</head>
<body>
<nav>Navigation here</nav>
<main>
<h1>Vessel</h1>
<p>All vessels share a structure that exposes their flight state.</p>
</main>
<footer>Footer content</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.NotEmpty(t, result.Title)
	})

	t.Run("extracts main content including code", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav><a href="/">Home</a><a href="/KOS/">Docs</a></nav>
<article>
<h1>Locks</h1>
<p>A lock binds an expression to an identifier so it is re-evaluated continuously.</p>
<pre><code>LOCK STEERING TO PROGRADE.</code></pre>
</article>
<aside>Sidebar content</aside>
<footer>Copyright 2024</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "re-evaluated continuously")
		assert.Contains(t, result.ContentHTML, "LOCK STEERING TO PROGRADE.")
	})

	t.Run("removes navigation boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav class="main-nav">
<ul>
<li><a href="/">Home</a></li>
<li><a href="/KOS/index.html">Index</a></li>
<li><a href="/KOS/contents.html">Contents</a></li>
</ul>
</nav>
<main>
<h1>Orbit</h1>
<p>This paragraph contains the actual content we want.</p>
</main>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "actual content we want")
		assert.NotContains(t, result.ContentHTML, "main-nav")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		_, err := ext.Extract("")

		require.Error(t, err)
		assert.Equal(t, kosdex.EINVALID, kosdex.ErrorCode(err))
	})
}
