package stylecache_test

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/stylist/css"
	"github.com/npillmayer/stylist/dom/style"
	"github.com/npillmayer/stylist/dom/style/cssom"
	"github.com/npillmayer/stylist/dom/style/stylecache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collapsed() style.Style {
	return style.New().Self(style.BorderCollapse(style.BorderCollapseCollapse))
}

func TestFetchMaterializesOnce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylist.cache")
	defer teardown()
	//
	buf := &cssom.Buffer{}
	cache := stylecache.New(buf)
	c1, err := cache.Fetch(collapsed())
	require.NoError(t, err)
	c2, err := cache.Fetch(collapsed())
	require.NoError(t, err)
	c3, err := cache.Fetch(collapsed())
	require.NoError(t, err)
	assert.Equal(t, c1, c2)
	assert.Equal(t, c1, c3)
	require.Equal(t, 1, buf.Len(), "expected exactly one append for three equal fetches")
	assert.Equal(t, "."+c1+"{border-collapse:collapse;}", buf.Blobs()[0])
	assert.True(t, strings.HasPrefix(c1, "s"))
	assert.Equal(t, stylecache.Stats{Hits: 2, Misses: 1}, cache.Stats())
	assert.Equal(t, 1, cache.Len())
}

func TestFetchIsContentAddressed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylist.cache")
	defer teardown()
	//
	buf := &cssom.Buffer{}
	cache := stylecache.New(buf)
	a := style.New().Self(style.ColorRGBA(css.RGB(0xff, 0, 0)), style.FontSizeUnit(css.Px(12)))
	b := style.New(style.NewRule(style.Self(), style.ColorRGBA(css.RGB(255, 0, 0)))).
		Rule(style.Self()).
		Self(style.FontSizeUnit(css.Px(12)))
	c := style.New().Self(style.ColorRGBA(css.RGB(0xff, 0, 0)), style.FontSizeUnit(css.Px(12)))
	ca, _ := cache.Fetch(a)
	cb, _ := cache.Fetch(b)
	cc, _ := cache.Fetch(c)
	assert.NotEqual(t, ca, cb, "different rule structure must yield different classes")
	assert.Equal(t, ca, cc)
	assert.Equal(t, 2, buf.Len())
	assert.Equal(t, "."+ca+"{color:#ff0000ff;font-size:12px;}", buf.Blobs()[0])
}

func TestFetchIsDeterministic(t *testing.T) {
	c1, err := stylecache.New(&cssom.Buffer{}).Fetch(collapsed())
	require.NoError(t, err)
	c2, err := stylecache.New(&cssom.Buffer{}).Fetch(collapsed())
	require.NoError(t, err)
	assert.Equal(t, c1, c2)
	fp := stylecache.Fingerprint(0, 0, collapsed().Canonical())
	assert.Equal(t, stylecache.ClassName(fp), c1)
	//
	c3, err := stylecache.New(&cssom.Buffer{}, stylecache.WithSeed(42)).Fetch(collapsed())
	require.NoError(t, err)
	assert.NotEqual(t, c1, c3)
}

func TestPlaceholderSubstitution(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylist.cache")
	defer teardown()
	//
	buf := &cssom.Buffer{}
	cache := stylecache.New(buf)
	st := style.New().
		Self(style.TextDecorationLine(style.TextDecorationLineNone)).
		Rule(style.Self().Hover(), style.TextDecorationLine(style.TextDecorationLineUnderline)).
		Rule(style.Self().Child().Tag("li").Class("first"), style.FontWeight(style.FontWeightBold)).
		Rule(style.Sel(style.TagComponent("nav")).Descendant().Placeholder(), style.Hyphens(style.HyphensNone))
	class, err := cache.Fetch(st)
	require.NoError(t, err)
	want := fmt.Sprintf(".%[1]s{text-decoration-line:none;}"+
		".%[1]s:hover{text-decoration-line:underline;}"+
		".%[1]s>li.first{font-weight:bold;}"+
		"nav .%[1]s{hyphens:none;}", class)
	assert.Equal(t, want, buf.Blobs()[0])
	assert.NotContains(t, buf.Blobs()[0], "&")
	// the fetched Style itself is left unresolved
	assert.True(t, strings.HasPrefix(st.String(), "&{"))
	entries := cache.Entries()
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Style.Equal(st))
	assert.Equal(t, want, entries[0].Text)
}

func TestSinkFailure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylist.cache")
	defer teardown()
	//
	failure := errors.New("presentation layer unavailable")
	fail := true
	var appended []string
	sink := cssom.SinkFunc(func(blob string) error {
		if fail {
			return failure
		}
		appended = append(appended, blob)
		return nil
	})
	cache := stylecache.New(sink)
	_, err := cache.Fetch(collapsed())
	assert.ErrorIs(t, err, stylecache.ErrSink)
	assert.ErrorIs(t, err, failure)
	assert.Equal(t, 0, cache.Len())
	_, found := cache.Lookup(collapsed())
	assert.False(t, found)
	//
	fail = false
	class, err := cache.Fetch(collapsed())
	require.NoError(t, err)
	assert.Equal(t, []string{"." + class + "{border-collapse:collapse;}"}, appended)
	assert.Equal(t, stylecache.Stats{Misses: 1, SinkErrors: 1}, cache.Stats())
}

func TestLookupHasNoSideEffects(t *testing.T) {
	buf := &cssom.Buffer{}
	cache := stylecache.New(buf)
	_, found := cache.Lookup(collapsed())
	assert.False(t, found)
	assert.Equal(t, 0, buf.Len())
	class, _ := cache.Fetch(collapsed())
	looked, found := cache.Lookup(collapsed())
	assert.True(t, found)
	assert.Equal(t, class, looked)
	assert.Equal(t, 1, buf.Len())
	assert.Equal(t, stylecache.Stats{Misses: 1}, cache.Stats())
}

func TestEntriesInAppendOrder(t *testing.T) {
	buf := &cssom.Buffer{}
	cache := stylecache.New(buf)
	var classes []string
	for _, k := range []style.WhiteSpaceKeyword{style.WhiteSpaceNormal, style.WhiteSpacePre, style.WhiteSpaceNowrap} {
		class, err := cache.Fetch(style.New().Self(style.WhiteSpace(k)))
		require.NoError(t, err)
		classes = append(classes, class)
	}
	entries := cache.Entries()
	require.Len(t, entries, 3)
	for i, e := range entries {
		assert.Equal(t, classes[i], e.Class)
		assert.Equal(t, buf.Blobs()[i], e.Text)
		assert.Equal(t, stylecache.ClassName(e.Fingerprint), e.Class)
	}
}

func TestCollisionProbing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylist.cache")
	defer teardown()
	//
	// every Style hashes to the same fingerprint on the first probe
	probeOnly := func(seed uint64, probe int, canonical []byte) uint64 {
		return uint64(probe)
	}
	buf := &cssom.Buffer{}
	cache := stylecache.New(buf, stylecache.WithHash(probeOnly))
	a := collapsed()
	b := style.New().Self(style.BorderCollapse(style.BorderCollapseSeparate))
	ca, err := cache.Fetch(a)
	require.NoError(t, err)
	cb, err := cache.Fetch(b)
	require.NoError(t, err)
	assert.Equal(t, "s0", ca)
	assert.Equal(t, "s1", cb)
	assert.Equal(t, 1, cache.Stats().Collisions)
	//
	again, err := cache.Fetch(b)
	require.NoError(t, err)
	assert.Equal(t, cb, again)
	looked, found := cache.Lookup(b)
	assert.True(t, found)
	assert.Equal(t, cb, looked)
	assert.Equal(t, 2, buf.Len())
	assert.Equal(t, ".s1{border-collapse:separate;}", buf.Blobs()[1])
}

func TestCollisionExhaustion(t *testing.T) {
	constant := func(uint64, int, []byte) uint64 { return 7 }
	buf := &cssom.Buffer{}
	cache := stylecache.New(buf, stylecache.WithHash(constant), stylecache.WithMaxProbes(3))
	_, err := cache.Fetch(collapsed())
	require.NoError(t, err)
	_, err = cache.Fetch(style.New().Self(style.BorderCollapse(style.BorderCollapseSeparate)))
	assert.ErrorIs(t, err, stylecache.ErrCollision)
	assert.Equal(t, 1, buf.Len())
	assert.Equal(t, 3, cache.Stats().Collisions)
}

func TestManyDistinctStyles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylist.cache")
	defer teardown()
	//
	r := rand.New(rand.NewPCG(7, 11))
	buf := &cssom.Buffer{}
	cache := stylecache.New(buf)
	byText := make(map[string]string) // serialized style -> class
	classes := make(map[string]string) // class -> serialized style
	for range 10000 {
		st := randomStyle(r)
		class, err := cache.Fetch(st)
		require.NoError(t, err)
		text := st.String()
		if prev, ok := byText[text]; ok {
			assert.Equal(t, prev, class)
			continue
		}
		if other, ok := classes[class]; ok {
			t.Fatalf("class %s assigned to %q and %q", class, other, text)
		}
		byText[text] = class
		classes[class] = text
	}
	assert.Equal(t, len(byText), buf.Len())
	assert.Equal(t, len(byText), cache.Len())
	assert.Equal(t, 0, cache.Stats().Collisions)
}

func randomStyle(r *rand.Rand) style.Style {
	selectors := []style.Selector{
		style.Self(),
		style.Self().Hover(),
		style.Self().Child().Tag("li"),
		style.Sel(style.TagComponent("p")).Descendant().Placeholder(),
	}
	st := style.New()
	for range 1 + r.IntN(3) {
		var props []style.Property
		for range 1 + r.IntN(3) {
			switch r.IntN(4) {
			case 0:
				props = append(props, style.FontSizeUnit(css.Px(r.IntN(200))))
			case 1:
				props = append(props, style.ColorRGBA(css.RGB(uint8(r.IntN(256)), uint8(r.IntN(256)), uint8(r.IntN(256)))))
			case 2:
				props = append(props, style.LineHeightNumber(css.MustScalar(float32(r.IntN(30))/10)))
			default:
				props = append(props, style.BorderWidthUnit(css.Em(r.IntN(10)))...)
			}
		}
		st = st.Rule(selectors[r.IntN(len(selectors))], props...)
	}
	return st
}

func TestConcurrentFetches(t *testing.T) {
	buf := &cssom.Buffer{}
	cache := stylecache.New(buf)
	styles := make([]style.Style, 10)
	for i := range styles {
		styles[i] = style.New().Self(style.TabSizeNumber(css.MustScalar(i)))
	}
	results := make([][]string, 32)
	var wg sync.WaitGroup
	for g := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, st := range styles {
				class, err := cache.Fetch(st)
				if err != nil {
					t.Error(err)
				}
				results[g] = append(results[g], class)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, len(styles), buf.Len())
	for g := range results {
		assert.Equal(t, results[0], results[g])
	}
}
