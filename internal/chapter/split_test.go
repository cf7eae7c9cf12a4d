package chapter

import (
	"reflect"
	"strings"
	"testing"
)

func mustSplit(t *testing.T, doc string, cfg Config) []Chapter {
	t.Helper()
	chs, err := Split(doc, cfg)
	if err != nil {
		t.Fatalf("Split error: %v", err)
	}
	return chs
}

func titles(chs []Chapter) []string {
	out := make([]string, len(chs))
	for i, c := range chs {
		out[i] = c.Title
	}
	return out
}

func TestSplitPatternHeadings(t *testing.T) {
	doc := "第一章 故事开始\n内容...\n\n\n第二章 情节发展\n内容..."
	chs := mustSplit(t, doc, Config{Method: MethodAuto, EnableDoubleEmptyLine: true})

	want := []string{"第一章 故事开始", "第二章 情节发展"}
	if !reflect.DeepEqual(titles(chs), want) {
		t.Fatalf("titles = %v, want %v", titles(chs), want)
	}
	for i, c := range chs {
		if c.Index != i+1 {
			t.Fatalf("chapter %d has index %d", i, c.Index)
		}
		if !reflect.DeepEqual(c.Paragraphs, []string{"内容..."}) {
			t.Fatalf("chapter %d paragraphs = %v", i, c.Paragraphs)
		}
		if c.Ordinal != i+1 {
			t.Fatalf("chapter %d ordinal = %d", i, c.Ordinal)
		}
	}
}

func TestSplitMarkerInjection(t *testing.T) {
	doc := "第一章 故事开始\n内容...\n\n\n第二章 情节发展\n内容..."
	cfg := Config{Method: MethodAuto, EnableDoubleEmptyLine: true, EnableMarker: true, Marker: "#"}
	chs := mustSplit(t, doc, cfg)

	want := []string{"#第一章 故事开始", "#第二章 情节发展"}
	if !reflect.DeepEqual(titles(chs), want) {
		t.Fatalf("titles = %v, want %v", titles(chs), want)
	}
}

func TestSplitMarkerIdempotent(t *testing.T) {
	cfg := Config{EnableMarker: true, Marker: "#"}
	once := applyMarker("第一章 故事开始", cfg)
	twice := applyMarker(once, cfg)
	if once != twice {
		t.Fatalf("marker not idempotent: %q vs %q", once, twice)
	}

	// A heading that already carries the marker (it matched the marker
	// rule) must not be prefixed again.
	doc := "#第一章 故事开始\n内容..."
	chs := mustSplit(t, doc, cfg)
	if chs[0].Title != "#第一章 故事开始" {
		t.Fatalf("title = %q, want unchanged", chs[0].Title)
	}
}

func TestSplitMarkerAppliesToFallbackTitles(t *testing.T) {
	doc := "故事开始\n内容...\n\n\n情节发展\n内容..."
	cfg := Config{Method: MethodDoubleEmptyLineOnly, EnableMarker: true, Marker: "@"}
	chs := mustSplit(t, doc, cfg)
	for _, c := range chs {
		if !strings.HasPrefix(c.Title, "@Chapter ") {
			t.Fatalf("fallback title %q not marker-prefixed", c.Title)
		}
	}
}

func TestSplitNoHeadingsSingleChapter(t *testing.T) {
	doc := "无章节标题的小说内容，直接开始讲述故事，行文连绵不绝。"
	chs := mustSplit(t, doc, Config{Method: MethodAuto, EnableDoubleEmptyLine: true})
	if len(chs) != 1 {
		t.Fatalf("got %d chapters, want 1", len(chs))
	}
	c := chs[0]
	if c.Index != 1 {
		t.Fatalf("index = %d", c.Index)
	}
	want := "Chapter 1 - " + string([]rune(doc)[:10]) + "…"
	if c.Title != want {
		t.Fatalf("title = %q, want %q", c.Title, want)
	}
	// The unrecognized first line stays in the body.
	if len(c.Paragraphs) != 1 || c.Paragraphs[0] != doc {
		t.Fatalf("paragraphs = %v", c.Paragraphs)
	}
}

func TestSplitDoubleEmptyLineOnly(t *testing.T) {
	doc := "故事开始\n内容...\n\n\n情节发展\n内容..."
	chs := mustSplit(t, doc, Config{Method: MethodDoubleEmptyLineOnly})
	if len(chs) != 2 {
		t.Fatalf("got %d chapters, want 2", len(chs))
	}
	if !strings.HasPrefix(chs[0].Title, "Chapter 1 - 故事开始") {
		t.Fatalf("title = %q", chs[0].Title)
	}
	if !strings.HasPrefix(chs[1].Title, "Chapter 2 - 情节发展") {
		t.Fatalf("title = %q", chs[1].Title)
	}
	// First line is not a recognized heading, so it remains in the body.
	if chs[0].Paragraphs[0] != "故事开始\n内容..." {
		t.Fatalf("paragraphs = %v", chs[0].Paragraphs)
	}
}

func TestSplitFallbackPreviewTruncation(t *testing.T) {
	long := "这是一个很长很长的段落内容没有标题"
	chs := mustSplit(t, long, Config{})
	wantPreview := string([]rune(long)[:10])
	if chs[0].Title != "Chapter 1 - "+wantPreview+"…" {
		t.Fatalf("title = %q", chs[0].Title)
	}

	short := "短段落"
	chs = mustSplit(t, short, Config{})
	if chs[0].Title != "Chapter 1 - 短段落" {
		t.Fatalf("title = %q", chs[0].Title)
	}
}

func TestSplitAutoMergesDistantBlankBoundaries(t *testing.T) {
	doc := strings.Join([]string{
		"第一章 开端",
		"第一章的内容。",
		"",
		"",
		"没有标题的后续段落。",
		"更多内容。",
	}, "\n")
	chs := mustSplit(t, doc, Config{Method: MethodAuto, EnableDoubleEmptyLine: true})
	if len(chs) != 2 {
		t.Fatalf("got %d chapters, want 2: %v", len(chs), titles(chs))
	}
	if chs[0].Title != "第一章 开端" {
		t.Fatalf("title = %q", chs[0].Title)
	}
	if !strings.HasPrefix(chs[1].Title, "Chapter 2 - ") {
		t.Fatalf("title = %q", chs[1].Title)
	}
}

func TestSplitBlankBoundaryAdjacentToPatternDiscarded(t *testing.T) {
	// The blank-line candidate lands on the same line as the pattern
	// boundary; the pattern wins and no duplicate chapter appears.
	doc := "第一章 开端\n内容。\n\n\n第二章 发展\n内容。"
	chs := mustSplit(t, doc, Config{Method: MethodAuto, EnableDoubleEmptyLine: true})
	if len(chs) != 2 {
		t.Fatalf("got %d chapters, want 2: %v", len(chs), titles(chs))
	}
}

func TestSplitPatternOnlyIgnoresBlankGaps(t *testing.T) {
	doc := "故事开始\n内容...\n\n\n情节发展\n内容..."
	chs := mustSplit(t, doc, Config{Method: MethodPatternOnly})
	if len(chs) != 1 {
		t.Fatalf("got %d chapters, want 1", len(chs))
	}
}

func TestSplitPreambleBeforeFirstHeading(t *testing.T) {
	doc := "简介：一个关于开始的故事。\n\n第一章 启程\n正文内容。"
	chs := mustSplit(t, doc, Config{Method: MethodPatternOnly})
	if len(chs) != 2 {
		t.Fatalf("got %d chapters, want 2: %v", len(chs), titles(chs))
	}
	if !strings.HasPrefix(chs[0].Title, "Chapter 1 - ") {
		t.Fatalf("preamble title = %q", chs[0].Title)
	}
	if chs[1].Title != "第一章 启程" || chs[1].Index != 2 {
		t.Fatalf("chapter = %+v", chs[1])
	}
}

func TestSplitEmptyChapterIsValid(t *testing.T) {
	doc := "第一章 空章\n第二章 正文\n这里有内容。"
	chs := mustSplit(t, doc, Config{Method: MethodPatternOnly})
	if len(chs) != 2 {
		t.Fatalf("got %d chapters, want 2", len(chs))
	}
	if len(chs[0].Paragraphs) != 0 {
		t.Fatalf("empty chapter has paragraphs: %v", chs[0].Paragraphs)
	}
}

func TestSplitEmptyInput(t *testing.T) {
	for _, doc := range []string{"", "   \n\n  \n"} {
		chs, err := Split(doc, Config{})
		if err != nil {
			t.Fatalf("Split(%q) error: %v", doc, err)
		}
		if len(chs) != 0 {
			t.Fatalf("Split(%q) = %d chapters, want 0", doc, len(chs))
		}
	}
}

func TestSplitDeterministic(t *testing.T) {
	doc := "第一章 开端\n内容。\n\n\n插叙段落。\n\n\n第二章 发展\n内容。"
	cfg := Config{Method: MethodAuto, EnableDoubleEmptyLine: true, EnableMarker: true, Marker: "##"}
	first := mustSplit(t, doc, cfg)
	for i := 0; i < 5; i++ {
		if got := mustSplit(t, doc, cfg); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs: %v vs %v", i, got, first)
		}
	}
}

func TestSplitNoDuplicateTitleInBody(t *testing.T) {
	docs := []string{
		"第一章 故事开始\n内容...\n\n\n第二章 情节发展\n内容...",
		"#序章\n开场白。\n\n\n正文第一段。",
		"故事开始\n内容...\n\n\n情节发展\n内容...",
	}
	for _, doc := range docs {
		chs := mustSplit(t, doc, Config{Method: MethodAuto, EnableDoubleEmptyLine: true})
		for _, c := range chs {
			if len(c.Paragraphs) == 0 {
				continue
			}
			firstLine := strings.SplitN(c.Paragraphs[0], "\n", 2)[0]
			if firstLine == c.Title {
				t.Fatalf("title %q duplicated as first body line", c.Title)
			}
		}
	}
}

func TestSplitBoundaryOrdering(t *testing.T) {
	doc := "第一章 甲\n一\n\n\n插入段。\n\n\n第二章 乙\n二\n\n\n第三章 丙\n三"
	chs := mustSplit(t, doc, Config{Method: MethodAuto, EnableDoubleEmptyLine: true})
	for i, c := range chs {
		if c.Index != i+1 {
			t.Fatalf("index sequence broken at %d: %+v", i, c)
		}
	}
}

func TestSplitConfigValidation(t *testing.T) {
	if _, err := Split("文本", Config{EnableMarker: true}); err == nil {
		t.Fatalf("expected error for empty marker")
	}
	if _, err := Split("文本", Config{Method: "bogus"}); err == nil {
		t.Fatalf("expected error for unknown method")
	}
}

func TestConfigZeroValueIsAuto(t *testing.T) {
	if got := (Config{}).method(); got != MethodAuto {
		t.Fatalf("zero-value method = %q", got)
	}
}
