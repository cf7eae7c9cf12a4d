package notify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestPushEncodesTitleAndBody(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		gotQuery = r.URL.RawQuery
	}))
	defer srv.Close()

	b := &Bark{BaseURL: srv.URL + "/", HTTPClient: srv.Client()}
	if err := b.Push(context.Background(), "EPUB转换完成", "书籍《测试/样本》已生成"); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if !strings.Contains(gotPath, "%E8%BD%AC%E6%8D%A2") { // 转换
		t.Fatalf("title not path-escaped: %s", gotPath)
	}
	if strings.Contains(gotPath[1:], "//") {
		t.Fatalf("unescaped slash in body segment: %s", gotPath)
	}
	if !strings.Contains(gotQuery, "group=txt2epub") {
		t.Fatalf("query = %s", gotQuery)
	}
}

func TestPushDisabledWithoutBaseURL(t *testing.T) {
	var b *Bark
	if b.Enabled() {
		t.Fatalf("nil client reports enabled")
	}
	if err := (&Bark{}).Push(context.Background(), "t", "b"); err != nil {
		t.Fatalf("disabled push errored: %v", err)
	}
}

func TestPushReportsServerErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	b := &Bark{BaseURL: srv.URL, HTTPClient: srv.Client()}
	if err := b.Push(context.Background(), "t", "b"); err == nil {
		t.Fatalf("expected error on 502")
	}
}
