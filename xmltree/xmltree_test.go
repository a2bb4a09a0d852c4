package xmltree

import (
	"testing"
)

const nsA = "http://schemas.openxmlformats.org/drawingml/2006/main"
const nsP = "http://schemas.openxmlformats.org/presentationml/2006/main"

func parse(t *testing.T, doc string) *Node {
	t.Helper()
	root, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return root
}

func TestParseBasicTree(t *testing.T) {
	root := parse(t, `<?xml version="1.0"?>
<p:sld xmlns:p="`+nsP+`" xmlns:a="`+nsA+`">
  <p:cSld><p:spTree><p:sp><a:t>hello</a:t></p:sp></p:spTree></p:cSld>
</p:sld>`)

	if root.Name.Local != "sld" || root.Name.Space != nsP {
		t.Errorf("root = %v, want {%s sld}", root.Name, nsP)
	}
	sp := root.FindFirst(nsP, "sp")
	if sp == nil {
		t.Fatal("sp not found")
	}
	if got := sp.InnerText(); got != "hello" {
		t.Errorf("InnerText = %q, want %q", got, "hello")
	}
}

func TestFindFirstQualifiedBeatsLocal(t *testing.T) {
	// Same local name in two namespaces; the qualified match must win
	// even though the foreign-namespace element comes first in document
	// order.
	root := parse(t, `<root xmlns:x="urn:other" xmlns:a="`+nsA+`">
  <x:t>wrong</x:t>
  <a:t>right</a:t>
</root>`)

	got := root.FindFirst(nsA, "t")
	if got == nil {
		t.Fatal("t not found")
	}
	if got.InnerText() != "right" {
		t.Errorf("qualified lookup returned %q, want %q", got.InnerText(), "right")
	}
}

func TestFindFirstLocalFallback(t *testing.T) {
	root := parse(t, `<root><t>unqualified</t></root>`)

	got := root.FindFirst(nsA, "t")
	if got == nil {
		t.Fatal("local-name fallback did not match")
	}
	if got.InnerText() != "unqualified" {
		t.Errorf("got %q, want %q", got.InnerText(), "unqualified")
	}
}

func TestFindAllNoDoubleCounting(t *testing.T) {
	// Two qualified matches and one unqualified; FindAll must return
	// exactly the two qualified ones, never mixing tiers.
	root := parse(t, `<root xmlns:a="`+nsA+`">
  <a:t>one</a:t>
  <t>loose</t>
  <a:t>two</a:t>
</root>`)

	got := root.FindAll(nsA, "t")
	if len(got) != 2 {
		t.Fatalf("got %d matches, want 2", len(got))
	}
	if got[0].InnerText() != "one" || got[1].InnerText() != "two" {
		t.Errorf("got %q, %q; want one, two", got[0].InnerText(), got[1].InnerText())
	}
}

func TestFindAllFallsBackWhenNoQualifiedMatch(t *testing.T) {
	root := parse(t, `<root><t>a</t><t>b</t></root>`)
	got := root.FindAll(nsA, "t")
	if len(got) != 2 {
		t.Fatalf("got %d matches, want 2", len(got))
	}
}

func TestFindChildrenDirectOnly(t *testing.T) {
	root := parse(t, `<root xmlns:a="`+nsA+`">
  <a:p>direct</a:p>
  <a:grp><a:p>nested</a:p></a:grp>
</root>`)

	got := root.FindChildren(nsA, "p")
	if len(got) != 1 {
		t.Fatalf("got %d direct children, want 1", len(got))
	}
	if got[0].InnerText() != "direct" {
		t.Errorf("got %q, want %q", got[0].InnerText(), "direct")
	}
}

func TestAttrIgnoresNamespace(t *testing.T) {
	root := parse(t, `<root xmlns:r="urn:rel" r:id="rId2" algn="ctr"/>`)

	if got := root.Attr("id"); got != "rId2" {
		t.Errorf("Attr(id) = %q, want rId2", got)
	}
	if got := root.Attr("algn"); got != "ctr" {
		t.Errorf("Attr(algn) = %q, want ctr", got)
	}
	if got := root.Attr("missing"); got != "" {
		t.Errorf("Attr(missing) = %q, want empty", got)
	}
}

func TestInnerTextDocumentOrder(t *testing.T) {
	root := parse(t, `<p><r><t>Test </t></r><r><t>PPT </t></r><r><t>Title</t></r></p>`)
	if got := root.InnerText(); got != "Test PPT Title" {
		t.Errorf("InnerText = %q, want %q", got, "Test PPT Title")
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse([]byte(`<a><b></a>`)); err == nil {
		t.Error("mismatched tags should fail")
	}
	if _, err := Parse([]byte(``)); err == nil {
		t.Error("empty document should fail")
	}
	if _, err := Parse([]byte(`not xml`)); err == nil {
		t.Error("non-xml should fail")
	}
}
