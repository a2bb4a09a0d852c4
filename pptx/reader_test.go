package pptx

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/tsawler/deckview/model"
)

// writeZipFile builds an in-memory zip from a name→content map.
func writeZipFile(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("creating %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing zip: %v", err)
	}
	return buf.Bytes()
}

const emptySlideXML = `<?xml version="1.0"?>
<p:sld xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"
       xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">
  <p:cSld><p:spTree/></p:cSld>
</p:sld>`

func openFixture(t *testing.T, files map[string]string) *Reader {
	t.Helper()
	r, err := OpenReader(writeZipFile(t, files))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	return r
}

func TestOpenReaderCorrupt(t *testing.T) {
	_, err := OpenReader([]byte("this is not a zip archive"))
	if err == nil {
		t.Fatal("expected error for non-zip input")
	}
}

func TestOpenReaderNoSlides(t *testing.T) {
	r := openFixture(t, map[string]string{
		"[Content_Types].xml":  "<Types/>",
		"ppt/presentation.xml": "<p:presentation/>",
	})
	if got := r.SlideCount(); got != 0 {
		t.Errorf("SlideCount = %d, want 0", got)
	}
}

func TestSlideNumericOrdering(t *testing.T) {
	r := openFixture(t, map[string]string{
		"ppt/slides/slide2.xml":  emptySlideXML,
		"ppt/slides/slide10.xml": emptySlideXML,
		"ppt/slides/slide1.xml":  emptySlideXML,
	})

	if got := r.SlideCount(); got != 3 {
		t.Fatalf("SlideCount = %d, want 3", got)
	}
	want := []string{
		"ppt/slides/slide1.xml",
		"ppt/slides/slide2.xml",
		"ppt/slides/slide10.xml",
	}
	for i, w := range want {
		if r.slideNames[i] != w {
			t.Errorf("slide %d = %s, want %s", i, r.slideNames[i], w)
		}
	}
}

func TestSlideEnumerationIgnoresNonSlideParts(t *testing.T) {
	r := openFixture(t, map[string]string{
		"ppt/slides/slide1.xml":              emptySlideXML,
		"ppt/slides/_rels/slide1.xml.rels":   "<Relationships/>",
		"ppt/slideLayouts/slideLayout1.xml":  "<layout/>",
		"ppt/slideMasters/slideMaster1.xml":  "<master/>",
		"ppt/notesSlides/notesSlide1.xml":    "<notes/>",
		"ppt/slides/slideXtra.xml":           "<bogus/>",
		"docProps/core.xml":                  "<props/>",
	})
	if got := r.SlideCount(); got != 1 {
		t.Errorf("SlideCount = %d, want 1", got)
	}
}

func TestSlideData(t *testing.T) {
	r := openFixture(t, map[string]string{
		"ppt/slides/slide1.xml": emptySlideXML,
	})
	data, err := r.SlideData(0)
	if err != nil {
		t.Fatalf("SlideData: %v", err)
	}
	if string(data) != emptySlideXML {
		t.Error("SlideData content mismatch")
	}
	if _, err := r.SlideData(1); err == nil {
		t.Error("expected out-of-range error")
	}
}

func TestNotes(t *testing.T) {
	r := openFixture(t, map[string]string{
		"ppt/slides/slide1.xml": emptySlideXML,
		"ppt/slides/_rels/slide1.xml.rels": `<?xml version="1.0"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId2"
    Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/notesSlide"
    Target="../notesSlides/notesSlide1.xml"/>
</Relationships>`,
		"ppt/notesSlides/notesSlide1.xml": `<?xml version="1.0"?>
<p:notes xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"
         xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">
  <p:cSld><p:spTree>
    <p:sp>
      <p:nvSpPr><p:nvPr><p:ph type="sldImg"/></p:nvPr></p:nvSpPr>
      <p:txBody><a:p><a:r><a:t>ignored placeholder</a:t></a:r></a:p></p:txBody>
    </p:sp>
    <p:sp>
      <p:nvSpPr><p:nvPr><p:ph type="body"/></p:nvPr></p:nvSpPr>
      <p:txBody><a:p><a:r><a:t>Remember the demo.</a:t></a:r></a:p></p:txBody>
    </p:sp>
  </p:spTree></p:cSld>
</p:notes>`,
	})

	notes, err := r.Notes(0)
	if err != nil {
		t.Fatalf("Notes: %v", err)
	}
	if notes != "Remember the demo." {
		t.Errorf("Notes = %q, want %q", notes, "Remember the demo.")
	}
}

func TestNotesAbsent(t *testing.T) {
	r := openFixture(t, map[string]string{
		"ppt/slides/slide1.xml": emptySlideXML,
	})
	notes, err := r.Notes(0)
	if err != nil {
		t.Fatalf("Notes: %v", err)
	}
	if notes != "" {
		t.Errorf("Notes = %q, want empty", notes)
	}
}

func TestMetadata(t *testing.T) {
	r := openFixture(t, map[string]string{
		"ppt/slides/slide1.xml": emptySlideXML,
		"docProps/core.xml": `<?xml version="1.0"?>
<cp:coreProperties
  xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
  xmlns:dc="http://purl.org/dc/elements/1.1/"
  xmlns:dcterms="http://purl.org/dc/terms/">
  <dc:title>Q3 Review</dc:title>
  <dc:creator>Ann Example</dc:creator>
  <cp:lastModifiedBy>Bob Example</cp:lastModifiedBy>
  <dcterms:created>2024-01-02T03:04:05Z</dcterms:created>
</cp:coreProperties>`,
	})

	md, err := r.Metadata()
	if err != nil {
		t.Fatalf("Metadata: %v", err)
	}
	if md.Title != "Q3 Review" {
		t.Errorf("Title = %q", md.Title)
	}
	if md.Creator != "Ann Example" {
		t.Errorf("Creator = %q", md.Creator)
	}
	if md.LastModifiedBy != "Bob Example" {
		t.Errorf("LastModifiedBy = %q", md.LastModifiedBy)
	}
	if md.Created != "2024-01-02T03:04:05Z" {
		t.Errorf("Created = %q", md.Created)
	}
}

func TestMetadataAbsent(t *testing.T) {
	r := openFixture(t, map[string]string{
		"ppt/slides/slide1.xml": emptySlideXML,
	})
	md, err := r.Metadata()
	if err != nil {
		t.Fatalf("Metadata: %v", err)
	}
	if md != (model.Metadata{}) {
		t.Errorf("Metadata = %+v, want zero value", md)
	}
}
