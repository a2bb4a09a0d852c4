// Package pptx reads OOXML presentation containers and extracts slide
// content into the document model.
package pptx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/tsawler/deckview/model"
	"github.com/tsawler/deckview/xmltree"
)

// Limits on container reads. Presentation parts are small; anything
// past these ceilings is a hostile or broken archive.
const (
	maxPartSize = 50 << 20
	maxParts    = 10000
)

const (
	nsDrawingML       = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsPresentationML  = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsRelationships   = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsDublinCore      = "http://purl.org/dc/elements/1.1/"
	nsDublinCoreTerms = "http://purl.org/dc/terms/"
	nsCoreProps       = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
)

var slidePartRe = regexp.MustCompile(`(?i)^ppt/slides/slide(\d+)\.xml$`)

// Reader provides access to the parts of a presentation container.
type Reader struct {
	zr    *zip.Reader
	parts map[string]*zip.File

	// slideNames holds the slide part names sorted by slide number, so
	// slide10 follows slide2.
	slideNames []string
}

// OpenReader opens a presentation container from a byte buffer. It
// fails when the buffer is not a readable ZIP archive; a valid archive
// with no slide parts yields a reader with zero slides.
func OpenReader(data []byte) (*Reader, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening container: %w", err)
	}
	if len(zr.File) > maxParts {
		return nil, fmt.Errorf("opening container: too many parts (%d)", len(zr.File))
	}

	r := &Reader{
		zr:    zr,
		parts: make(map[string]*zip.File, len(zr.File)),
	}

	type numbered struct {
		name string
		num  int
	}
	var slides []numbered

	for _, f := range zr.File {
		r.parts[f.Name] = f
		if m := slidePartRe.FindStringSubmatch(f.Name); m != nil {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			slides = append(slides, numbered{name: f.Name, num: n})
		}
	}

	sort.Slice(slides, func(i, j int) bool { return slides[i].num < slides[j].num })
	for _, s := range slides {
		r.slideNames = append(r.slideNames, s.name)
	}

	return r, nil
}

// SlideCount returns the number of slide parts in the container.
func (r *Reader) SlideCount() int {
	return len(r.slideNames)
}

// SlideData returns the raw XML of the i-th slide (0-indexed, in
// slide-number order).
func (r *Reader) SlideData(i int) ([]byte, error) {
	if i < 0 || i >= len(r.slideNames) {
		return nil, fmt.Errorf("slide index %d out of range", i)
	}
	return r.readPart(r.slideNames[i])
}

func (r *Reader) readPart(name string) ([]byte, error) {
	f, ok := r.parts[name]
	if !ok {
		return nil, fmt.Errorf("part %s not found", name)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("opening part %s: %w", name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, maxPartSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading part %s: %w", name, err)
	}
	if len(data) > maxPartSize {
		return nil, fmt.Errorf("part %s exceeds size limit", name)
	}
	return data, nil
}

// Notes returns the speaker notes text for the i-th slide, resolved
// through the slide's relationships part. Slides without a notes
// relationship return an empty string.
func (r *Reader) Notes(i int) (string, error) {
	if i < 0 || i >= len(r.slideNames) {
		return "", fmt.Errorf("slide index %d out of range", i)
	}
	slideName := r.slideNames[i]
	relsName := path.Join(path.Dir(slideName), "_rels", path.Base(slideName)+".rels")

	relsData, err := r.readPart(relsName)
	if err != nil {
		// No rels part means no notes.
		return "", nil
	}
	rels, err := xmltree.Parse(relsData)
	if err != nil {
		return "", nil
	}

	var notesTarget string
	for _, rel := range rels.FindAll(nsRelationships, "Relationship") {
		if strings.HasSuffix(rel.Attr("Type"), "/notesSlide") {
			notesTarget = rel.Attr("Target")
			break
		}
	}
	if notesTarget == "" {
		return "", nil
	}

	// Targets are relative to the slide part's directory.
	notesName := path.Clean(path.Join(path.Dir(slideName), notesTarget))
	notesData, err := r.readPart(notesName)
	if err != nil {
		return "", nil
	}
	notes, err := xmltree.Parse(notesData)
	if err != nil {
		return "", nil
	}

	// Collect paragraph text from every shape except the slide-image
	// placeholder.
	var sb strings.Builder
	for _, sp := range notes.FindAll(nsPresentationML, "sp") {
		if ph := sp.FindFirst(nsPresentationML, "ph"); ph != nil && ph.Attr("type") == "sldImg" {
			continue
		}
		for _, p := range sp.FindAll(nsDrawingML, "p") {
			text := strings.TrimSpace(paragraphText(p))
			if text == "" {
				continue
			}
			if sb.Len() > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(text)
		}
	}
	return sb.String(), nil
}

func paragraphText(p *xmltree.Node) string {
	var sb strings.Builder
	for _, t := range p.FindAll(nsDrawingML, "t") {
		sb.WriteString(t.InnerText())
	}
	return sb.String()
}

// Metadata reads the document properties from docProps/core.xml. A
// container without the part returns zero-valued metadata.
func (r *Reader) Metadata() (model.Metadata, error) {
	var md model.Metadata

	data, err := r.readPart("docProps/core.xml")
	if err != nil {
		return md, nil
	}
	root, err := xmltree.Parse(data)
	if err != nil {
		return md, fmt.Errorf("parsing core properties: %w", err)
	}

	text := func(space, local string) string {
		if n := root.FindFirst(space, local); n != nil {
			return strings.TrimSpace(n.InnerText())
		}
		return ""
	}

	md.Title = text(nsDublinCore, "title")
	md.Subject = text(nsDublinCore, "subject")
	md.Creator = text(nsDublinCore, "creator")
	md.Description = text(nsDublinCore, "description")
	md.Keywords = text(nsCoreProps, "keywords")
	md.LastModifiedBy = text(nsCoreProps, "lastModifiedBy")
	md.Created = text(nsDublinCoreTerms, "created")
	md.Modified = text(nsDublinCoreTerms, "modified")

	return md, nil
}

// Theme parses ppt/theme/theme1.xml when present. A container without
// a theme part (or with an unparseable one) returns an empty theme, so
// scheme colors resolve against the built-in table.
func (r *Reader) Theme() *Theme {
	data, err := r.readPart("ppt/theme/theme1.xml")
	if err != nil {
		return &Theme{}
	}
	theme, err := ParseTheme(data)
	if err != nil {
		return &Theme{}
	}
	return theme
}
