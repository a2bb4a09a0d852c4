package deckview

import (
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/tsawler/deckview/format"
	"github.com/tsawler/deckview/layout"
	"github.com/tsawler/deckview/model"
	"github.com/tsawler/deckview/pptx"
	"github.com/tsawler/deckview/render"
)

// Extractor is an immutable, chainable decoder for one presentation.
// Each configuration method returns a modified copy, so a configured
// Extractor can be reused and shared freely. Errors accumulate and
// surface at the terminal operation.
type Extractor struct {
	filename string
	data     []byte
	opts     options
	err      error

	reader *pptx.Reader
}

func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		data:     e.data,
		opts:     e.opts.clone(),
		err:      e.err,
		reader:   e.reader,
	}
}

// Slides restricts decoding to the given 1-indexed slide numbers.
// An empty call resets the selection to all slides.
func (e *Extractor) Slides(nums ...int) *Extractor {
	c := e.clone()
	c.opts.slides = append([]int(nil), nums...)
	if c.err == nil {
		for _, n := range nums {
			if n < 1 {
				c.err = fmt.Errorf("%w: slide number %d (slides are 1-indexed)", ErrInvalidInput, n)
				break
			}
		}
	}
	return c
}

// IncludeNotes adds speaker notes to decoded slides.
func (e *Extractor) IncludeNotes() *Extractor {
	c := e.clone()
	c.opts.includeNotes = true
	return c
}

// Concurrency caps the number of slides extracted in parallel. Zero
// restores the automatic default.
func (e *Extractor) Concurrency(n int) *Extractor {
	c := e.clone()
	if c.err == nil && n < 0 {
		c.err = fmt.Errorf("%w: concurrency %d", ErrInvalidInput, n)
		return c
	}
	c.opts.concurrency = n
	return c
}

// WithContext attaches a context to the decode. Cancelling it stops
// in-flight slide extraction.
func (e *Extractor) WithContext(ctx context.Context) *Extractor {
	c := e.clone()
	c.opts.ctx = ctx
	return c
}

// ensureReader loads the input bytes and opens the container. It is
// the single place input and container errors are classified.
func (e *Extractor) ensureReader() error {
	if e.err != nil {
		return e.err
	}
	if e.reader != nil {
		return nil
	}

	data := e.data
	if e.filename != "" {
		var err error
		data, err = os.ReadFile(e.filename)
		if err != nil {
			e.err = fmt.Errorf("%w: reading %s: %v", ErrInvalidInput, e.filename, err)
			return e.err
		}
	}
	if len(data) == 0 {
		e.err = fmt.Errorf("%w: empty input", ErrInvalidInput)
		return e.err
	}
	if format.DetectFromMagic(data) != format.Archive {
		e.err = fmt.Errorf("%w: not a zip container", ErrCorruptArchive)
		return e.err
	}

	r, err := pptx.OpenReader(data)
	if err != nil {
		e.err = fmt.Errorf("%w: %v", ErrCorruptArchive, err)
		return e.err
	}
	e.reader = r
	return nil
}

// SlideCount returns the number of slide parts in the container,
// ignoring any slide selection.
func (e *Extractor) SlideCount() (int, error) {
	c := e.clone()
	if err := c.ensureReader(); err != nil {
		return 0, err
	}
	return c.reader.SlideCount(), nil
}

// Metadata returns the document properties.
func (e *Extractor) Metadata() (model.Metadata, error) {
	c := e.clone()
	if err := c.ensureReader(); err != nil {
		return model.Metadata{}, err
	}
	return c.reader.Metadata()
}

// Presentation decodes the selected slides into the document model.
// Malformed slides degrade to a Warning and an empty block list at
// their position; only input-level failures return an error, and then
// with no partial slides.
func (e *Extractor) Presentation() (model.Presentation, []Warning, error) {
	c := e.clone()
	if err := c.ensureReader(); err != nil {
		return model.Presentation{}, nil, err
	}

	md, err := c.reader.Metadata()
	if err != nil {
		return model.Presentation{}, nil, err
	}

	slides, warnings, err := c.decodeSlides()
	if err != nil {
		return model.Presentation{}, nil, err
	}

	return model.Presentation{Metadata: md, Slides: slides}, warnings, nil
}

// decodeSlides extracts the selected slides concurrently, collecting
// results by index so output order never depends on scheduling.
func (e *Extractor) decodeSlides() ([]model.Slide, []Warning, error) {
	total := e.reader.SlideCount()

	// 0-based container indices of the selected slides.
	var indices []int
	for i := 0; i < total; i++ {
		if e.opts.wantSlide(i + 1) {
			indices = append(indices, i)
		}
	}
	if len(indices) == 0 {
		return nil, nil, nil
	}

	theme := e.reader.Theme()

	limit := e.opts.concurrency
	if limit <= 0 {
		limit = 4
		if len(indices) < limit {
			limit = len(indices)
		}
	}

	slides := make([]model.Slide, len(indices))
	slideWarnings := make([][]Warning, len(indices))

	g, ctx := errgroup.WithContext(e.opts.ctx)
	g.SetLimit(limit)

	for pos, idx := range indices {
		pos, idx := pos, idx
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			slide, warns := e.decodeSlide(idx, theme)
			slides[pos] = slide
			slideWarnings[pos] = warns
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var warnings []Warning
	for _, w := range slideWarnings {
		warnings = append(warnings, w...)
	}
	return slides, warnings, nil
}

// decodeSlide extracts one slide. All per-slide failures degrade to
// warnings so one bad slide never sinks the batch.
func (e *Extractor) decodeSlide(idx int, theme *pptx.Theme) (model.Slide, []Warning) {
	num := idx + 1
	slide := model.Slide{Index: num}
	var warnings []Warning

	data, err := e.reader.SlideData(idx)
	if err != nil {
		warnings = append(warnings, Warning{Slide: num, Message: err.Error()})
		return slide, warnings
	}

	items, err := pptx.ExtractSlide(data, theme)
	if err != nil {
		warnings = append(warnings, Warning{
			Slide:   num,
			Message: fmt.Sprintf("%v: %v", ErrMalformedSlideXML, err),
		})
		return slide, warnings
	}

	slide.Blocks = layout.BuildBlocks(layout.OrderItems(items))

	if e.opts.includeNotes {
		notes, err := e.reader.Notes(idx)
		if err != nil {
			warnings = append(warnings, Warning{Slide: num, Message: err.Error()})
		} else {
			slide.Notes = notes
		}
	}

	return slide, warnings
}

// HTML decodes the selected slides and renders them as concatenated
// section fragments.
func (e *Extractor) HTML() (string, []Warning, error) {
	pres, warnings, err := e.Presentation()
	if err != nil {
		return "", nil, err
	}
	return render.PresentationHTML(pres), warnings, nil
}

// Text decodes the selected slides and returns their plain text, one
// slide after another.
func (e *Extractor) Text() (string, []Warning, error) {
	pres, warnings, err := e.Presentation()
	if err != nil {
		return "", nil, err
	}
	var sb strings.Builder
	for _, s := range pres.Slides {
		sb.WriteString(s.Text())
	}
	return sb.String(), warnings, nil
}

// Markdown decodes the selected slides and renders them as markdown,
// separated by horizontal rules.
func (e *Extractor) Markdown() (string, []Warning, error) {
	pres, warnings, err := e.Presentation()
	if err != nil {
		return "", nil, err
	}
	var sb strings.Builder
	for i, s := range pres.Slides {
		if i > 0 {
			sb.WriteString("---\n\n")
		}
		sb.WriteString(s.Markdown())
	}
	return sb.String(), warnings, nil
}
