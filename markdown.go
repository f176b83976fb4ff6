package scribe

import (
	"github.com/russross/blackfriday/v2"
)

const htmlFlags = blackfriday.UseXHTML |
	blackfriday.Smartypants |
	blackfriday.SmartypantsFractions |
	blackfriday.SmartypantsLatexDashes

const extensions = blackfriday.NoIntraEmphasis |
	blackfriday.Tables |
	blackfriday.FencedCode |
	blackfriday.Autolink |
	blackfriday.Strikethrough

func newMarkdownRenderer() renderer {
	r := blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Flags: htmlFlags,
	})
	return &blackfridayHTMLRenderer{r}
}

type blackfridayHTMLRenderer struct {
	r blackfriday.Renderer
}

func (b *blackfridayHTMLRenderer) render(in []byte) string {
	return string(blackfriday.Run(in,
		blackfriday.WithRenderer(b.r),
		blackfriday.WithExtensions(extensions)))
}
