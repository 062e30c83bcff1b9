package main

import (
	"fmt"
	"io"
	"time"

	"github.com/simonhull/krc"
)

// printDocument writes doc as plain text:
//
//	title: My Song
//	artist: Artist
//
//	00:01.000 00:03.000 Hello
//
// With pure set only the line texts are written.
func printDocument(w io.Writer, doc *krc.Document, po printOptions) {
	if po.pure {
		for _, l := range doc.Lines {
			fmt.Fprintln(w, l.Text)
		}
		if po.translations {
			for _, tr := range doc.Translations {
				fmt.Fprintln(w)
				for _, l := range tr.Lines {
					fmt.Fprintln(w, l.Text)
				}
			}
		}
		return
	}

	for k, v := range doc.Tags.All() {
		if k == krc.TagLanguage {
			v = fmt.Sprintf("<%d bytes>", len(v))
		}
		fmt.Fprintf(w, "%s: %s\n", k, v)
	}
	if doc.Tags.Len() > 0 && len(doc.Lines) > 0 {
		fmt.Fprintln(w)
	}

	for _, l := range doc.Lines {
		fmt.Fprintf(w, "%s %s %s\n", clock(l.StartTime), clock(l.EndTime), l.Text)
	}

	if !po.translations {
		return
	}
	for _, tr := range doc.Translations {
		fmt.Fprintf(w, "\n[translation language=%s type=%s]\n", tr.Language, tr.Type)
		for i, l := range tr.Lines {
			start := ""
			if i < len(doc.Lines) {
				start = clock(doc.Lines[i].StartTime)
			}
			fmt.Fprintf(w, "%9s %s\n", start, l.Text)
		}
	}
}

// clock formats milliseconds as mm:ss.mmm.
func clock(ms uint32) string {
	d := time.Duration(ms) * time.Millisecond
	m := int(d / time.Minute)
	s := int(d%time.Minute) / int(time.Second)
	return fmt.Sprintf("%02d:%02d.%03d", m, s, ms%1000)
}
