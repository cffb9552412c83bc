package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var slidePathRe = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

// extractSlides reads a .pptx archive (OOXML zip) and concatenates the text
// runs of every slide. Paragraphs within a slide are separated by newlines,
// slides by blank lines, preserving deck order.
func extractSlides(content []byte) (string, error) {
	archive, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("open slide archive: %w", err)
	}

	type slideFile struct {
		number int
		file   *zip.File
	}

	var slides []slideFile
	for _, f := range archive.File {
		m := slidePathRe.FindStringSubmatch(f.Name)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		slides = append(slides, slideFile{number: n, file: f})
	}
	if len(slides) == 0 {
		return "", fmt.Errorf("no slides in archive")
	}
	sort.Slice(slides, func(i, j int) bool { return slides[i].number < slides[j].number })

	var parts []string
	for _, s := range slides {
		text, err := slideText(s.file)
		if err != nil {
			return "", fmt.Errorf("slide %d: %w", s.number, err)
		}
		if text != "" {
			parts = append(parts, text)
		}
	}

	return strings.Join(parts, "\n\n"), nil
}

// slideText walks one slide's XML and joins its <a:t> runs, breaking the line
// at each paragraph (<a:p>) boundary.
func slideText(f *zip.File) (string, error) {
	rc, err := f.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	decoder := xml.NewDecoder(rc)

	var (
		lines     []string
		paragraph strings.Builder
		inRun     bool
	)

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch el := token.(type) {
		case xml.StartElement:
			if el.Name.Local == "t" {
				inRun = true
			}
		case xml.EndElement:
			switch el.Name.Local {
			case "t":
				inRun = false
			case "p":
				if line := strings.TrimSpace(paragraph.String()); line != "" {
					lines = append(lines, line)
				}
				paragraph.Reset()
			}
		case xml.CharData:
			if inRun {
				paragraph.Write(el)
			}
		}
	}

	if line := strings.TrimSpace(paragraph.String()); line != "" {
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n"), nil
}
