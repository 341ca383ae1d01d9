package epub

import (
	"encoding/xml"
	"fmt"
)

// PackageMediaType is the media type of the OPF rootfile.
const PackageMediaType = "application/oebps-package+xml"

// Container is the structure for META-INF/container.xml
type Container struct {
	XMLName   xml.Name   `xml:"urn:oasis:names:tc:opendocument:xmlns:container container"`
	Version   string     `xml:"version,attr"`
	RootFiles []RootFile `xml:"rootfiles>rootfile"`
}

type RootFile struct {
	FullPath  string `xml:"full-path,attr"`
	MediaType string `xml:"media-type,attr"`
}

// ContainerDocument returns META-INF/container.xml pointing at OEBPS/content.opf.
func ContainerDocument() ([]byte, error) {
	c := Container{
		Version: "1.0",
		RootFiles: []RootFile{{
			FullPath:  contentPath(PackageHref),
			MediaType: PackageMediaType,
		}},
	}

	out, err := xml.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal container: %w", err)
	}
	out = append([]byte(xml.Header), out...)
	return append(out, '\n'), nil
}

// displayOptions makes iBooks render every page as fixed layout.
const displayOptions = `<?xml version="1.0" encoding="UTF-8"?>
<display_options>
  <platform name="*">
    <option name="fixed-layout">true</option>
    <option name="open-to-spread">false</option>
  </platform>
</display_options>
`

// DisplayOptionsDocument returns META-INF/com.apple.ibooks.display-options.xml.
func DisplayOptionsDocument() []byte {
	return []byte(displayOptions)
}

// imageStyle stretches the page SVG over the whole viewport without margins.
const imageStyle = `@page {
  padding: 0;
  margin: 0;
}
html,
body {
  padding: 0;
  margin: 0;
  height: 100%;
}
#image {
  width: 100%;
  height: 100%;
  display: block;
  margin: 0;
  padding: 0;
}
`

// StylesheetDocument returns OEBPS/imagestyle.css.
func StylesheetDocument() []byte {
	return []byte(imageStyle)
}
