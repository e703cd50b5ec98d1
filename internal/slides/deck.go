// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package slides

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
	"strings"
	"time"
)

// A .pptx file is an OPC package: a ZIP of XML parts wired together by
// relationship files. WriteDeck emits the minimal viable package: content
// types, the presentation part, one slide master, a title layout and a
// title+body layout, a theme, core/app properties, and one slide part per
// record. Title slides go on the title layout; content slides put each bullet
// on the body placeholder as a paragraph at its outline level.

const (
	nsA = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsR = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsP = "http://schemas.openxmlformats.org/presentationml/2006/main"

	relOfficeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relSlideMaster    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster"
	relSlideLayout    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout"
	relSlide          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"
	relTheme          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme"
	relCoreProps      = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relExtProps       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// WriteDeck writes the slide records as a PowerPoint package at path.
func WriteDeck(path string, deck []Slide) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	zw := zip.NewWriter(f)
	parts := packageParts(deck, time.Now().UTC())
	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			zw.Close()
			f.Close()
			return fmt.Errorf("creating part %s: %w", part.name, err)
		}
		if _, err := w.Write([]byte(part.content)); err != nil {
			zw.Close()
			f.Close()
			return fmt.Errorf("writing part %s: %w", part.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		f.Close()
		return fmt.Errorf("finalizing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

type part struct {
	name    string
	content string
}

func packageParts(deck []Slide, now time.Time) []part {
	parts := []part{
		{"[Content_Types].xml", contentTypesXML(len(deck))},
		{"_rels/.rels", rootRelsXML},
		{"ppt/presentation.xml", presentationXML(len(deck))},
		{"ppt/_rels/presentation.xml.rels", presentationRelsXML(len(deck))},
		{"ppt/slideMasters/slideMaster1.xml", slideMasterXML},
		{"ppt/slideMasters/_rels/slideMaster1.xml.rels", slideMasterRelsXML},
		{"ppt/slideLayouts/slideLayout1.xml", titleLayoutXML},
		{"ppt/slideLayouts/_rels/slideLayout1.xml.rels", layoutRelsXML},
		{"ppt/slideLayouts/slideLayout2.xml", contentLayoutXML},
		{"ppt/slideLayouts/_rels/slideLayout2.xml.rels", layoutRelsXML},
		{"ppt/theme/theme1.xml", themeXML},
		{"docProps/core.xml", corePropsXML(deck, now)},
		{"docProps/app.xml", appPropsXML(len(deck))},
	}

	for i, s := range deck {
		n := i + 1
		layout := "slideLayout2.xml"
		if s.IsTitle {
			layout = "slideLayout1.xml"
		}
		parts = append(parts,
			part{fmt.Sprintf("ppt/slides/slide%d.xml", n), slideXML(s)},
			part{fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", n), slideRelsXML(layout)},
		)
	}
	return parts
}

// escape renders s safe for XML character data.
func escape(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s)) //nolint:errcheck // bytes.Buffer does not fail
	return buf.String()
}

func contentTypesXML(slideCount int) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">`)
	b.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`)
	b.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)
	b.WriteString(`<Override PartName="/ppt/presentation.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/slideMasters/slideMaster1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/slideLayouts/slideLayout1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/slideLayouts/slideLayout2.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/theme/theme1.xml" ContentType="application/vnd.openxmlformats-officedocument.theme+xml"/>`)
	for i := 1; i <= slideCount; i++ {
		fmt.Fprintf(&b, `<Override PartName="/ppt/slides/slide%d.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slide+xml"/>`, i)
	}
	b.WriteString(`<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>`)
	b.WriteString(`<Override PartName="/docProps/app.xml" ContentType="application/vnd.openxmlformats-officedocument.extended-properties+xml"/>`)
	b.WriteString(`</Types>`)
	return b.String()
}

var rootRelsXML = xmlHeader +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="` + relOfficeDocument + `" Target="ppt/presentation.xml"/>` +
	`<Relationship Id="rId2" Type="` + relCoreProps + `" Target="docProps/core.xml"/>` +
	`<Relationship Id="rId3" Type="` + relExtProps + `" Target="docProps/app.xml"/>` +
	`</Relationships>`

func presentationXML(slideCount int) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	fmt.Fprintf(&b, `<p:presentation xmlns:a="%s" xmlns:r="%s" xmlns:p="%s">`, nsA, nsR, nsP)
	b.WriteString(`<p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/></p:sldMasterIdLst>`)
	if slideCount > 0 {
		b.WriteString(`<p:sldIdLst>`)
		for i := 0; i < slideCount; i++ {
			fmt.Fprintf(&b, `<p:sldId id="%d" r:id="rId%d"/>`, 256+i, 2+i)
		}
		b.WriteString(`</p:sldIdLst>`)
	}
	b.WriteString(`<p:sldSz cx="9144000" cy="6858000"/>`)
	b.WriteString(`<p:notesSz cx="6858000" cy="9144000"/>`)
	b.WriteString(`</p:presentation>`)
	return b.String()
}

func presentationRelsXML(slideCount int) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	fmt.Fprintf(&b, `<Relationship Id="rId1" Type="%s" Target="slideMasters/slideMaster1.xml"/>`, relSlideMaster)
	for i := 0; i < slideCount; i++ {
		fmt.Fprintf(&b, `<Relationship Id="rId%d" Type="%s" Target="slides/slide%d.xml"/>`, 2+i, relSlide, i+1)
	}
	b.WriteString(`</Relationships>`)
	return b.String()
}

var slideMasterXML = xmlHeader +
	`<p:sldMaster xmlns:a="` + nsA + `" xmlns:r="` + nsR + `" xmlns:p="` + nsP + `">` +
	`<p:cSld><p:spTree>` +
	`<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>` +
	`<p:grpSpPr/>` +
	`</p:spTree></p:cSld>` +
	`<p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/>` +
	`<p:sldLayoutIdLst>` +
	`<p:sldLayoutId id="2147483649" r:id="rId1"/>` +
	`<p:sldLayoutId id="2147483650" r:id="rId2"/>` +
	`</p:sldLayoutIdLst>` +
	`</p:sldMaster>`

var slideMasterRelsXML = xmlHeader +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="` + relSlideLayout + `" Target="../slideLayouts/slideLayout1.xml"/>` +
	`<Relationship Id="rId2" Type="` + relSlideLayout + `" Target="../slideLayouts/slideLayout2.xml"/>` +
	`<Relationship Id="rId3" Type="` + relTheme + `" Target="../theme/theme1.xml"/>` +
	`</Relationships>`

var layoutRelsXML = xmlHeader +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="` + relSlideMaster + `" Target="../slideMasters/slideMaster1.xml"/>` +
	`</Relationships>`

// titleLayoutXML positions a centered title placeholder; content slides never
// reference it. Geometry values are EMUs on a 4:3 canvas.
var titleLayoutXML = xmlHeader +
	`<p:sldLayout xmlns:a="` + nsA + `" xmlns:r="` + nsR + `" xmlns:p="` + nsP + `" type="title">` +
	`<p:cSld name="Title Slide"><p:spTree>` +
	`<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>` +
	`<p:grpSpPr/>` +
	`<p:sp>` +
	`<p:nvSpPr><p:cNvPr id="2" name="Title 1"/><p:cNvSpPr><a:spLocks noGrp="1"/></p:cNvSpPr><p:nvPr><p:ph type="ctrTitle"/></p:nvPr></p:nvSpPr>` +
	`<p:spPr><a:xfrm><a:off x="685800" y="2130425"/><a:ext cx="7772400" cy="1470025"/></a:xfrm></p:spPr>` +
	`<p:txBody><a:bodyPr/><a:lstStyle/><a:p><a:endParaRPr/></a:p></p:txBody>` +
	`</p:sp>` +
	`</p:spTree></p:cSld>` +
	`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>` +
	`</p:sldLayout>`

var contentLayoutXML = xmlHeader +
	`<p:sldLayout xmlns:a="` + nsA + `" xmlns:r="` + nsR + `" xmlns:p="` + nsP + `">` +
	`<p:cSld name="Title and Content"><p:spTree>` +
	`<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>` +
	`<p:grpSpPr/>` +
	`<p:sp>` +
	`<p:nvSpPr><p:cNvPr id="2" name="Title 1"/><p:cNvSpPr><a:spLocks noGrp="1"/></p:cNvSpPr><p:nvPr><p:ph type="title"/></p:nvPr></p:nvSpPr>` +
	`<p:spPr><a:xfrm><a:off x="457200" y="274638"/><a:ext cx="8229600" cy="1143000"/></a:xfrm></p:spPr>` +
	`<p:txBody><a:bodyPr/><a:lstStyle/><a:p><a:endParaRPr/></a:p></p:txBody>` +
	`</p:sp>` +
	`<p:sp>` +
	`<p:nvSpPr><p:cNvPr id="3" name="Content 2"/><p:cNvSpPr><a:spLocks noGrp="1"/></p:cNvSpPr><p:nvPr><p:ph idx="1"/></p:nvPr></p:nvSpPr>` +
	`<p:spPr><a:xfrm><a:off x="457200" y="1600200"/><a:ext cx="8229600" cy="4525963"/></a:xfrm></p:spPr>` +
	`<p:txBody><a:bodyPr/><a:lstStyle/><a:p><a:endParaRPr/></a:p></p:txBody>` +
	`</p:sp>` +
	`</p:spTree></p:cSld>` +
	`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>` +
	`</p:sldLayout>`

func slideXML(s Slide) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	fmt.Fprintf(&b, `<p:sld xmlns:a="%s" xmlns:r="%s" xmlns:p="%s">`, nsA, nsR, nsP)
	b.WriteString(`<p:cSld><p:spTree>`)
	b.WriteString(`<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>`)
	b.WriteString(`<p:grpSpPr/>`)

	phType := "title"
	if s.IsTitle {
		phType = "ctrTitle"
	}
	b.WriteString(`<p:sp>`)
	fmt.Fprintf(&b, `<p:nvSpPr><p:cNvPr id="2" name="Title 1"/><p:cNvSpPr><a:spLocks noGrp="1"/></p:cNvSpPr><p:nvPr><p:ph type="%s"/></p:nvPr></p:nvSpPr>`, phType)
	b.WriteString(`<p:spPr/>`)
	fmt.Fprintf(&b, `<p:txBody><a:bodyPr/><a:lstStyle/><a:p><a:r><a:t>%s</a:t></a:r></a:p></p:txBody>`, escape(s.Title))
	b.WriteString(`</p:sp>`)

	if len(s.Bullets) > 0 {
		b.WriteString(`<p:sp>`)
		b.WriteString(`<p:nvSpPr><p:cNvPr id="3" name="Content 2"/><p:cNvSpPr><a:spLocks noGrp="1"/></p:cNvSpPr><p:nvPr><p:ph idx="1"/></p:nvPr></p:nvSpPr>`)
		b.WriteString(`<p:spPr/>`)
		b.WriteString(`<p:txBody><a:bodyPr/><a:lstStyle/>`)
		for _, bl := range s.Bullets {
			if bl.Level > 0 {
				fmt.Fprintf(&b, `<a:p><a:pPr lvl="%d"/><a:r><a:t>%s</a:t></a:r></a:p>`, bl.Level, escape(bl.Text))
			} else {
				fmt.Fprintf(&b, `<a:p><a:r><a:t>%s</a:t></a:r></a:p>`, escape(bl.Text))
			}
		}
		b.WriteString(`</p:txBody>`)
		b.WriteString(`</p:sp>`)
	}

	b.WriteString(`</p:spTree></p:cSld>`)
	b.WriteString(`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>`)
	b.WriteString(`</p:sld>`)
	return b.String()
}

func slideRelsXML(layout string) string {
	return xmlHeader +
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		`<Relationship Id="rId1" Type="` + relSlideLayout + `" Target="../slideLayouts/` + layout + `"/>` +
		`</Relationships>`
}

func corePropsXML(deck []Slide, now time.Time) string {
	ts := now.Format(time.RFC3339)
	title := ""
	for _, s := range deck {
		if s.IsTitle {
			title = s.Title
			break
		}
	}
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">`)
	if title != "" {
		fmt.Fprintf(&b, `<dc:title>%s</dc:title>`, escape(title))
	}
	b.WriteString(`<dc:creator>office-tools</dc:creator>`)
	fmt.Fprintf(&b, `<dcterms:created xsi:type="dcterms:W3CDTF">%s</dcterms:created>`, ts)
	fmt.Fprintf(&b, `<dcterms:modified xsi:type="dcterms:W3CDTF">%s</dcterms:modified>`, ts)
	b.WriteString(`</cp:coreProperties>`)
	return b.String()
}

func appPropsXML(slideCount int) string {
	return xmlHeader +
		`<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties">` +
		`<Application>office-tools</Application>` +
		fmt.Sprintf(`<Slides>%d</Slides>`, slideCount) +
		`</Properties>`
}

// themeXML is the smallest theme PowerPoint accepts: one color scheme, one
// font scheme, and the three-entry fill/line/effect/background lists the
// schema requires.
var themeXML = xmlHeader +
	`<a:theme xmlns:a="` + nsA + `" name="Office">` +
	`<a:themeElements>` +
	`<a:clrScheme name="Office">` +
	`<a:dk1><a:sysClr val="windowText" lastClr="000000"/></a:dk1>` +
	`<a:lt1><a:sysClr val="window" lastClr="FFFFFF"/></a:lt1>` +
	`<a:dk2><a:srgbClr val="44546A"/></a:dk2>` +
	`<a:lt2><a:srgbClr val="E7E6E6"/></a:lt2>` +
	`<a:accent1><a:srgbClr val="4472C4"/></a:accent1>` +
	`<a:accent2><a:srgbClr val="ED7D31"/></a:accent2>` +
	`<a:accent3><a:srgbClr val="A5A5A5"/></a:accent3>` +
	`<a:accent4><a:srgbClr val="FFC000"/></a:accent4>` +
	`<a:accent5><a:srgbClr val="5B9BD5"/></a:accent5>` +
	`<a:accent6><a:srgbClr val="70AD47"/></a:accent6>` +
	`<a:hlink><a:srgbClr val="0563C1"/></a:hlink>` +
	`<a:folHlink><a:srgbClr val="954F72"/></a:folHlink>` +
	`</a:clrScheme>` +
	`<a:fontScheme name="Office">` +
	`<a:majorFont><a:latin typeface="Calibri Light"/><a:ea typeface=""/><a:cs typeface=""/></a:majorFont>` +
	`<a:minorFont><a:latin typeface="Calibri"/><a:ea typeface=""/><a:cs typeface=""/></a:minorFont>` +
	`</a:fontScheme>` +
	`<a:fmtScheme name="Office">` +
	`<a:fillStyleLst>` +
	`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
	`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
	`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
	`</a:fillStyleLst>` +
	`<a:lnStyleLst>` +
	`<a:ln w="6350"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln>` +
	`<a:ln w="12700"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln>` +
	`<a:ln w="19050"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln>` +
	`</a:lnStyleLst>` +
	`<a:effectStyleLst>` +
	`<a:effectStyle><a:effectLst/></a:effectStyle>` +
	`<a:effectStyle><a:effectLst/></a:effectStyle>` +
	`<a:effectStyle><a:effectLst/></a:effectStyle>` +
	`</a:effectStyleLst>` +
	`<a:bgFillStyleLst>` +
	`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
	`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
	`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
	`</a:bgFillStyleLst>` +
	`</a:fmtScheme>` +
	`</a:themeElements>` +
	`</a:theme>`
