package ooxml

import (
	"hash/fnv"
	"strconv"
)

// BadgeImage describes one anchored badge drawing: the relationship it
// embeds, its size, and its absolute position within the badge row.
// Dimensions and offsets are in EMUs (914400 per inch).
type BadgeImage struct {
	RID         string
	DrawingID   uint32
	Description string
	WidthEMU    int64
	HeightEMU   int64
	OffsetX     int64
	OffsetY     int64
}

// maxDrawingID bounds drawing IDs to the signed 32-bit range Word accepts.
const maxDrawingID = 2000000000

// DrawingID derives a stable drawing ID from a badge key, so rendering the
// same record twice produces identical XML.
func DrawingID(key string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return h.Sum32() % maxDrawingID
}

// badgeAnchor builds the w:drawing element for one floating badge image:
// an anchored picture positioned against the column and paragraph, with no
// text wrapping, referencing the image part through r:embed.
func badgeAnchor(b BadgeImage) *Element {
	id := strconv.FormatUint(uint64(b.DrawingID), 10)
	cx := strconv.FormatInt(b.WidthEMU, 10)
	cy := strconv.FormatInt(b.HeightEMU, 10)

	anchor := El("wp:anchor",
		A("distT", "0"), A("distB", "0"), A("distL", "114300"), A("distR", "114300"),
		A("simplePos", "0"), A("relativeHeight", "251659264"),
		A("behindDoc", "0"), A("locked", "0"), A("layoutInCell", "1"),
		A("allowOverlap", "1"),
	)

	anchor.Append(
		El("wp:simplePos", A("x", "0"), A("y", "0")),
		El("wp:positionH", A("relativeFrom", "column")).Append(
			El("wp:posOffset").WithText(strconv.FormatInt(b.OffsetX, 10)),
		),
		El("wp:positionV", A("relativeFrom", "paragraph")).Append(
			El("wp:posOffset").WithText(strconv.FormatInt(b.OffsetY, 10)),
		),
		El("wp:extent", A("cx", cx), A("cy", cy)),
		El("wp:effectExtent", A("l", "0"), A("t", "0"), A("r", "0"), A("b", "0")),
		El("wp:wrapNone"),
		El("wp:docPr", A("id", id), A("name", "drawing"), A("descr", b.Description)),
		El("wp:cNvGraphicFramePr").Append(
			El("a:graphicFrameLocks", A("noChangeAspect", "1")),
		),
	)

	blip := El("a:blip", A("r:embed", b.RID)).Append(
		El("a:extLst").Append(
			El("a:ext", A("uri", "{28A0092B-C50C-407E-A947-70E740481C1C}")).Append(
				El("a14:useLocalDpi", A("val", "0")),
			),
		),
	)

	picture := El("pic:pic").Append(
		El("pic:nvPicPr").Append(
			El("pic:cNvPr", A("id", id), A("name", "")),
			El("pic:cNvPicPr"),
		),
		El("pic:blipFill").Append(
			blip,
			El("a:stretch").Append(El("a:fillRect")),
		),
		El("pic:spPr").Append(
			El("a:xfrm").Append(
				El("a:off", A("x", "0"), A("y", "0")),
				El("a:ext", A("cx", cx), A("cy", cy)),
			),
			El("a:prstGeom", A("prst", "rect")).Append(El("a:avLst")),
		),
	)

	anchor.Append(
		El("a:graphic").Append(
			El("a:graphicData",
				A("uri", "http://schemas.openxmlformats.org/drawingml/2006/picture"),
			).Append(picture),
		),
		El("wp14:sizeRelH", A("relativeFrom", "page")).Append(
			El("wp14:pctWidth").WithText("0"),
		),
		El("wp14:sizeRelV", A("relativeFrom", "page")).Append(
			El("wp14:pctHeight").WithText("0"),
		),
	)

	return El("w:drawing").Append(anchor)
}
