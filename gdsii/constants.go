package gdsii

// Wire data type codes carried in the low byte of a tag.
const (
	DataNone     byte = 0x00
	DataBitArray byte = 0x01
	DataInt16    byte = 0x02
	DataInt32    byte = 0x03
	DataReal4    byte = 0x04 // defined by the format, never used by any record
	DataReal8    byte = 0x05
	DataASCII    byte = 0x06
)

// Record header layout.
const (
	HeaderSize = 4
	// MaxRecordSize is the largest even value of the 16-bit length field.
	MaxRecordSize  = 0xFFFE
	MaxPayloadSize = MaxRecordSize - HeaderSize
)

// Library structure records
const (
	TagHeader      Tag = 0x0002
	TagBgnLib      Tag = 0x0102
	TagLibName     Tag = 0x0206
	TagUnits       Tag = 0x0305
	TagEndLib      Tag = 0x0400
	TagBgnStr      Tag = 0x0502
	TagStrName     Tag = 0x0606
	TagEndStr      Tag = 0x0700
	TagRefLibs     Tag = 0x1F06
	TagFonts       Tag = 0x2006
	TagGenerations Tag = 0x2202
	TagAttrTable   Tag = 0x2306
	TagStypTable   Tag = 0x2406 // unreleased
	TagStrType     Tag = 0x2502 // unreleased
	TagLibDirSize  Tag = 0x3902
	TagSrfName     Tag = 0x3A06
	TagLibSecur    Tag = 0x3B02
)

// Element markers
const (
	TagBoundary Tag = 0x0800
	TagPath     Tag = 0x0900
	TagSRef     Tag = 0x0A00
	TagARef     Tag = 0x0B00
	TagText     Tag = 0x0C00
	TagEndEl    Tag = 0x1100
	TagTextNode Tag = 0x1400 // unused
	TagNode     Tag = 0x1500
	TagBox      Tag = 0x2D00
)

// Element properties
const (
	TagLayer        Tag = 0x0D02
	TagDataType     Tag = 0x0E02
	TagWidth        Tag = 0x0F03
	TagXY           Tag = 0x1003
	TagSName        Tag = 0x1206
	TagColRow       Tag = 0x1302
	TagTextType     Tag = 0x1602
	TagPresentation Tag = 0x1701
	TagSpacing      Tag = 0x1802 // unused
	TagString       Tag = 0x1906
	TagSTrans       Tag = 0x1A01
	TagMag          Tag = 0x1B05
	TagAngle        Tag = 0x1C05
	TagUInteger     Tag = 0x1D02 // unused
	TagUString      Tag = 0x1E06 // unused
	TagPathType     Tag = 0x2102
	TagElFlags      Tag = 0x2601
	TagElKey        Tag = 0x2703 // unused
	TagLinkType     Tag = 0x2803 // unused
	TagLinkKeys     Tag = 0x2903 // unused
	TagNodeType     Tag = 0x2A02
	TagPropAttr     Tag = 0x2B02
	TagPropValue    Tag = 0x2C06
	TagBoxType      Tag = 0x2E02
	TagPlex         Tag = 0x2F03
	TagBgnExtn      Tag = 0x3003
	TagEndExtn      Tag = 0x3103
)

// Tape and filtered-format records
const (
	TagTapeNum  Tag = 0x3202
	TagTapeCode Tag = 0x3302
	TagStrClass Tag = 0x3401
	TagReserved Tag = 0x3503 // unused
	TagFormat   Tag = 0x3602
	TagMask     Tag = 0x3706
	TagEndMasks Tag = 0x3800
)

// Extension markers written by some tools after ENDEL-delimited elements
const (
	TagBorder         Tag = 0x3C00
	TagSoftFence      Tag = 0x3D00
	TagHardFence      Tag = 0x3E00
	TagSoftWire       Tag = 0x3F00
	TagHardWire       Tag = 0x4000
	TagPathPort       Tag = 0x4100
	TagNodePort       Tag = 0x4200
	TagUserConstraint Tag = 0x4300
	TagSpacerError    Tag = 0x4400
	TagContact        Tag = 0x4500
)
