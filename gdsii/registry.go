package gdsii

import (
	"sort"
	"strings"

	"github.com/wippyai/gds-stream/errors"
)

// Entry describes how a tag's payload is decoded and validated.
// Lookup and Entries hand out copies; the registry itself never changes.
type Entry struct {
	CheckSize SizeCheck
	CheckData DataCheck
	Name      string
	// ExpectedSize is the exact payload size in bytes; 0 means unconstrained.
	// Scalar records checked by arity (GENERATIONS, FORMAT) leave it 0: one
	// int16 is always 2 bytes, and a wrong count must report the arity.
	ExpectedSize int
	Tag          Tag
	Kind         PayloadKind
	// Unused marks tags the format reserves but no released tool writes.
	Unused bool
	// Uncertain marks entries whose documented size or meaning is ambiguous;
	// they keep the literal tag to kind mapping.
	Uncertain bool
}

var table = []Entry{
	{Tag: TagHeader, Name: "HEADER", Kind: PayloadInt16, ExpectedSize: 2},
	{Tag: TagBgnLib, Name: "BGNLIB", Kind: PayloadDateTime, ExpectedSize: dateTimeSize},
	{Tag: TagLibName, Name: "LIBNAME", Kind: PayloadASCII},
	{Tag: TagUnits, Name: "UNITS", Kind: PayloadReal8, ExpectedSize: 16},
	{Tag: TagEndLib, Name: "ENDLIB", Kind: PayloadNone},
	{Tag: TagBgnStr, Name: "BGNSTR", Kind: PayloadDateTime, ExpectedSize: dateTimeSize},
	{Tag: TagStrName, Name: "STRNAME", Kind: PayloadASCII},
	{Tag: TagEndStr, Name: "ENDSTR", Kind: PayloadNone},
	{Tag: TagBoundary, Name: "BOUNDARY", Kind: PayloadNone},
	{Tag: TagPath, Name: "PATH", Kind: PayloadNone},
	{Tag: TagSRef, Name: "SREF", Kind: PayloadNone},
	{Tag: TagARef, Name: "AREF", Kind: PayloadNone},
	{Tag: TagText, Name: "TEXT", Kind: PayloadNone},
	{Tag: TagLayer, Name: "LAYER", Kind: PayloadInt16, ExpectedSize: 2},
	{Tag: TagDataType, Name: "DATATYPE", Kind: PayloadInt16, ExpectedSize: 2},
	{Tag: TagWidth, Name: "WIDTH", Kind: PayloadInt32, ExpectedSize: 4},
	{Tag: TagXY, Name: "XY", Kind: PayloadInt32},
	{Tag: TagEndEl, Name: "ENDEL", Kind: PayloadNone},
	{Tag: TagSName, Name: "SNAME", Kind: PayloadASCII},
	{Tag: TagColRow, Name: "COLROW", Kind: PayloadInt16, ExpectedSize: 4},
	{Tag: TagTextNode, Name: "TEXTNODE", Kind: PayloadNone, Unused: true},
	{Tag: TagNode, Name: "NODE", Kind: PayloadNone},
	{Tag: TagTextType, Name: "TEXTTYPE", Kind: PayloadInt16, ExpectedSize: 2},
	{Tag: TagPresentation, Name: "PRESENTATION", Kind: PayloadBitArray, ExpectedSize: 2},
	{Tag: TagSpacing, Name: "SPACING", Kind: PayloadInt16, Unused: true},
	{Tag: TagString, Name: "STRING", Kind: PayloadASCII},
	{Tag: TagSTrans, Name: "STRANS", Kind: PayloadBitArray, ExpectedSize: 2},
	{Tag: TagMag, Name: "MAG", Kind: PayloadReal8, ExpectedSize: 8},
	{Tag: TagAngle, Name: "ANGLE", Kind: PayloadReal8, ExpectedSize: 8},
	{Tag: TagUInteger, Name: "UINTEGER", Kind: PayloadInt16, Unused: true},
	{Tag: TagUString, Name: "USTRING", Kind: PayloadASCII, Unused: true},
	{Tag: TagRefLibs, Name: "REFLIBS", Kind: PayloadASCII, CheckSize: sizeMultipleOf(44)},
	{Tag: TagFonts, Name: "FONTS", Kind: PayloadASCII, CheckSize: sizeMultipleOf(44)},
	{Tag: TagPathType, Name: "PATHTYPE", Kind: PayloadInt16, ExpectedSize: 2},
	{Tag: TagGenerations, Name: "GENERATIONS", Kind: PayloadInt16, CheckData: exactlyOne},
	{Tag: TagAttrTable, Name: "ATTRTABLE", Kind: PayloadASCII, CheckSize: sizeAtMost(44)},
	{Tag: TagStypTable, Name: "STYPTABLE", Kind: PayloadASCII, Unused: true},
	{Tag: TagStrType, Name: "STRTYPE", Kind: PayloadInt16, Unused: true},
	{Tag: TagElFlags, Name: "ELFLAGS", Kind: PayloadBitArray, ExpectedSize: 2},
	{Tag: TagElKey, Name: "ELKEY", Kind: PayloadInt32, Unused: true},
	{Tag: TagLinkType, Name: "LINKTYPE", Kind: PayloadInt32, Unused: true},
	{Tag: TagLinkKeys, Name: "LINKKEYS", Kind: PayloadInt32, Unused: true},
	{Tag: TagNodeType, Name: "NODETYPE", Kind: PayloadInt16, ExpectedSize: 2},
	{Tag: TagPropAttr, Name: "PROPATTR", Kind: PayloadInt16, ExpectedSize: 2},
	{Tag: TagPropValue, Name: "PROPVALUE", Kind: PayloadASCII},
	{Tag: TagBox, Name: "BOX", Kind: PayloadNone},
	{Tag: TagBoxType, Name: "BOXTYPE", Kind: PayloadInt16, ExpectedSize: 2},
	{Tag: TagPlex, Name: "PLEX", Kind: PayloadInt32, ExpectedSize: 4},
	{Tag: TagBgnExtn, Name: "BGNEXTN", Kind: PayloadInt32, ExpectedSize: 4},
	{Tag: TagEndExtn, Name: "ENDEXTN", Kind: PayloadInt32, ExpectedSize: 4},
	{Tag: TagTapeNum, Name: "TAPENUM", Kind: PayloadInt16, ExpectedSize: 2},
	{Tag: TagTapeCode, Name: "TAPECODE", Kind: PayloadInt16, ExpectedSize: 12},
	// Documented with a 1-byte size in some references; kept as a 2-byte bit array.
	{Tag: TagStrClass, Name: "STRCLASS", Kind: PayloadBitArray, Uncertain: true},
	{Tag: TagReserved, Name: "RESERVED", Kind: PayloadInt32, Unused: true},
	{Tag: TagFormat, Name: "FORMAT", Kind: PayloadInt16, CheckData: exactlyOne},
	{Tag: TagMask, Name: "MASK", Kind: PayloadASCII},
	{Tag: TagEndMasks, Name: "ENDMASKS", Kind: PayloadNone},
	{Tag: TagLibDirSize, Name: "LIBDIRSIZE", Kind: PayloadInt16, ExpectedSize: 2},
	{Tag: TagSrfName, Name: "SRFNAME", Kind: PayloadASCII},
	{Tag: TagLibSecur, Name: "LIBSECUR", Kind: PayloadInt16},
	{Tag: TagBorder, Name: "BORDER", Kind: PayloadNone},
	{Tag: TagSoftFence, Name: "SOFTFENCE", Kind: PayloadNone},
	{Tag: TagHardFence, Name: "HARDFENCE", Kind: PayloadNone},
	{Tag: TagSoftWire, Name: "SOFTWIRE", Kind: PayloadNone},
	{Tag: TagHardWire, Name: "HARDWIRE", Kind: PayloadNone},
	{Tag: TagPathPort, Name: "PATHPORT", Kind: PayloadNone},
	{Tag: TagNodePort, Name: "NODEPORT", Kind: PayloadNone},
	{Tag: TagUserConstraint, Name: "USERCONSTRAINT", Kind: PayloadNone},
	{Tag: TagSpacerError, Name: "SPACERERROR", Kind: PayloadNone},
	{Tag: TagContact, Name: "CONTACT", Kind: PayloadNone},
}

// registry and names are built once at package initialization and only read afterwards.
var (
	registry = indexByTag(table)
	names    = indexByName(table)
)

func indexByTag(entries []Entry) map[Tag]*Entry {
	m := make(map[Tag]*Entry, len(entries))
	for i := range entries {
		m[entries[i].Tag] = &entries[i]
	}
	return m
}

func indexByName(entries []Entry) map[string]*Entry {
	m := make(map[string]*Entry, len(entries))
	for i := range entries {
		m[entries[i].Name] = &entries[i]
	}
	return m
}

// Lookup returns a copy of the registry entry for tag.
func Lookup(tag Tag) (Entry, error) {
	if e, ok := registry[tag]; ok {
		return *e, nil
	}
	return Entry{}, errors.UnknownTag(errors.PhaseRegistry, uint16(tag))
}

// LookupName returns the registry entry for a record name such as "LAYER".
// The match is case-insensitive.
func LookupName(name string) (Entry, error) {
	if e, ok := names[strings.ToUpper(strings.TrimSpace(name))]; ok {
		return *e, nil
	}
	return Entry{}, errors.New(errors.PhaseRegistry, errors.KindUnknownTag).
		Detail("no record named %q", name).
		Build()
}

// Entries returns a copy of the registry ordered by tag.
func Entries() []Entry {
	out := make([]Entry, len(table))
	copy(out, table)
	sort.Slice(out, func(i, j int) bool { return out[i].Tag < out[j].Tag })
	return out
}
