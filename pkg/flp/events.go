package flp

import "fmt"

// Kind is the semantic type of an event payload
type Kind uint8

const (
	KindU8 Kind = iota
	KindI8
	KindU16
	KindI16
	KindU32
	KindI32
	KindF32
	KindText
	KindData
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindU8:
		return "u8"
	case KindI8:
		return "i8"
	case KindU16:
		return "u16"
	case KindI16:
		return "i16"
	case KindU32:
		return "u32"
	case KindI32:
		return "i32"
	case KindF32:
		return "f32"
	case KindText:
		return "text"
	case KindData:
		return "data"
	}
	return "unknown"
}

// Range boundaries. Event ids partition [0, 256) into size classes:
// 1-byte payloads from RangeByte, 2-byte from RangeWord, 4-byte from
// RangeDword, varint-prefixed from RangeText. RangeData marks where the
// default semantic type switches from text to opaque data.
const (
	RangeByte  uint8 = 0
	RangeWord  uint8 = 64
	RangeDword uint8 = 128
	RangeText  uint8 = 192
	RangeData  uint8 = 208
)

// Event ids the toolkit knows by name. The list follows the community
// FLParser enumeration; ids absent here still parse with their range
// default.
const (
	IDEnabled       uint8 = 0
	IDNoteOn        uint8 = 1
	IDVol           uint8 = 2
	IDPan           uint8 = 3
	IDMIDIChan      uint8 = 4
	IDMIDINote      uint8 = 5
	IDMIDIPatch     uint8 = 6
	IDMIDIBank      uint8 = 7
	IDLoopActive    uint8 = 9
	IDShowInfo      uint8 = 10
	IDShuffle       uint8 = 11
	IDMainVol       uint8 = 12
	IDStretch       uint8 = 13
	IDPitchable     uint8 = 14
	IDZipped        uint8 = 15
	IDDelayFlags    uint8 = 16
	IDPatLength     uint8 = 17
	IDBlockLength   uint8 = 18
	IDUseLoopPoints uint8 = 19
	IDLoopType      uint8 = 20
	IDChanType      uint8 = 21
	IDMixSliceNum   uint8 = 22

	IDNewChan       uint8 = 64
	IDNewPat        uint8 = 65
	IDTempo         uint8 = 66
	IDCurrentPatNum uint8 = 67
	IDPatData       uint8 = 68
	IDFX            uint8 = 69
	IDFadeStereo    uint8 = 70
	IDCutOff        uint8 = 71
	IDDotVol        uint8 = 72
	IDDotPan        uint8 = 73
	IDPreAmp        uint8 = 74
	IDDecay         uint8 = 75
	IDAttack        uint8 = 76
	IDDotNote       uint8 = 77
	IDDotPitch      uint8 = 78
	IDDotMix        uint8 = 79
	IDMainPitch     uint8 = 80
	IDRandChan      uint8 = 81
	IDMixChan       uint8 = 82
	IDResonance     uint8 = 83
	IDLoopBar       uint8 = 84
	IDStDel         uint8 = 85
	IDFX3           uint8 = 86
	IDDotReso       uint8 = 87
	IDDotCutOff     uint8 = 88
	IDShiftDelay    uint8 = 89
	IDLoopEndBar    uint8 = 90
	IDDot           uint8 = 91
	IDDotShift      uint8 = 92
	IDLayerChans    uint8 = 94

	IDPluginColor    uint8 = 128
	IDPLItem         uint8 = 129
	IDEcho           uint8 = 130
	IDFXSine         uint8 = 131
	IDCutCutBy       uint8 = 132
	IDWindowH        uint8 = 133
	IDMiddleNote     uint8 = 135
	IDReserved       uint8 = 136
	IDMainResoCutOff uint8 = 137
	IDDelayReso      uint8 = 138
	IDReverb         uint8 = 139
	IDFineTune       uint8 = 142
	IDSampleFlags    uint8 = 143
	IDLayerFlags     uint8 = 144
	IDChanFilterNum  uint8 = 145
	IDCurFilterNum   uint8 = 146
	IDFXOutChanNum   uint8 = 147
	IDNewTimeMarker  uint8 = 148
	IDFXColor        uint8 = 149
	IDPatColor       uint8 = 150
	IDPatAutoMode    uint8 = 151
	IDSongLoopPos    uint8 = 152
	IDAUSmpRate      uint8 = 153
	IDFXInChanNum    uint8 = 154
	IDPluginIcon     uint8 = 155
	IDFineTempo      uint8 = 156

	IDChanName       uint8 = 192
	IDPatName        uint8 = 193
	IDTitle          uint8 = 194
	IDComment        uint8 = 195
	IDSampleFileName uint8 = 196
	IDURL            uint8 = 197
	IDCommentRTF     uint8 = 198
	IDVersion        uint8 = 199
	IDRegName        uint8 = 200
	IDDataPath       uint8 = 202
	IDPluginName     uint8 = 203
	IDInsertName     uint8 = 204
	IDTimeMarkerName uint8 = 205
	IDGenre          uint8 = 206
	IDAuthor         uint8 = 207

	IDMIDICtrls       uint8 = 208
	IDDelay           uint8 = 209
	IDTS404Params     uint8 = 210
	IDDelayLine       uint8 = 211
	IDNewPlugin       uint8 = 212
	IDPluginParams    uint8 = 213
	IDChanParams      uint8 = 215
	IDEnvLfoParams    uint8 = 218
	IDBasicChanParams uint8 = 219
	IDPatNotes        uint8 = 224
	IDAutomationData  uint8 = 227
	IDChanGroupName   uint8 = 231
	IDTrackName       uint8 = 238
	IDArrangementName uint8 = 241
)

// kinds holds the explicit id mappings. Entries in the DWORD range double
// as the "known DWORD id" set: an id listed here is unambiguously a fixed
// 4-byte payload, everything else in [128, 192) goes through the decoder
// heuristic. The three DATA-range name ids hold text in recent versions.
var kinds = map[uint8]Kind{
	IDPan:       KindI8,
	IDMainPitch: KindI16,

	IDPluginColor:    KindU32,
	IDPLItem:         KindU32,
	IDEcho:           KindU32,
	IDFXSine:         KindU32,
	IDCutCutBy:       KindU32,
	IDWindowH:        KindU32,
	IDMiddleNote:     KindI32,
	IDReserved:       KindU32,
	IDMainResoCutOff: KindU32,
	IDDelayReso:      KindU32,
	IDReverb:         KindU32,
	IDFineTune:       KindI32,
	IDSampleFlags:    KindU32,
	IDLayerFlags:     KindU32,
	IDChanFilterNum:  KindU32,
	IDCurFilterNum:   KindU32,
	IDFXOutChanNum:   KindU32,
	IDNewTimeMarker:  KindU32,
	IDFXColor:        KindU32,
	IDPatColor:       KindU32,
	IDPatAutoMode:    KindU32,
	IDSongLoopPos:    KindU32,
	IDAUSmpRate:      KindU32,
	IDFXInChanNum:    KindU32,
	IDPluginIcon:     KindU32,
	IDFineTempo:      KindU32,

	IDChanGroupName:   KindText,
	IDTrackName:       KindText,
	IDArrangementName: KindText,
}

// KindOf returns the semantic kind for an event id. Explicit mappings win;
// otherwise the id's range assigns a default. Defined for every id.
func KindOf(id uint8) Kind {
	if k, ok := kinds[id]; ok {
		return k
	}
	switch {
	case id < RangeWord:
		return KindU8
	case id < RangeDword:
		return KindU16
	case id < RangeText:
		return KindU32
	case id < RangeData:
		return KindText
	default:
		return KindData
	}
}

// FixedSize returns the payload size implied by the id's range, or -1 for
// the variable-length ranges.
func FixedSize(id uint8) int {
	switch {
	case id < RangeWord:
		return 1
	case id < RangeDword:
		return 2
	case id < RangeText:
		return 4
	default:
		return -1
	}
}

// IsKnownDwordID reports whether id is a DWORD-range id with an explicit
// table entry. Such ids always carry a fixed 4-byte payload.
func IsKnownDwordID(id uint8) bool {
	if id < RangeDword || id >= RangeText {
		return false
	}
	_, ok := kinds[id]
	return ok
}

var eventNames = map[uint8]string{
	IDEnabled: "Enabled", IDNoteOn: "NoteOn", IDVol: "Vol", IDPan: "Pan",
	IDMIDIChan: "MIDIChan", IDMIDINote: "MIDINote", IDMIDIPatch: "MIDIPatch",
	IDMIDIBank: "MIDIBank", IDLoopActive: "LoopActive", IDShowInfo: "ShowInfo",
	IDShuffle: "Shuffle", IDMainVol: "MainVol", IDStretch: "Stretch",
	IDPitchable: "Pitchable", IDZipped: "Zipped", IDDelayFlags: "DelayFlags",
	IDPatLength: "PatLength", IDBlockLength: "BlockLength",
	IDUseLoopPoints: "UseLoopPoints", IDLoopType: "LoopType",
	IDChanType: "ChanType", IDMixSliceNum: "MixSliceNum",
	IDNewChan: "NewChan", IDNewPat: "NewPat", IDTempo: "Tempo",
	IDCurrentPatNum: "CurrentPatNum", IDPatData: "PatData", IDFX: "FX",
	IDFadeStereo: "FadeStereo", IDCutOff: "CutOff", IDDotVol: "DotVol",
	IDDotPan: "DotPan", IDPreAmp: "PreAmp", IDDecay: "Decay",
	IDAttack: "Attack", IDDotNote: "DotNote", IDDotPitch: "DotPitch",
	IDDotMix: "DotMix", IDMainPitch: "MainPitch", IDRandChan: "RandChan",
	IDMixChan: "MixChan", IDResonance: "Resonance", IDLoopBar: "LoopBar",
	IDStDel: "StDel", IDFX3: "FX3", IDDotReso: "DotReso",
	IDDotCutOff: "DotCutOff", IDShiftDelay: "ShiftDelay",
	IDLoopEndBar: "LoopEndBar", IDDot: "Dot", IDDotShift: "DotShift",
	IDLayerChans: "LayerChans",
	IDPluginColor: "PluginColor", IDPLItem: "PLItem", IDEcho: "Echo",
	IDFXSine: "FXSine", IDCutCutBy: "CutCutBy", IDWindowH: "WindowH",
	IDMiddleNote: "MiddleNote", IDReserved: "Reserved",
	IDMainResoCutOff: "MainResoCutOff", IDDelayReso: "DelayReso",
	IDReverb: "Reverb", IDFineTune: "FineTune", IDSampleFlags: "SampleFlags",
	IDLayerFlags: "LayerFlags", IDChanFilterNum: "ChanFilterNum",
	IDCurFilterNum: "CurFilterNum", IDFXOutChanNum: "FXOutChanNum",
	IDNewTimeMarker: "NewTimeMarker", IDFXColor: "FXColor",
	IDPatColor: "PatColor", IDPatAutoMode: "PatAutoMode",
	IDSongLoopPos: "SongLoopPos", IDAUSmpRate: "AUSmpRate",
	IDFXInChanNum: "FXInChanNum", IDPluginIcon: "PluginIcon",
	IDFineTempo: "FineTempo",
	IDChanName: "ChanName", IDPatName: "PatName", IDTitle: "Title",
	IDComment: "Comment", IDSampleFileName: "SampleFileName", IDURL: "URL",
	IDCommentRTF: "CommentRTF", IDVersion: "Version", IDRegName: "RegName",
	IDDataPath: "DataPath", IDPluginName: "PluginName",
	IDInsertName: "InsertName", IDTimeMarkerName: "TimeMarkerName",
	IDGenre: "Genre", IDAuthor: "Author",
	IDMIDICtrls: "MIDICtrls", IDDelay: "Delay", IDTS404Params: "TS404Params",
	IDDelayLine: "DelayLine", IDNewPlugin: "NewPlugin",
	IDPluginParams: "PluginParams", IDChanParams: "ChanParams",
	IDEnvLfoParams: "EnvLfoParams", IDBasicChanParams: "BasicChanParams",
	IDPatNotes: "PatNotes", IDAutomationData: "AutomationData",
	IDChanGroupName: "ChanGroupName", IDTrackName: "TrackName",
	IDArrangementName: "ArrangementName",
}

// EventName returns a human-readable name for an event id, or "Event<n>"
// when the id has no named entry.
func EventName(id uint8) string {
	if n, ok := eventNames[id]; ok {
		return n
	}
	return fmt.Sprintf("Event%d", id)
}
