// Package project exposes typed accessors over a parsed FLP file. It is
// a thin layer: every getter is an event lookup plus payload decoding,
// every setter a patch that touches exactly one event. The container
// semantics all live in pkg/flp.
package project

import (
	"fmt"

	"github.com/SpendLessDaw/flp/pkg/flp"
)

// Project wraps a parsed file with metadata accessors
type Project struct {
	file *flp.File
}

// New wraps an already-parsed file
func New(f *flp.File) *Project {
	return &Project{file: f}
}

// Parse decodes raw project bytes
func Parse(data []byte) (*Project, error) {
	f, err := flp.Parse(data)
	if err != nil {
		return nil, err
	}
	return &Project{file: f}, nil
}

// File returns the underlying parsed file
func (p *Project) File() *flp.File {
	return p.file
}

// Serialize reconstructs the project bytes
func (p *Project) Serialize() []byte {
	return p.file.Serialize()
}

// Version returns the FL version string, "0.0.0" when absent
func (p *Project) Version() string {
	return p.file.Version
}

// UseUnicode reports whether text payloads are UTF-16LE
func (p *Project) UseUnicode() bool {
	return p.file.UseUnicode
}

// Format returns the raw format field from the file header
func (p *Project) Format() int16 {
	return p.file.Format
}

// ChannelCount returns the channel count from the file header
func (p *Project) ChannelCount() uint16 {
	return p.file.ChannelCount
}

// PPQ returns the pulses-per-quarter-note timing base
func (p *Project) PPQ() uint16 {
	return p.file.PPQ
}

// Title returns the project title, empty when the event is absent
func (p *Project) Title() (string, error) {
	return p.text(flp.IDTitle)
}

// SetTitle rewrites (or adds) the project title event
func (p *Project) SetTitle(title string) error {
	return p.setText(flp.IDTitle, title)
}

// Author returns the project author
func (p *Project) Author() (string, error) {
	return p.text(flp.IDAuthor)
}

// SetAuthor rewrites (or adds) the author event
func (p *Project) SetAuthor(author string) error {
	return p.setText(flp.IDAuthor, author)
}

// Genre returns the project genre
func (p *Project) Genre() (string, error) {
	return p.text(flp.IDGenre)
}

// Comment returns the project comment
func (p *Project) Comment() (string, error) {
	return p.text(flp.IDComment)
}

// URL returns the project URL
func (p *Project) URL() (string, error) {
	return p.text(flp.IDURL)
}

// Tempo returns the tempo in BPM. Recent projects store it in the
// FineTempo event as thousandths of a BPM; older ones use the WORD
// Tempo event in whole BPM.
func (p *Project) Tempo() (float64, error) {
	if ev, ok := p.file.FindFirst(flp.IDFineTempo); ok {
		v, err := ev.Dword()
		if err != nil {
			return 0, err
		}
		return float64(v) / 1000, nil
	}
	if ev, ok := p.file.FindFirst(flp.IDTempo); ok {
		v, err := ev.Word()
		if err != nil {
			return 0, err
		}
		return float64(v), nil
	}
	return 0, fmt.Errorf("project has no tempo event")
}

// SampleFileNames returns every referenced sample path, in stream order
func (p *Project) SampleFileNames() ([]string, error) {
	return p.textAll(flp.IDSampleFileName)
}

// ChannelNames returns every channel name, in stream order
func (p *Project) ChannelNames() ([]string, error) {
	return p.textAll(flp.IDChanName)
}

func (p *Project) text(id uint8) (string, error) {
	ev, ok := p.file.FindFirst(id)
	if !ok {
		return "", nil
	}
	if !ev.IsText() {
		return "", flp.ErrKindMismatch
	}
	return DecodeText(ev.Payload, p.file.UseUnicode)
}

func (p *Project) textAll(id uint8) ([]string, error) {
	var out []string
	for _, ev := range p.file.FindAll(id) {
		if !ev.IsText() {
			return nil, flp.ErrKindMismatch
		}
		s, err := DecodeText(ev.Payload, p.file.UseUnicode)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// setText replaces the first event with the given id, or appends a new
// one when the project has none. Only the touched event is re-framed;
// everything else round-trips byte-exactly.
func (p *Project) setText(id uint8, s string) error {
	payload, err := EncodeText(s, p.file.UseUnicode)
	if err != nil {
		return err
	}
	if _, ok := p.file.FindFirst(id); !ok {
		clone := *p.file
		clone.Events = append(append([]flp.Event(nil), p.file.Events...), flp.NewEvent(id, payload))
		p.file = &clone
		return nil
	}
	done := false
	p.file = p.file.Patch(func(ev flp.Event, _ int) flp.PatchResult {
		if done || ev.ID != id {
			return flp.Keep()
		}
		done = true
		return flp.ReplacePayload(ev, payload)
	})
	return nil
}
