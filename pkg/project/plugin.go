package project

import (
	"fmt"
	"strings"

	"github.com/SpendLessDaw/flp/pkg/codec"
	"github.com/SpendLessDaw/flp/pkg/flp"
)

// Wrapper chunk sub-record ids. The NewPlugin event payload is its own
// little container: a 4-byte marker, then records of (u32 id, u64 size,
// bytes). Only the name and vendor records are decoded here; the rest is
// plugin state the toolkit has no business interpreting.
const (
	pluginSubName   = 54
	pluginSubVendor = 56
)

// PluginInfo identifies a plugin referenced by a project
type PluginInfo struct {
	Name   string
	Vendor string
}

// ParsePluginData extracts name and vendor from a NewPlugin event
// payload. Unrecognized sub-records are skipped, not errors.
func ParsePluginData(payload []byte) (*PluginInfo, error) {
	c := codec.NewCursor(payload)
	if _, err := c.ReadU32(); err != nil { // wrapper marker, value unused
		return nil, fmt.Errorf("plugin data marker: %w", err)
	}

	info := &PluginInfo{}
	for c.Remaining() >= 12 {
		subID, err := c.ReadU32()
		if err != nil {
			return nil, fmt.Errorf("plugin data record: %w", err)
		}
		sizeLo, err := c.ReadU32()
		if err != nil {
			return nil, fmt.Errorf("plugin data record: %w", err)
		}
		sizeHi, err := c.ReadU32()
		if err != nil {
			return nil, fmt.Errorf("plugin data record: %w", err)
		}
		size := uint64(sizeLo) | uint64(sizeHi)<<32
		if size > uint64(c.Remaining()) {
			return nil, fmt.Errorf("plugin data record %d: %w", subID, flp.ErrTruncatedEvent)
		}
		data, err := c.ReadBytes(int(size))
		if err != nil {
			return nil, fmt.Errorf("plugin data record %d: %w", subID, err)
		}
		switch subID {
		case pluginSubName:
			info.Name = strings.TrimRight(string(data), "\x00")
		case pluginSubVendor:
			info.Vendor = strings.TrimRight(string(data), "\x00")
		}
	}
	return info, nil
}

// Plugins lists the plugins referenced by the project, in stream order.
// Events whose wrapper payload is malformed are reported, not skipped.
func (p *Project) Plugins() ([]PluginInfo, error) {
	var out []PluginInfo
	for _, ev := range p.file.FindAll(flp.IDNewPlugin) {
		info, err := ParsePluginData(ev.Payload)
		if err != nil {
			return nil, err
		}
		out = append(out, *info)
	}
	return out, nil
}
