// Package version enumerates the Minecraft protocol versions this proxy can
// terminate, along with the block-version tags used to key ID conversion
// tables.
package version

import "fmt"

// ProtocolVersion identifies a client protocol generation. Values are ordered
// by release, so comparisons like v >= V1_16_5 are meaningful. The zero value
// is Invalid.
type ProtocolVersion int

const (
	Invalid ProtocolVersion = iota
	V1_8
	V1_9
	V1_9_2
	V1_9_4
	V1_10
	V1_11
	V1_11_2
	V1_12
	V1_12_1
	V1_12_2
	V1_13
	V1_13_1
	V1_13_2
	V1_14
	V1_14_1
	V1_14_2
	V1_14_3
	V1_14_4
	V1_15
	V1_15_1
	V1_15_2
	V1_16
	V1_16_1
	V1_16_2
	V1_16_3
	V1_16_5
	V1_17
	V1_17_1
	V1_18
	V1_18_2
	V1_19
	V1_19_2
	V1_19_3
	V1_19_4
)

// BlockVersion keys the ID conversion tables. Multiple protocol versions share
// a block version when their numeric ID spaces are identical.
type BlockVersion int

const (
	BlockInvalid BlockVersion = iota
	Block1_8
	Block1_9
	Block1_10
	Block1_11
	Block1_12
	Block1_13
	Block1_14
	Block1_15
	Block1_16
	Block1_17
	Block1_18
	Block1_19
)

// BlockVersionCount is the number of block-version tags including
// BlockInvalid, which is the number of per-version columns in the conversion
// tables (column 0 belongs to BlockInvalid).
const BlockVersionCount = int(Block1_19) + 1

type meta struct {
	id    int32 // on-wire protocol number sent in the handshake
	block BlockVersion
	name  string
}

var versions = map[ProtocolVersion]meta{
	V1_8:    {47, Block1_8, "1.8.9"},
	V1_9:    {107, Block1_9, "1.9"},
	V1_9_2:  {109, Block1_9, "1.9.2"},
	V1_9_4:  {110, Block1_9, "1.9.4"},
	V1_10:   {210, Block1_10, "1.10.2"},
	V1_11:   {315, Block1_11, "1.11"},
	V1_11_2: {316, Block1_11, "1.11.2"},
	V1_12:   {335, Block1_12, "1.12"},
	V1_12_1: {338, Block1_12, "1.12.1"},
	V1_12_2: {340, Block1_12, "1.12.2"},
	V1_13:   {393, Block1_13, "1.13"},
	V1_13_1: {401, Block1_13, "1.13.1"},
	V1_13_2: {404, Block1_13, "1.13.2"},
	V1_14:   {477, Block1_14, "1.14"},
	V1_14_1: {480, Block1_14, "1.14.1"},
	V1_14_2: {485, Block1_14, "1.14.2"},
	V1_14_3: {490, Block1_14, "1.14.3"},
	V1_14_4: {498, Block1_14, "1.14.4"},
	V1_15:   {573, Block1_15, "1.15"},
	V1_15_1: {575, Block1_15, "1.15.1"},
	V1_15_2: {578, Block1_15, "1.15.2"},
	V1_16:   {735, Block1_16, "1.16"},
	V1_16_1: {736, Block1_16, "1.16.1"},
	V1_16_2: {751, Block1_16, "1.16.2"},
	V1_16_3: {753, Block1_16, "1.16.3"},
	V1_16_5: {754, Block1_16, "1.16.5"},
	V1_17:   {755, Block1_17, "1.17"},
	V1_17_1: {756, Block1_17, "1.17.1"},
	V1_18:   {757, Block1_18, "1.18"},
	V1_18_2: {758, Block1_18, "1.18.2"},
	V1_19:   {759, Block1_19, "1.19"},
	V1_19_2: {760, Block1_19, "1.19.2"},
	V1_19_3: {761, Block1_19, "1.19.3"},
	V1_19_4: {762, Block1_19, "1.19.4"},
}

// fromID maps on-wire protocol numbers back to versions. Built once at init.
var fromID = func() map[int32]ProtocolVersion {
	m := make(map[int32]ProtocolVersion, len(versions))
	for v, meta := range versions {
		m[meta.id] = v
	}
	return m
}()

// FromID returns the version for an on-wire protocol number sent during the
// handshake, or Invalid if the number is unknown.
func FromID(id int32) ProtocolVersion {
	return fromID[id]
}

// ID returns the on-wire protocol number for v, or 0 for Invalid.
func (v ProtocolVersion) ID() int32 { return versions[v].id }

// Block returns the block version used to key conversion tables.
func (v ProtocolVersion) Block() BlockVersion { return versions[v].block }

// Name returns the release name, e.g. "1.16.5".
func (v ProtocolVersion) Name() string {
	if m, ok := versions[v]; ok {
		return m.name
	}
	return "invalid"
}

func (v ProtocolVersion) String() string {
	if v == Invalid {
		return "Invalid"
	}
	return fmt.Sprintf("%s (%d)", v.Name(), v.ID())
}

// Latest is the newest supported version; its numeric ID space is the proxy's
// canonical currency.
const Latest = V1_19_4
