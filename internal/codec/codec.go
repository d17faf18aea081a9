// Package codec translates canonical packets into legacy Minecraft packets
// and back, one serialization per (packet kind, protocol version).
package codec

import (
	"errors"
	"fmt"

	"gatewire/internal/canon"
	"gatewire/internal/convert"
	"gatewire/internal/mcnet"
	"gatewire/internal/version"
)

// ErrUnsupportedVersion is returned when a canonical packet names a version
// the codec has no serialization for. This is a bug, not a client problem.
var ErrUnsupportedVersion = errors.New("codec: no serialization for this version")

// ErrNotObject reports a SpawnEntity whose type has no 1.8 object ID.
type ErrNotObject uint32

func (e ErrNotObject) Error() string {
	return fmt.Sprintf("codec: entity type %d has no 1.8 object id", uint32(e))
}

// verGroup buckets protocol versions that share packet ID layouts. These
// index the columns of the generated ID tables.
type verGroup int

const (
	g8 verGroup = iota
	g9
	g12
	g13
	g14
	g16
	g17
	g19
	groupCount
)

func groupOf(v version.ProtocolVersion) verGroup {
	switch {
	case v < version.V1_9:
		return g8
	case v < version.V1_12:
		return g9
	case v < version.V1_13:
		return g12
	case v < version.V1_14:
		return g13
	case v < version.V1_16:
		return g14
	case v < version.V1_17:
		return g16
	case v < version.V1_19:
		return g17
	default:
		return g19
	}
}

// newPacket builds a legacy packet with the clientbound ID the version uses
// for the given row of the ID table.
func newPacket(kind cbKind, ver version.ProtocolVersion) *mcnet.Packet {
	return mcnet.NewPacket(cbPacketIDs[kind][groupOf(ver)])
}

// one wraps a single packet in the slice shape ToTCP returns.
func one(p *mcnet.Packet) []*mcnet.Packet { return []*mcnet.Packet{p} }

// ToTCP serializes one canonical client-bound packet for the version. The
// result may be empty (the version cannot represent the packet) or contain
// several legacy packets (fan-out).
func ToTCP(p canon.CB, ver version.ProtocolVersion, conv *convert.Converter) ([]*mcnet.Packet, error) {
	switch p := p.(type) {
	case *canon.Abilities:
		return toTCPAbilities(p, ver)
	case *canon.Animation:
		return toTCPAnimation(p, ver)
	case *canon.BlockUpdate:
		return toTCPBlockUpdate(p, ver)
	case *canon.ChangeGameState:
		return toTCPChangeGameState(p, ver)
	case *canon.Chat:
		return toTCPChat(p, ver)
	case *canon.Chunk:
		return toTCPChunk(p, ver, conv)
	case *canon.ChunkUnload:
		return toTCPChunkUnload(p, ver)
	case *canon.CollectItem:
		return toTCPCollectItem(p, ver)
	case *canon.CommandList:
		return toTCPCommandList(p, ver)
	case *canon.EntityEquipment:
		return toTCPEntityEquipment(p, ver, conv)
	case *canon.EntityHeadLook:
		return toTCPEntityHeadLook(p, ver)
	case *canon.EntityLook:
		return toTCPEntityLook(p, ver)
	case *canon.EntityMetadata:
		return toTCPEntityMetadata(p, ver, conv)
	case *canon.EntityMove:
		return toTCPEntityMove(p, ver)
	case *canon.EntityMoveLook:
		return toTCPEntityMoveLook(p, ver)
	case *canon.EntityPos:
		return toTCPEntityPos(p, ver)
	case *canon.EntityStatus:
		return toTCPEntityStatus(p, ver)
	case *canon.EntityVelocity:
		return toTCPEntityVelocity(p, ver)
	case *canon.JoinGame:
		return toTCPJoinGame(p, ver)
	case *canon.KeepAlive:
		return toTCPKeepAlive(p, ver)
	case *canon.MultiBlockChange:
		return toTCPMultiBlockChange(p, ver, conv)
	case *canon.Particle:
		return toTCPParticle(p, ver, conv)
	case *canon.PlaySound:
		return toTCPPlaySound(p, ver)
	case *canon.PlayerHeader:
		return toTCPPlayerHeader(p, ver)
	case *canon.PlayerList:
		return toTCPPlayerList(p, ver)
	case *canon.PluginMessage:
		return toTCPPluginMessage(p, ver)
	case *canon.RemoveEntities:
		return toTCPRemoveEntities(p, ver)
	case *canon.ScoreboardDisplay:
		return toTCPScoreboardDisplay(p, ver)
	case *canon.ScoreboardObjective:
		return toTCPScoreboardObjective(p, ver)
	case *canon.ScoreboardUpdate:
		return toTCPScoreboardUpdate(p, ver)
	case *canon.SetPosLook:
		return toTCPSetPosLook(p, ver)
	case *canon.SpawnEntity:
		return toTCPSpawnEntity(p, ver, conv)
	case *canon.SpawnPlayer:
		return toTCPSpawnPlayer(p, ver, conv)
	case *canon.Tags:
		return toTCPTags(p, ver)
	case *canon.Teams:
		return toTCPTeams(p, ver)
	case *canon.Title:
		return toTCPTitle(p, ver)
	case *canon.UpdateHealth:
		return toTCPUpdateHealth(p, ver)
	case *canon.UpdateViewPos:
		return toTCPUpdateViewPos(p, ver)
	case *canon.WindowItem:
		return toTCPWindowItem(p, ver, conv)
	case *canon.WindowItems:
		return toTCPWindowItems(p, ver, conv)
	case *canon.WindowOpen:
		return toTCPWindowOpen(p, ver)
	case *canon.SwitchServer:
		// Consumed by the connection layer; never serialized to a client.
		return nil, nil
	}
	return nil, fmt.Errorf("codec: unhandled canonical packet %T", p)
}
