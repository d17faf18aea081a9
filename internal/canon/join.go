package canon

import (
	"github.com/google/uuid"

	"gatewire/internal/transfer"
)

// JoinMode says why a client is joining a backend.
type JoinMode uint8

const (
	// JoinNew is a fresh client connection.
	JoinNew JoinMode = iota
	// JoinSwitch is a client moved over from another backend.
	JoinSwitch
)

// Join is the first frame the proxy writes on every backend link.
type Join struct {
	Mode     JoinMode
	Username string
	UUID     uuid.UUID
	Ver      int32
}

// WriteJoin encodes the join record as a canonical struct field.
func WriteJoin(w *transfer.Writer, j Join) {
	w.WriteStruct(4, func(w *transfer.Writer) {
		w.WriteU8(uint8(j.Mode))
		w.WriteStr(j.Username)
		writeUUID(w, j.UUID)
		w.WriteI32(j.Ver)
	})
}

// ReadJoin decodes a join record.
func ReadJoin(r *transfer.Reader) (Join, error) {
	var j Join
	err := r.ReadStruct(func(s *transfer.StructReader) error {
		var mode uint8
		if err := fieldU8(s, 0, &mode); err != nil {
			return err
		}
		j.Mode = JoinMode(mode)
		if err := fieldStr(s, 1, &j.Username); err != nil {
			return err
		}
		if err := fieldUUID(s, 2, &j.UUID); err != nil {
			return err
		}
		return fieldI32(s, 3, &j.Ver)
	})
	return j, err
}
