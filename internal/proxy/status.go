package proxy

import (
	"encoding/json"

	"gatewire/internal/canon"
	"gatewire/internal/version"
)

// Status JSON shapes, per the server list ping contract.
type jsonStatus struct {
	Version     jsonVersion  `json:"version"`
	Players     jsonPlayers  `json:"players"`
	Description canon.Text   `json:"description"`
	Favicon     string       `json:"favicon,omitempty"`
}

type jsonVersion struct {
	Name     string `json:"name"`
	Protocol int32  `json:"protocol"`
}

type jsonPlayers struct {
	Max    int          `json:"max"`
	Online int          `json:"online"`
	Sample []jsonPlayer `json:"sample"`
}

type jsonPlayer struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// buildStatus renders the status response for one ping. The echoed protocol
// is the client's own when we support it, which makes every launcher show
// the server as compatible.
func (c *Conn) buildStatus() string {
	ver := c.ver
	if ver == version.Invalid {
		ver = version.Latest
	}
	icon := ""
	if c.srv.cfg.Icon != "" {
		icon = "data:image/png;base64," + c.srv.cfg.Icon
	}
	status := jsonStatus{
		Version: jsonVersion{Name: ver.Name(), Protocol: ver.ID()},
		Players: jsonPlayers{
			Max:    c.srv.cfg.MaxPlayers,
			Online: int(c.srv.online.Load()),
			Sample: []jsonPlayer{
				{Name: "§agatewire", ID: "00000000-0000-0000-0000-000000000000"},
			},
		},
		Description: canon.Text{Text: c.srv.cfg.Motd},
		Favicon:     icon,
	}
	b, _ := json.Marshal(status)
	return string(b)
}
